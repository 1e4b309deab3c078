package resource

import (
	"bytes"
	"context"
	"io"

	"github.com/jmgilman/go/resource/config"
	"github.com/jmgilman/go/resource/errors"
)

// ConfigSectionResource is a section of the host configuration store,
// addressed as config://<section>. Opening it renders the section as YAML.
type ConfigSectionResource struct {
	name     string
	location string
	section  *config.Section
}

func newConfigSectionResource(l *Loader, location string) (Resource, error) {
	name := StripProtocol(location)
	if name == "" {
		return nil, errors.NewWithContext(errors.CodeInvalidFormat, "config location has no section name", map[string]interface{}{
			"location": location,
		})
	}

	r := &ConfigSectionResource{name: name, location: location}
	if l.config != nil {
		if sec, ok := l.config.Section(name); ok {
			r.section = sec
		}
	}
	return r, nil
}

// Section returns the configuration section, if the store has one by this name.
func (r *ConfigSectionResource) Section() (*config.Section, bool) {
	return r.section, r.section != nil
}

// Description implements Resource.
func (r *ConfigSectionResource) Description() string {
	var source string
	if r.section != nil {
		source = r.section.Source
	}
	return "config [" + source + "#" + r.name + "]"
}

// Protocol implements Resource.
func (r *ConfigSectionResource) Protocol() string { return "config" }

// Location implements Resource.
func (r *ConfigSectionResource) Location() string { return r.location }

// IsOpen implements Resource.
func (r *ConfigSectionResource) IsOpen() bool { return false }

// Exists implements Resource. Configuration sections always report false;
// use Open or Section to find out whether the section is present.
func (r *ConfigSectionResource) Exists(context.Context) bool { return false }

// Open implements Resource.
//
// Returns CodeNotFound when the section does not exist.
func (r *ConfigSectionResource) Open(ctx context.Context) (io.ReadCloser, error) {
	if r.section == nil {
		return nil, errors.NewWithContext(errors.CodeNotFound, "configuration section does not exist", map[string]interface{}{
			"location": r.location,
			"section":  r.name,
		})
	}

	data, err := r.section.YAML(ctx)
	if err != nil {
		return nil, errors.WithContext(err, "location", r.location)
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}
