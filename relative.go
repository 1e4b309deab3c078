package resource

import (
	"strings"

	"github.com/jmgilman/go/resource/errors"
)

// ResolveRelative returns the resource location names relative to base.
//
// A location with a registered protocol is resolved on its own and base is
// ignored. Otherwise base must be Navigable. Relative locations are
// resolved against the base's root and current path:
//
//	"name"          the base's current path
//	"./dir/name"    below the base's current path
//	"../dir/name"   one segment up, then below
//	"/dir/name"     below the base's root
//
// Returns CodeNotSupported when base is not Navigable and CodeMalformedPath
// when the location walks above the root.
func (l *Loader) ResolveRelative(base Resource, location string) (Resource, error) {
	if l.HasProtocol(location) {
		return l.GetResource(location)
	}

	nav, ok := base.(Navigable)
	if !ok {
		return nil, errors.NewWithContext(errors.CodeNotSupported,
			"resource does not support relative resources, use a fully qualified location",
			map[string]interface{}{
				"base":     describe(base),
				"location": location,
			})
	}

	resolved, err := relativeLocation(nav, location)
	if err != nil {
		return nil, errors.WithContextMap(err, map[string]interface{}{
			"base":     nav.Description(),
			"location": location,
		})
	}

	l.logger.Debug("resolved relative resource", "base", nav.Description(), "location", location, "resolved", resolved)
	return l.GetResource(resolved)
}

func describe(r Resource) string {
	if r == nil {
		return "<nil>"
	}
	return r.Description()
}

// relativeLocation builds the fully qualified location for location
// relative to base.
func relativeLocation(base Navigable, location string) (string, error) {
	var b strings.Builder
	if p := base.Protocol(); p != "" {
		b.WriteString(p)
		b.WriteString(ProtocolSeparator)
	}

	if !base.IsRelative(location) {
		b.WriteString(location)
		return b.String(), nil
	}

	var target, current string
	if n := strings.LastIndexAny(location, `/\`); n >= 0 {
		target = location[n+1:]

		var err error
		current, err = resolvePath(base, location[:n+1])
		if err != nil {
			return "", err
		}
	} else {
		target = location
		current = base.CurrentPath()
	}

	b.WriteString(strings.TrimRight(base.RootLocation(), `/\`))
	if current != "" {
		b.WriteByte('/')
		b.WriteString(current)
	}
	b.WriteByte('/')
	b.WriteString(target)
	return b.String(), nil
}

// resolvePath computes the new current path for prefix, which is the part
// of a relative location up to and including its last separator.
func resolvePath(base Navigable, prefix string) (string, error) {
	seps := base.PathSeparators()
	sep := seps[:1]

	current := strings.FieldsFunc(base.CurrentPath(), func(r rune) bool {
		return strings.ContainsRune(seps, r)
	})
	parts := strings.FieldsFunc(prefix, func(r rune) bool {
		return r == '/' || r == '\\'
	})

	if strings.HasPrefix(prefix, "/") {
		return strings.Join(parts, sep), nil
	}

	for len(parts) > 0 && parts[0] == "." {
		parts = parts[1:]
	}

	up := 0
	for up < len(parts) && parts[up] == ".." {
		up++
	}
	if up > len(current) {
		return "", errors.NewWithContext(errors.CodeMalformedPath, "too many back levels", map[string]interface{}{
			"up_walks": up,
			"depth":    len(current),
		})
	}
	segments := append(current[:len(current)-up:len(current)-up], parts[up:]...)
	return strings.Join(segments, sep), nil
}
