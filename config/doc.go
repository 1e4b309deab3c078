/*
Package config provides the host configuration store behind config:// resources.

Configuration is authored as CUE, YAML or JSON files. A Loader reads them
from a core.ReadFS and evaluates them with cuelang.org/go. A Store collects
the evaluated sources and serves named sections out of them. A section name
is a CUE path such as "database" or "services.mail".

# Example

	loader := config.NewLoader(billy.NewLocal("/etc/app"))
	store, err := config.NewStore()
	if err != nil {
	    return err
	}
	if err := store.LoadFiles(ctx, loader, "base.cue", "local.yaml"); err != nil {
	    return err
	}

	sec, ok := store.Section("database")
	if !ok {
	    return fmt.Errorf("database section missing")
	}

	var db struct {
	    Host string `json:"host"`
	    Port int    `json:"port"`
	}
	if err := sec.Decode(ctx, &db); err != nil {
	    return err
	}

Sources added later take precedence over earlier ones when both define a
section. Rendered YAML for a section is cached until the store changes.

# Schemas

A Store created with WithSchema validates every source against the schema
before accepting it:

	schema, _ := loader.LoadFile(ctx, "schema.cue")
	store, _ := config.NewStore(config.WithSchema(schema))

# Errors

All failures are errors.PlatformError values with codes from the
CodeConfig* family.
*/
package config
