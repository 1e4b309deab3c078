package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"gopkg.in/yaml.v3"

	"github.com/jmgilman/go/resource"
)

func newCatCmd(a *app) *cobra.Command {
	var (
		charset   string
		detectBOM bool
	)

	cmd := &cobra.Command{
		Use:   "cat <location>...",
		Short: "Write the content of resources to stdout",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enc encoding.Encoding
			if charset != "" {
				var err error
				if enc, err = htmlindex.Get(charset); err != nil {
					return fmt.Errorf("unknown charset %q: %w", charset, err)
				}
			}

			for _, location := range args {
				res, err := a.loader.Parse(location)
				if err != nil {
					return err
				}

				var rc io.ReadCloser
				if enc == nil && !detectBOM {
					rc, err = res.Open(cmd.Context())
				} else {
					rc, err = resource.NewEncoded(res, enc, detectBOM).OpenReader(cmd.Context())
				}
				if err != nil {
					return err
				}
				_, err = io.Copy(cmd.OutOrStdout(), rc)
				_ = rc.Close()
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", location, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&charset, "charset", "", "decode the content from this charset to UTF-8")
	cmd.Flags().BoolVar(&detectBOM, "detect-bom", false, "decode UTF-8 and UTF-16 content that starts with a byte order mark")
	return cmd
}

func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <location>...",
		Short: "Report whether resources exist",
		Long: `Probe each location concurrently and print "<location>\t<true|false>".
Exits with an error when any resource does not exist.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]bool, len(args))

			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(8)
			for i, location := range args {
				g.Go(func() error {
					res, err := a.loader.Parse(location)
					if err != nil {
						return err
					}
					results[i] = res.Exists(ctx)
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			missing := 0
			for i, location := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%t\n", location, results[i])
				if !results[i] {
					missing++
				}
			}
			if missing > 0 {
				return fmt.Errorf("%d of %d resources do not exist", missing, len(args))
			}
			return nil
		},
	}
}

// description is the YAML document printed by describe.
type description struct {
	Location    string      `yaml:"location"`
	Protocol    string      `yaml:"protocol"`
	Description string      `yaml:"description"`
	Exists      bool        `yaml:"exists"`
	IsOpen      bool        `yaml:"is_open"`
	Navigation  *navigation `yaml:"navigation,omitempty"`
	LocalPath   string      `yaml:"local_path,omitempty"`
}

type navigation struct {
	Root       string `yaml:"root"`
	Path       string `yaml:"path"`
	Separators string `yaml:"separators"`
}

func describe(cmd *cobra.Command, res resource.Resource) description {
	d := description{
		Location:    res.Location(),
		Protocol:    res.Protocol(),
		Description: res.Description(),
		Exists:      res.Exists(cmd.Context()),
		IsOpen:      res.IsOpen(),
	}
	if nav, ok := res.(resource.Navigable); ok {
		d.Navigation = &navigation{
			Root:       nav.RootLocation(),
			Path:       nav.CurrentPath(),
			Separators: nav.PathSeparators(),
		}
	}
	if local, ok := res.(resource.LocalFile); ok {
		if p, err := local.Path(); err == nil {
			d.LocalPath = p
		}
	}
	return d
}

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <location>",
		Short: "Print what the loader knows about a resource as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.loader.Parse(args[0])
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), describe(cmd, res))
		},
	}
}

func newResolveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <base> <location>",
		Short: "Resolve a location relative to a base resource",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := a.loader.Parse(args[0])
			if err != nil {
				return err
			}
			res, err := a.loader.ResolveRelative(base, a.loader.ExpandPlaceholders(args[1]))
			if err != nil {
				return err
			}
			return writeYAML(cmd.OutOrStdout(), describe(cmd, res))
		},
	}
}

func newProtocolsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List the registered protocols",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range a.loader.Registry().Protocols() {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
}

func writeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}
