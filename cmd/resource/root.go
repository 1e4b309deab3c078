package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jmgilman/go/resource"
	"github.com/jmgilman/go/resource/bundle"
	"github.com/jmgilman/go/resource/config"
	"github.com/jmgilman/go/resource/fs/billy"
	fsminio "github.com/jmgilman/go/resource/fs/minio"
)

// Environment variables read for the s3 protocol.
const (
	envS3Endpoint  = "RESOURCE_S3_ENDPOINT"
	envS3AccessKey = "RESOURCE_S3_ACCESS_KEY"
	envS3SecretKey = "RESOURCE_S3_SECRET_KEY"
	envS3UseSSL    = "RESOURCE_S3_USE_SSL"
)

// app holds the state shared by all subcommands.
type app struct {
	envFile         string
	configFiles     []string
	bundles         []string
	defaultProtocol string
	baseDir         string
	logLevel        string

	logger *slog.Logger
	loader *resource.Loader
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "resource",
		Short: "Resolve and read resources by location",
		Long: `resource resolves protocol-qualified locations such as file://, https://,
assembly://, config:// and s3:// and reads or inspects the resources they name.

Unqualified locations use the default protocol (file).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "dotenv file to load before reading the environment")
	flags.StringArrayVar(&a.configFiles, "config", nil, "configuration file (CUE, YAML or JSON) for config:// resources, repeatable")
	flags.StringArrayVar(&a.bundles, "bundle", nil, "bundle for assembly:// resources as name=directory, repeatable")
	flags.StringVar(&a.defaultProtocol, "default-protocol", resource.DefaultProtocol, "protocol for unqualified locations")
	flags.StringVar(&a.baseDir, "base-dir", "", "directory relative file locations are resolved against (default: working directory)")
	flags.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newCatCmd(a),
		newExistsCmd(a),
		newDescribeCmd(a),
		newResolveCmd(a),
		newProtocolsCmd(a),
	)
	return cmd
}

// setup loads the environment and builds the logger and loader.
func (a *app) setup(cmd *cobra.Command) error {
	if err := godotenv.Load(a.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", a.envFile, err)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", a.logLevel, err)
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	opts := []resource.Option{
		resource.WithLogger(a.logger),
		resource.WithDefaultProtocol(a.defaultProtocol),
		resource.WithBaseDir(a.baseDir),
	}

	if len(a.bundles) > 0 {
		reg, err := parseBundles(a.bundles)
		if err != nil {
			return err
		}
		opts = append(opts, resource.WithBundles(reg))
	}

	if len(a.configFiles) > 0 {
		store, err := loadConfig(cmd, a.configFiles)
		if err != nil {
			return err
		}
		opts = append(opts, resource.WithConfig(store))
	}

	if endpoint := os.Getenv(envS3Endpoint); endpoint != "" {
		client, err := fsminio.NewClient(
			endpoint,
			os.Getenv(envS3AccessKey),
			os.Getenv(envS3SecretKey),
			parseBool(os.Getenv(envS3UseSSL)),
		)
		if err != nil {
			return fmt.Errorf("failed to configure s3: %w", err)
		}
		opts = append(opts, resource.WithS3(client))
	}

	a.loader = resource.NewLoader(opts...)
	return nil
}

// parseBundles builds a bundle registry from name=directory arguments.
func parseBundles(specs []string) (*bundle.Registry, error) {
	reg := bundle.NewRegistry()
	for _, spec := range specs {
		name, dir, ok := strings.Cut(spec, "=")
		if !ok || name == "" || dir == "" {
			return nil, fmt.Errorf("invalid bundle %q, expected name=directory", spec)
		}
		reg.Register(bundle.FromFS(name, os.DirFS(dir)))
	}
	return reg, nil
}

// loadConfig loads the configuration files into a store, later files
// taking precedence.
func loadConfig(cmd *cobra.Command, files []string) (*config.Store, error) {
	paths := make([]string, len(files))
	for i, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			return nil, fmt.Errorf("invalid config path %q: %w", f, err)
		}
		paths[i] = filepath.ToSlash(abs)
	}

	store, err := config.NewStore()
	if err != nil {
		return nil, err
	}
	if err := store.LoadFiles(cmd.Context(), config.NewLoader(billy.NewLocal("")), paths...); err != nil {
		return nil, err
	}
	return store, nil
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
