package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	cuejson "cuelang.org/go/encoding/json"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/jmgilman/go/resource/fs/core"
)

// Loader reads configuration files from a filesystem and evaluates them.
// It owns the CUE context every value it returns belongs to; values from
// different loaders cannot be unified with each other.
type Loader struct {
	fs     core.ReadFS
	cueCtx *cue.Context
}

// NewLoader creates a new Loader reading from filesystem.
func NewLoader(filesystem core.ReadFS) *Loader {
	return &Loader{
		fs:     filesystem,
		cueCtx: cuecontext.New(),
	}
}

// Context returns the underlying CUE context.
func (l *Loader) Context() *cue.Context {
	return l.cueCtx
}

// LoadFile loads a single configuration file. The format is chosen by
// extension: .cue, .yaml/.yml or .json.
//
// Returns CodeConfigLoadFailed on I/O errors or unknown extensions.
// Returns CodeConfigBuildFailed when the file does not evaluate.
func (l *Loader) LoadFile(ctx context.Context, filePath string) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, wrapLoadError(err, "context cancelled", makeContext("file_path", filePath))
	}

	switch strings.ToLower(path.Ext(filePath)) {
	case ".cue":
		return l.loadCUE(filePath)
	case ".yaml", ".yml":
		return l.loadData(filePath, l.buildYAML)
	case ".json":
		return l.loadData(filePath, l.buildJSON)
	default:
		return cue.Value{}, wrapLoadError(
			fmt.Errorf("unsupported extension %q", path.Ext(filePath)),
			"failed to load configuration file",
			makeContext("file_path", filePath),
		)
	}
}

// LoadBytes compiles CUE source. The filename is used only in error messages.
//
// Returns CodeConfigBuildFailed on compilation errors.
func (l *Loader) LoadBytes(ctx context.Context, source []byte, filename string) (cue.Value, error) {
	if err := ctx.Err(); err != nil {
		return cue.Value{}, wrapBuildError(err, "context cancelled", makeContext("filename", filename))
	}

	if filename == "" {
		filename = "<input>"
	}

	val := l.cueCtx.CompileBytes(source, cue.Filename(filename))
	return finish(val, "failed to compile CUE source", makeContext("filename", filename, "source_size", len(source)))
}

// loadCUE loads a .cue file through load.Instances so package clauses and
// imports behave as they do with the cue tool.
func (l *Loader) loadCUE(filePath string) (cue.Value, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return cue.Value{}, wrapLoadError(err, "failed to read CUE file", makeContext("file_path", filePath))
	}

	absPath := filePath
	if !strings.HasPrefix(absPath, "/") {
		absPath = "/" + absPath
	}

	insts := load.Instances([]string{filePath}, &load.Config{
		Dir:     "/",
		Overlay: map[string]load.Source{absPath: load.FromBytes(data)},
	})
	if len(insts) == 0 {
		return cue.Value{}, wrapLoadError(
			fmt.Errorf("no instances loaded"),
			"failed to load CUE file",
			makeContext("file_path", filePath),
		)
	}
	if err := insts[0].Err; err != nil {
		return cue.Value{}, wrapBuildError(err, "failed to load CUE file", makeContext("file_path", filePath))
	}

	return finish(l.cueCtx.BuildInstance(insts[0]), "failed to build CUE file", makeContext("file_path", filePath))
}

func (l *Loader) loadData(filePath string, build func(string, []byte) (cue.Value, error)) (cue.Value, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return cue.Value{}, wrapLoadError(err, "failed to read configuration file", makeContext("file_path", filePath))
	}

	val, err := build(filePath, data)
	if err != nil {
		return cue.Value{}, wrapBuildError(err, "failed to parse configuration file", makeContext("file_path", filePath))
	}
	return finish(val, "failed to build configuration file", makeContext("file_path", filePath))
}

func (l *Loader) buildYAML(filePath string, data []byte) (cue.Value, error) {
	file, err := cueyaml.Extract(filePath, data)
	if err != nil {
		return cue.Value{}, err
	}
	return l.cueCtx.BuildFile(file), nil
}

func (l *Loader) buildJSON(filePath string, data []byte) (cue.Value, error) {
	expr, err := cuejson.Extract(filePath, data)
	if err != nil {
		return cue.Value{}, err
	}
	return l.cueCtx.BuildExpr(expr), nil
}

// finish checks a freshly built value for evaluation and validation errors.
func finish(val cue.Value, message string, ctx map[string]interface{}) (cue.Value, error) {
	if err := val.Err(); err != nil {
		return cue.Value{}, wrapBuildError(err, message, ctx)
	}
	if err := val.Validate(); err != nil {
		return cue.Value{}, wrapBuildError(err, "CUE validation failed", ctx)
	}
	return val, nil
}
