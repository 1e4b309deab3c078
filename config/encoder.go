package config

import (
	"context"

	"cuelang.org/go/cue"
	cueyaml "cuelang.org/go/encoding/yaml"

	"github.com/jmgilman/go/resource/errors"
)

// EncodeYAML encodes a CUE value to YAML bytes.
// Returns CodeConfigEncodeFailed if the value has errors or is not concrete.
func EncodeYAML(ctx context.Context, value cue.Value) ([]byte, errors.PlatformError) {
	if err := checkEncodable(ctx, value); err != nil {
		return nil, err
	}

	data, err := cueyaml.Encode(value)
	if err != nil {
		return nil, wrapEncodeError(err, "failed to encode CUE value to YAML", nil)
	}
	return data, nil
}

// EncodeJSON encodes a CUE value to JSON bytes.
// Returns CodeConfigEncodeFailed if the value has errors or is not concrete.
func EncodeJSON(ctx context.Context, value cue.Value) ([]byte, errors.PlatformError) {
	if err := checkEncodable(ctx, value); err != nil {
		return nil, err
	}

	data, err := value.MarshalJSON()
	if err != nil {
		return nil, wrapEncodeError(err, "failed to encode CUE value to JSON", nil)
	}
	return data, nil
}

func checkEncodable(ctx context.Context, value cue.Value) errors.PlatformError {
	if err := ctx.Err(); err != nil {
		return wrapEncodeError(err, "context cancelled before encoding", nil)
	}

	if err := value.Err(); err != nil {
		return wrapEncodeError(err, "CUE value contains errors and cannot be encoded", makeContext("error", err.Error()))
	}

	if !value.IsConcrete() {
		return errors.New(
			errors.CodeConfigEncodeFailed,
			"CUE value is not concrete (contains unresolved values) and cannot be encoded",
		)
	}
	return nil
}
