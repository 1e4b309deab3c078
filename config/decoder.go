package config

import (
	"context"
	"fmt"
	"reflect"

	"cuelang.org/go/cue"

	"github.com/jmgilman/go/resource/errors"
)

// Decode decodes a CUE value into target, which must be a non-nil pointer
// to a struct. Field names follow the json struct tags.
//
// Returns CodeConfigDecodeFailed on an invalid target, a value with errors,
// or a type mismatch.
func Decode(ctx context.Context, value cue.Value, target interface{}) errors.PlatformError {
	if err := ctx.Err(); err != nil {
		return wrapDecodeError(err, "context cancelled before decoding", nil)
	}

	if target == nil {
		return errors.New(errors.CodeConfigDecodeFailed, "decode target cannot be nil")
	}

	targetValue := reflect.ValueOf(target)
	if targetValue.Kind() != reflect.Ptr {
		return errors.New(
			errors.CodeConfigDecodeFailed,
			fmt.Sprintf("decode target must be a pointer to a struct, got %s", targetValue.Kind()),
		)
	}
	if targetValue.IsNil() {
		return errors.New(errors.CodeConfigDecodeFailed, "decode target pointer cannot be nil")
	}

	targetElem := targetValue.Elem()
	if targetElem.Kind() != reflect.Struct {
		return errors.New(
			errors.CodeConfigDecodeFailed,
			fmt.Sprintf("decode target must be a pointer to a struct, got pointer to %s", targetElem.Kind()),
		)
	}

	if err := value.Err(); err != nil {
		return wrapDecodeError(err, "CUE value contains errors and cannot be decoded", makeContext("error", err.Error()))
	}

	if err := value.Decode(target); err != nil {
		targetType := targetElem.Type().Name()
		if targetType == "" {
			targetType = targetElem.Type().String()
		}

		return wrapDecodeError(
			err,
			"failed to decode CUE value to Go struct",
			makeContext("target_type", targetType, "value_kind", value.Kind().String()),
		)
	}

	return nil
}
