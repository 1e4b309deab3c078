package config

import (
	"github.com/jmgilman/go/resource/errors"
)

// wrapLoadError wraps an error with CodeConfigLoadFailed and attaches context metadata.
func wrapLoadError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigLoadFailed, message, ctx)
}

// wrapBuildError wraps an error with CodeConfigBuildFailed and attaches context metadata.
func wrapBuildError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigBuildFailed, message, ctx)
}

// wrapValidationError wraps an error with CodeConfigValidationFailed and attaches context metadata.
func wrapValidationError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigValidationFailed, message, ctx)
}

// wrapDecodeError wraps an error with CodeConfigDecodeFailed and attaches context metadata.
func wrapDecodeError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigDecodeFailed, message, ctx)
}

// wrapEncodeError wraps an error with CodeConfigEncodeFailed and attaches context metadata.
func wrapEncodeError(err error, message string, ctx map[string]interface{}) errors.PlatformError {
	if err == nil {
		return nil
	}
	return errors.WrapWithContext(err, errors.CodeConfigEncodeFailed, message, ctx)
}

// makeContext builds a context map from alternating key/value pairs.
// Example: makeContext("path", "/foo/bar", "line", 42).
func makeContext(kvPairs ...interface{}) map[string]interface{} {
	if len(kvPairs) == 0 {
		return nil
	}

	ctx := make(map[string]interface{})
	for i := 0; i < len(kvPairs)-1; i += 2 {
		key, ok := kvPairs[i].(string)
		if !ok {
			continue
		}
		ctx[key] = kvPairs[i+1]
	}

	if len(ctx) == 0 {
		return nil
	}
	return ctx
}
