package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resolution errors.

	// CodeUnknownProtocol indicates a location referenced a protocol with no registered handler.
	CodeUnknownProtocol ErrorCode = "UNKNOWN_PROTOCOL"

	// CodeInvalidFormat indicates a location does not match the shape its handler requires.
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"

	// CodeMalformedPath indicates a relative path walks above its root.
	CodeMalformedPath ErrorCode = "MALFORMED_PATH"

	// CodeNotSupported indicates the resource does not support the requested operation.
	CodeNotSupported ErrorCode = "NOT_SUPPORTED"

	// Resource errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyConsumed indicates a single-use stream has already been opened.
	CodeAlreadyConsumed ErrorCode = "ALREADY_CONSUMED"

	// CodeIOFailure indicates a transport or permission failure while opening a stream.
	CodeIOFailure ErrorCode = "IO_FAILURE"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Configuration store errors.

	// CodeConfigLoadFailed indicates configuration file loading failed.
	CodeConfigLoadFailed ErrorCode = "CONFIG_LOAD_FAILED"

	// CodeConfigBuildFailed indicates configuration compilation or evaluation failed.
	CodeConfigBuildFailed ErrorCode = "CONFIG_BUILD_FAILED"

	// CodeConfigValidationFailed indicates a configuration source failed schema validation.
	CodeConfigValidationFailed ErrorCode = "CONFIG_VALIDATION_FAILED"

	// CodeConfigDecodeFailed indicates decoding a configuration section into a Go value failed.
	CodeConfigDecodeFailed ErrorCode = "CONFIG_DECODE_FAILED"

	// CodeConfigEncodeFailed indicates rendering a configuration section to YAML/JSON failed.
	CodeConfigEncodeFailed ErrorCode = "CONFIG_ENCODE_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
