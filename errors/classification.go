package errors

// ErrorClassification indicates whether an error should trigger a retry.
// The resource layer never retries on its own; the classification is a hint
// for callers deciding whether to try again.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: connection resets, server errors, permission races.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: unknown protocols, malformed locations, missing resources.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeIOFailure: ClassificationRetryable,

	CodeUnknownProtocol: ClassificationPermanent,
	CodeInvalidFormat:   ClassificationPermanent,
	CodeMalformedPath:   ClassificationPermanent,
	CodeNotSupported:    ClassificationPermanent,
	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyConsumed: ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeInvalidConfig:   ClassificationPermanent,

	// Configuration errors are user mistakes, not transient conditions
	CodeConfigLoadFailed:       ClassificationPermanent,
	CodeConfigBuildFailed:      ClassificationPermanent,
	CodeConfigValidationFailed: ClassificationPermanent,
	CodeConfigDecodeFailed:     ClassificationPermanent,
	CodeConfigEncodeFailed:     ClassificationPermanent,

	CodeInternal: ClassificationPermanent,
	CodeUnknown:  ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
