// Package errors provides the structured error type returned by the resource
// loader and its backends.
//
// Every failure surfaced by this module is a PlatformError carrying an
// ErrorCode from a small, closed taxonomy:
//
//   - CodeUnknownProtocol: the location names a protocol with no handler
//   - CodeInvalidFormat: the location does not match its handler's shape
//   - CodeNotFound: the resource is absent at resolution or open time
//   - CodeAlreadyConsumed: a single-use stream was opened twice
//   - CodeNotSupported: the resource cannot perform the requested operation
//   - CodeMalformedPath: a relative path walks above its root
//   - CodeIOFailure: transport or permission failure while opening a stream
//
// Configuration-store failures use the CodeConfig* family.
//
// Errors stay compatible with the standard library (errors.Is, errors.As,
// errors.Unwrap) and carry an optional context map for debugging:
//
//	r, err := loader.GetResource("assembly://app/templates")
//	if errors.GetCode(err) == errors.CodeInvalidFormat {
//	    // the location needs three segments
//	}
//
// Only CodeIOFailure is classified as retryable by default. The loader never
// retries internally; IsRetryable is a hint for callers.
package errors
