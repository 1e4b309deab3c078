package config

import (
	"context"
	"fmt"

	"cuelang.org/go/cue"
	cueerrors "cuelang.org/go/cue/errors"
)

// ValidationIssue is a single schema violation.
type ValidationIssue struct {
	// Path is the field path where the error occurred (e.g., ["database", "port"]).
	Path []string

	// Message is the human-readable error message.
	Message string
}

// Validate unifies data with schema and requires the result to be concrete.
// Returns CodeConfigValidationFailed with the collected issues in the error
// context when the data does not satisfy the schema.
func Validate(ctx context.Context, schema cue.Value, data cue.Value) error {
	if err := ctx.Err(); err != nil {
		return wrapValidationError(err, "context cancelled", nil)
	}

	if err := schema.Err(); err != nil {
		return wrapValidationError(err, "schema is invalid", makeContext(
			"schema_error", cueerrors.Details(err, nil),
			"issues", extractValidationIssues(err),
		))
	}

	if err := data.Err(); err != nil {
		return wrapValidationError(err, "data is invalid", makeContext(
			"data_error", cueerrors.Details(err, nil),
			"issues", extractValidationIssues(err),
		))
	}

	unified := schema.Unify(data)
	if err := unified.Validate(cue.Concrete(true), cue.Final(), cue.All()); err != nil {
		return wrapValidationError(err, "validation failed", makeContext(
			"details", cueerrors.Details(err, nil),
			"issues", extractValidationIssues(err),
		))
	}

	return nil
}

func extractValidationIssues(err error) []ValidationIssue {
	if err == nil {
		return nil
	}

	var issues []ValidationIssue
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		issues = append(issues, ValidationIssue{
			Path:    e.Path(),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return issues
}
