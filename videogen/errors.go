package videogen

import "errors"

// Caller input errors. These are 4xx-equivalent tool-invocation failures and
// are never retried.
var (
	// ErrMissingPrompt indicates neither prompt nor promptBase64 was supplied.
	ErrMissingPrompt = errors.New("videogen: prompt is required (prompt or promptBase64)")

	// ErrPromptDecode indicates promptBase64 was not valid base64/UTF-8 or
	// decoded to nothing but whitespace.
	ErrPromptDecode = errors.New("videogen: failed to decode promptBase64")

	// ErrEmptyPrompt indicates the prompt was empty after sanitization.
	ErrEmptyPrompt = errors.New("videogen: prompt is empty after sanitization")
)

// ErrMissingAPIKey indicates the client was configured without credentials.
// This is a configuration failure, not a per-call condition.
var ErrMissingAPIKey = errors.New("videogen: api key is required")

// IsInputError reports whether err belongs to the caller-input taxonomy, as
// opposed to configuration failures.
func IsInputError(err error) bool {
	return errors.Is(err, ErrMissingPrompt) ||
		errors.Is(err, ErrPromptDecode) ||
		errors.Is(err, ErrEmptyPrompt)
}
