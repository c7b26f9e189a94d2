package videogen

import (
	"encoding/base64"
	"math"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// lineBreaks maps every line-break form to a single space. U+2028/U+2029 are
// handled first: they break downstream transports that only pass single-byte
// characters, so the sanitized prompt must contain zero occurrences of them.
var lineBreaks = strings.NewReplacer(
	" ", " ",
	" ", " ",
	"\r\n", " ",
	"\r", " ",
	"\n", " ",
)

// Normalize validates and cleans raw caller input into a GenerationRequest.
// Prompt resolution precedence: promptBase64 wins over prompt; if both are
// absent or blank the input is rejected.
func Normalize(in RawInput) (*GenerationRequest, error) {
	prompt, err := resolvePrompt(in)
	if err != nil {
		return nil, err
	}

	prompt = SanitizePrompt(prompt)
	if prompt == "" {
		return nil, ErrEmptyPrompt
	}

	aspect := strings.TrimSpace(in.AspectRatio)
	if aspect == "" {
		aspect = DefaultAspectRatio
	}

	return &GenerationRequest{
		Prompt:            prompt,
		DurationSeconds:   ClampDuration(in.DurationSeconds),
		AspectRatio:       aspect,
		Style:             strings.TrimSpace(in.Style),
		ReferenceImageURL: strings.TrimSpace(in.ReferenceImageURL),
	}, nil
}

// resolvePrompt picks the working prompt. The base64 channel exists as a
// workaround for callers behind transports that mangle multi-byte text, and
// it takes precedence over the plain field whenever present.
func resolvePrompt(in RawInput) (string, error) {
	if b64 := strings.TrimSpace(in.PromptBase64); b64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return "", errors.Wrap(ErrPromptDecode, err.Error())
		}
		if !utf8.Valid(decoded) {
			return "", errors.Wrap(ErrPromptDecode, "decoded bytes are not valid UTF-8")
		}
		text := string(decoded)
		if strings.TrimSpace(text) == "" {
			return "", errors.Wrap(ErrPromptDecode, "decoded prompt is blank")
		}
		return text, nil
	}

	if strings.TrimSpace(in.Prompt) != "" {
		return in.Prompt, nil
	}

	return "", ErrMissingPrompt
}

// SanitizePrompt flattens all line-break forms to spaces, collapses
// whitespace runs and trims. Idempotent.
func SanitizePrompt(s string) string {
	s = lineBreaks.Replace(s)
	s = whitespaceRun.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// ClampDuration maps the caller-supplied duration to a valid integer second
// count: absent or non-finite values fall back to the default, everything
// else is rounded and clamped into [MinDurationSeconds, MaxDurationSeconds].
func ClampDuration(v *float64) int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return DefaultDurationSeconds
	}
	d := int(math.Round(*v))
	if d < MinDurationSeconds {
		return MinDurationSeconds
	}
	if d > MaxDurationSeconds {
		return MaxDurationSeconds
	}
	return d
}
