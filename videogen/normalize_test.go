package videogen

import (
	"encoding/base64"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeMissingPrompt(t *testing.T) {
	cases := []RawInput{
		{},
		{Prompt: "   "},
		{Prompt: "", PromptBase64: ""},
		{Prompt: "\t\n"},
	}

	for _, in := range cases {
		_, err := Normalize(in)
		require.ErrorIs(t, err, ErrMissingPrompt)
	}
}

func TestNormalizeBase64TakesPrecedence(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("a cat surfing a wave"))

	req, err := Normalize(RawInput{
		Prompt:       "this plain prompt must be ignored",
		PromptBase64: encoded,
	})
	require.NoError(t, err)
	assert.Equal(t, "a cat surfing a wave", req.Prompt)
}

func TestNormalizeBase64MultiByte(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString([]byte("夕焼けの海を飛ぶ鳥"))

	req, err := Normalize(RawInput{PromptBase64: encoded})
	require.NoError(t, err)
	assert.Equal(t, "夕焼けの海を飛ぶ鳥", req.Prompt)
}

func TestNormalizeBase64Errors(t *testing.T) {
	cases := map[string]string{
		"invalid alphabet": "%%%not-base64%%%",
		"truncated":        "YWJjZA=",
		"decodes to blank": base64.StdEncoding.EncodeToString([]byte("  \n\t ")),
		"invalid utf8":     base64.StdEncoding.EncodeToString([]byte{0xff, 0xfe, 0xfd}),
	}

	for name, b64 := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Normalize(RawInput{PromptBase64: b64})
			require.ErrorIs(t, err, ErrPromptDecode)
		})
	}
}

func TestSanitizePrompt(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"line separator", "one two", "one two"},
		{"paragraph separator", "one two", "one two"},
		{"crlf", "one\r\ntwo", "one two"},
		{"lone cr", "one\rtwo", "one two"},
		{"lone lf", "one\ntwo", "one two"},
		{"whitespace runs", "one   two\t\tthree", "one two three"},
		{"surrounding whitespace", "  padded  ", "padded"},
		{"mixed", " a  b\r\n\r\n c   d\n", "a b c d"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SanitizePrompt(tc.in)
			assert.Equal(t, tc.want, got)

			// Idempotent: a second pass changes nothing.
			assert.Equal(t, got, SanitizePrompt(got))

			assert.NotContains(t, got, " ")
			assert.NotContains(t, got, " ")
			assert.NotContains(t, got, "\r")
			assert.NotContains(t, got, "\n")
			assert.NotContains(t, got, "  ")
			assert.Equal(t, strings.TrimSpace(got), got)
		})
	}
}

func TestNormalizeEmptyAfterSanitization(t *testing.T) {
	_, err := Normalize(RawInput{PromptBase64: base64.StdEncoding.EncodeToString([]byte("  "))})
	require.ErrorIs(t, err, ErrPromptDecode)

	// Separator-only plain prompts count as blank and never resolve.
	_, err = Normalize(RawInput{Prompt: "  "})
	require.ErrorIs(t, err, ErrMissingPrompt)
}

func TestClampDuration(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	cases := []struct {
		name string
		in   *float64
		want int
	}{
		{"absent", nil, 4},
		{"nan", f(math.NaN()), 4},
		{"positive inf", f(math.Inf(1)), 4},
		{"negative inf", f(math.Inf(-1)), 4},
		{"below minimum", f(0), 1},
		{"negative", f(-3), 1},
		{"above maximum", f(8.5), 8},
		{"way above", f(120), 8},
		{"in range", f(4), 4},
		{"fractional", f(2.4), 2},
		{"minimum", f(1), 1},
		{"maximum", f(8), 8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClampDuration(tc.in))
		})
	}
}

func TestNormalizeDefaults(t *testing.T) {
	req, err := Normalize(RawInput{Prompt: "sunrise timelapse"})
	require.NoError(t, err)

	assert.Equal(t, 4, req.DurationSeconds)
	assert.Equal(t, "16:9", req.AspectRatio)
	assert.Empty(t, req.Style)
	assert.Empty(t, req.ReferenceImageURL)
}

func TestNormalizeAspectRatioPassthrough(t *testing.T) {
	req, err := Normalize(RawInput{Prompt: "vertical clip", AspectRatio: "9:16"})
	require.NoError(t, err)
	assert.Equal(t, "9:16", req.AspectRatio)
}

func TestNormalizeOptionalFieldsTrimmed(t *testing.T) {
	req, err := Normalize(RawInput{
		Prompt:            "stop motion clay figures",
		Style:             "  claymation  ",
		ReferenceImageURL: " https://cdn.example.com/ref.png ",
	})
	require.NoError(t, err)
	assert.Equal(t, "claymation", req.Style)
	assert.Equal(t, "https://cdn.example.com/ref.png", req.ReferenceImageURL)

	// Whitespace-only optional fields are treated as absent.
	req, err = Normalize(RawInput{Prompt: "drone shot", Style: "   "})
	require.NoError(t, err)
	assert.Empty(t, req.Style)
}
