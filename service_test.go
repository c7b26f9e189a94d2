package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ifoundaim/videogen-mcp/videogen"
)

func TestParseArgumentsCoercesTypes(t *testing.T) {
	in, err := ParseArguments(map[string]any{
		"prompt":          "dancing robots",
		"durationSeconds": float64(7),
		"aspectRatio":     "4:3",
		"style":           "retro",
	})
	require.NoError(t, err)

	assert.Equal(t, "dancing robots", in.Prompt)
	require.NotNil(t, in.DurationSeconds)
	assert.Equal(t, float64(7), *in.DurationSeconds)
	assert.Equal(t, "4:3", in.AspectRatio)
	assert.Equal(t, "retro", in.Style)
}

func TestParseArgumentsAbsentDuration(t *testing.T) {
	in, err := ParseArguments(map[string]any{"prompt": "x"})
	require.NoError(t, err)
	assert.Nil(t, in.DurationSeconds)
}

func TestValidateInputAspectRatio(t *testing.T) {
	valid := []string{"", "16:9", "9:16", "4:3", "21:9", "1:1"}
	for _, ratio := range valid {
		assert.NoError(t, ValidateInput(videogen.RawInput{AspectRatio: ratio}), ratio)
	}

	invalid := []string{"16x9", "16:9:1", "wide", ":9", "16:", "-16:9", "16 : 9"}
	for _, ratio := range invalid {
		assert.Error(t, ValidateInput(videogen.RawInput{AspectRatio: ratio}), ratio)
	}
}

func TestValidateInputReferenceImageURL(t *testing.T) {
	require.NoError(t, ValidateInput(videogen.RawInput{ReferenceImageURL: "https://cdn.example.com/a.png"}))
	require.NoError(t, ValidateInput(videogen.RawInput{ReferenceImageURL: ""}))

	err := ValidateInput(videogen.RawInput{ReferenceImageURL: "not a url"})
	require.Error(t, err)
}

func TestParseArgumentsRejectsBadAspectRatio(t *testing.T) {
	_, err := ParseArguments(map[string]any{
		"prompt":      "x",
		"aspectRatio": "wide",
	})
	require.Error(t, err)
}
