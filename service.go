package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/ifoundaim/videogen-mcp/videogen"
)

var aspectRatioPattern = regexp.MustCompile(`^\d+:\d+$`)

// Boundary validation errors. These belong to the schema-validation layer a
// tool host normally provides; the normalizer assumes they already passed.
var (
	errInvalidAspectRatio  = errors.New("aspectRatio must match <digits>:<digits>, e.g. 16:9")
	errInvalidReferenceURL = errors.New("referenceImageUrl must be a valid URL")
)

// VideoService handles video generation tool invocations
type VideoService struct {
	client *videogen.Client
}

// NewVideoService creates a new VideoService instance
func NewVideoService(client *videogen.Client) *VideoService {
	return &VideoService{client: client}
}

// ParseArguments converts loosely-typed tool-call arguments into a RawInput,
// applying the field-level schema checks before the normalizer runs.
func ParseArguments(args map[string]any) (videogen.RawInput, error) {
	var in videogen.RawInput

	// Round-tripping through JSON gives the same coercion rules as the
	// REST binding path.
	data, err := json.Marshal(args)
	if err != nil {
		return in, fmt.Errorf("invalid arguments: %w", err)
	}
	if err := json.Unmarshal(data, &in); err != nil {
		return in, fmt.Errorf("invalid arguments: %w", err)
	}

	return in, ValidateInput(in)
}

// ValidateInput enforces the per-field constraints of the tool schema.
// Prompt presence is deliberately not checked here: that is the
// normalizer's resolution policy.
func ValidateInput(in videogen.RawInput) error {
	if in.AspectRatio != "" && !aspectRatioPattern.MatchString(in.AspectRatio) {
		return errInvalidAspectRatio
	}
	if ref := strings.TrimSpace(in.ReferenceImageURL); ref != "" {
		if _, err := url.ParseRequestURI(ref); err != nil {
			return errInvalidReferenceURL
		}
	}
	return nil
}

// GenerateVideo normalizes the input and performs the single provider call.
func (s *VideoService) GenerateVideo(ctx context.Context, in videogen.RawInput) (*videogen.GenerationResult, error) {
	req, err := videogen.Normalize(in)
	if err != nil {
		return nil, err
	}

	return s.client.Generate(ctx, req)
}
