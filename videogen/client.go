package videogen

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultEndpoint is used when no endpoint override is configured.
const DefaultEndpoint = "https://api.videogen.io/v1/generate"

// Candidate key names per logical response field, in priority order. The
// provider's schema is unversioned and its field names are provisional, so
// the mapping lives here as data rather than inline conditionals; extend the
// lists when the provider's contract shifts.
var (
	videoURLKeys = []string{"video_url", "videoUrl", "output_url", "outputUrl"}
	previewKeys  = []string{"preview_image_url", "previewImageUrl", "thumbnail_url", "thumbnailUrl", "image_url", "imageUrl"}
	jobIDKeys    = []string{"job_id", "jobId", "task_id", "taskId", "id"}
	statusKeys   = []string{"status", "state"}
)

// Options configures the provider client.
type Options struct {
	APIKey     string
	Endpoint   string
	HTTPClient *http.Client
}

// Client performs a single synchronous call per request to the
// video-generation provider API.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

// NewClient constructs a client. A missing API key is a configuration
// failure and is rejected here, before any call can be attempted.
func NewClient(opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}

	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 120 * time.Second}
	}

	return &Client{
		apiKey:     opts.APIKey,
		endpoint:   endpoint,
		httpClient: httpClient,
	}, nil
}

// Generate issues one authenticated POST to the provider and maps the
// response into a GenerationResult. A well-formed HTTP error response is not
// an error: it maps to StatusFailed. Only transport-level failures and
// configuration problems return a non-nil error.
func (c *Client) Generate(ctx context.Context, req *GenerationRequest) (*GenerationResult, error) {
	if strings.TrimSpace(c.apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	body, err := json.Marshal(buildPayload(req))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal provider payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create provider request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call video generation API")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read provider response")
	}

	// The upstream schema is undocumented; an unparseable body is treated
	// as absent, never as a hard error.
	raw := map[string]any{}
	if err := json.Unmarshal(respBody, &raw); err != nil {
		raw = map[string]any{}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logrus.WithFields(logrus.Fields{
			"status_code": resp.StatusCode,
			"endpoint":    c.endpoint,
		}).Errorf("Video generation API returned error: %s", strings.TrimSpace(string(respBody)))
		return &GenerationResult{VideoURL: "", Status: StatusFailed, Raw: raw}, nil
	}

	videoURL := firstString(raw, videoURLKeys)
	return &GenerationResult{
		VideoURL:        videoURL,
		Status:          classifyStatus(firstString(raw, statusKeys), videoURL),
		PreviewImageURL: firstString(raw, previewKeys),
		JobID:           firstString(raw, jobIDKeys),
		Raw:             raw,
	}, nil
}

// buildPayload maps the normalized request onto the provider's wire names.
// Kept separate from Generate so the provisional field naming stays in one
// place next to the candidate key lists.
func buildPayload(req *GenerationRequest) map[string]any {
	payload := map[string]any{
		"prompt":       req.Prompt,
		"duration":     req.DurationSeconds,
		"aspect_ratio": req.AspectRatio,
	}
	if req.Style != "" {
		payload["style"] = req.Style
	}
	if req.ReferenceImageURL != "" {
		payload["reference_image_url"] = req.ReferenceImageURL
	}
	return payload
}

// firstString returns the first candidate key whose value is a non-empty
// string. Non-string values are skipped, not coerced.
func firstString(body map[string]any, keys []string) string {
	for _, key := range keys {
		if v, ok := body[key].(string); ok && strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// classifyStatus folds the provider's ad-hoc status vocabulary into the
// closed queued/completed/failed enumeration.
func classifyStatus(rawStatus, videoURL string) Status {
	if rawStatus == "" {
		if videoURL != "" {
			return StatusCompleted
		}
		return StatusQueued
	}

	s := strings.ToLower(strings.TrimSpace(rawStatus))
	switch {
	case strings.HasPrefix(s, "complete"):
		return StatusCompleted
	case strings.HasPrefix(s, "fail"), s == "error":
		return StatusFailed
	default:
		return StatusQueued
	}
}
