package videogen

// Status 生成状态（封闭枚举，不透传 provider 原始词汇）
type Status string

const (
	StatusQueued    Status = "queued"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Duration bounds in seconds. The defaults are part of the tool contract,
// callers rely on them.
const (
	MinDurationSeconds     = 1
	MaxDurationSeconds     = 8
	DefaultDurationSeconds = 4
)

// DefaultAspectRatio is substituted when the caller omits aspectRatio.
const DefaultAspectRatio = "16:9"

// RawInput carries the untrusted caller-supplied fields before
// normalization. Pointer fields distinguish "absent" from zero values.
type RawInput struct {
	Prompt            string   `json:"prompt,omitempty"`
	PromptBase64      string   `json:"promptBase64,omitempty"`
	DurationSeconds   *float64 `json:"durationSeconds,omitempty"`
	AspectRatio       string   `json:"aspectRatio,omitempty"`
	Style             string   `json:"style,omitempty"`
	ReferenceImageURL string   `json:"referenceImageUrl,omitempty"`
}

// GenerationRequest is the normalized, fully-populated request consumed by
// the provider client. Valid by construction: the client never re-checks it.
type GenerationRequest struct {
	Prompt            string `json:"prompt"`
	DurationSeconds   int    `json:"durationSeconds"`
	AspectRatio       string `json:"aspectRatio"`
	Style             string `json:"style,omitempty"`
	ReferenceImageURL string `json:"referenceImageUrl,omitempty"`
}

// GenerationResult is the stable result shape returned to callers. Raw keeps
// the provider's full parsed body for diagnostics only; callers must not
// interpret it.
type GenerationResult struct {
	VideoURL        string         `json:"videoUrl"`
	Status          Status         `json:"status"`
	PreviewImageURL string         `json:"previewImageUrl,omitempty"`
	JobID           string         `json:"jobId,omitempty"`
	Raw             map[string]any `json:"rawResponse"`
}
