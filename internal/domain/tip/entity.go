package tip

import (
	"strings"
	"time"
)

// Mode represents a cleanup category
type Mode string

const (
	ModeJunk         Mode = "junk"
	ModeCache        Mode = "cache"
	ModeLarge        Mode = "large"
	ModeDuplicates   Mode = "duplicates"
	ModeScreenshots  Mode = "screenshots"
	ModeDownloads    Mode = "downloads"
	ModeEmptyFolders Mode = "empty_folders"
	ModeAPKs         Mode = "apks"
	ModeUnusedApps   Mode = "unused_apps"
)

// Modes lists every known cleanup category
var Modes = []Mode{
	ModeJunk, ModeCache, ModeLarge, ModeDuplicates, ModeScreenshots,
	ModeDownloads, ModeEmptyFolders, ModeAPKs, ModeUnusedApps,
}

// Source tells whether a tip was generated or taken from the fallback table
type Source string

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

// ScanSummary is the aggregate result of one cleanup scan
type ScanSummary struct {
	Mode           Mode     `json:"mode"`
	ItemCount      int      `json:"itemCount"`
	TotalSizeBytes int64    `json:"totalSizeBytes"`
	SampleFiles    []string `json:"sampleFiles,omitempty"`
}

// Tip is the user-facing result of tip generation
type Tip struct {
	ID             string    `json:"id"`
	Mode           Mode      `json:"mode"`
	Text           string    `json:"text"`
	Source         Source    `json:"source"`
	ItemCount      int       `json:"itemCount"`
	TotalSizeBytes int64     `json:"totalSizeBytes"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Part is one piece of generated content
type Part struct {
	Text string `json:"text,omitempty"`
}

// Content holds the parts produced for one candidate
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

// Candidate is one generated alternative
type Candidate struct {
	Content      *Content `json:"content,omitempty"`
	FinishReason string   `json:"finishReason,omitempty"`
}

// PromptFeedback reports whether the prompt itself was rejected
type PromptFeedback struct {
	BlockReason string `json:"blockReason,omitempty"`
}

// GenerateResponse is the response of a text-generation call
type GenerateResponse struct {
	Candidates     []Candidate     `json:"candidates,omitempty"`
	PromptFeedback *PromptFeedback `json:"promptFeedback,omitempty"`
}

var blockedFinishReasons = map[string]bool{
	"SAFETY":             true,
	"RECITATION":         true,
	"BLOCKLIST":          true,
	"PROHIBITED_CONTENT": true,
	"SPII":               true,
}

// Text returns the concatenated text of the first candidate. It fails when
// the prompt was blocked, there are no candidates, or the first candidate
// stopped for a blocking reason.
func (r *GenerateResponse) Text() (string, error) {
	if r.PromptFeedback != nil && r.PromptFeedback.BlockReason != "" {
		return "", ErrPromptBlocked
	}
	if len(r.Candidates) == 0 {
		return "", ErrNoCandidates
	}

	first := r.Candidates[0]
	if blockedFinishReasons[first.FinishReason] {
		return "", ErrResponseBlocked
	}
	if first.Content == nil {
		return "", nil
	}

	var sb strings.Builder
	for _, p := range first.Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// FirstPartText returns the text of the first candidate's first part, if any
func (r *GenerateResponse) FirstPartText() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	c := r.Candidates[0].Content
	if c == nil || len(c.Parts) == 0 {
		return "", false
	}
	return c.Parts[0].Text, true
}
