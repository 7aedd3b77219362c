package tip

import "errors"

var (
	ErrPromptBlocked   = errors.New("prompt was blocked")
	ErrNoCandidates    = errors.New("response has no candidates")
	ErrResponseBlocked = errors.New("response was blocked")
	ErrNoResponse      = errors.New("generator returned no response")
	ErrEmptyText       = errors.New("generated text is empty")
	ErrNotConfigured   = errors.New("text generation is not configured")
)
