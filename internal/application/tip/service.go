package tip

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	domain "ecoclean/internal/domain/tip"
)

// Model is the hosted model every tip is generated with
const Model = "gemini-2.0-flash"

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// Service defines the tip generation operations
type Service interface {
	// GetEcoTip always returns a tip. Generation failures yield the
	// fallback text for the summary's mode.
	GetEcoTip(ctx context.Context, summary domain.ScanSummary) domain.Tip
	ListTips(ctx context.Context, limit int) ([]domain.Tip, error)
}

type service struct {
	generator domain.Generator
	repo      domain.Repository
	timeout   time.Duration
}

// NewService creates a new tip service. generator and repo may be nil: a nil
// generator always produces fallback tips, a nil repo disables history.
func NewService(generator domain.Generator, repo domain.Repository, timeout time.Duration) Service {
	return &service{
		generator: generator,
		repo:      repo,
		timeout:   timeout,
	}
}

func (s *service) GetEcoTip(ctx context.Context, summary domain.ScanSummary) domain.Tip {
	t := domain.Tip{
		ID:             uuid.New().String(),
		Mode:           summary.Mode,
		ItemCount:      summary.ItemCount,
		TotalSizeBytes: summary.TotalSizeBytes,
		CreatedAt:      time.Now(),
	}

	text, err := s.generate(ctx, summary)
	if err != nil {
		logFailure(summary.Mode, err)
		t.Text = FallbackTip(summary.Mode)
		t.Source = domain.SourceFallback
	} else {
		t.Text = text
		t.Source = domain.SourceGenerated
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, &t); err != nil {
			slog.Warn("Failed to record tip", "id", t.ID, "mode", t.Mode, "error", err)
		}
	}

	return t
}

func (s *service) generate(ctx context.Context, summary domain.ScanSummary) (string, error) {
	if s.generator == nil {
		return "", domain.ErrNotConfigured
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.generator.Generate(ctx, Model, BuildPrompt(summary))
	if err != nil {
		return "", err
	}
	if resp == nil {
		return "", domain.ErrNoResponse
	}

	text, err := resp.Text()
	if err != nil {
		first, ok := resp.FirstPartText()
		if !ok {
			return "", err
		}
		text = first
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrEmptyText
	}
	return text, nil
}

func logFailure(mode domain.Mode, err error) {
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		slog.Debug("Using fallback tip", "mode", mode, "reason", err)
	case errors.Is(err, domain.ErrNoResponse),
		errors.Is(err, domain.ErrEmptyText),
		errors.Is(err, domain.ErrNoCandidates),
		errors.Is(err, domain.ErrPromptBlocked),
		errors.Is(err, domain.ErrResponseBlocked):
		slog.Warn("Text generation returned no usable text, using fallback", "mode", mode, "reason", err)
	default:
		slog.Error("Text generation failed, using fallback", "mode", mode, "error", err)
	}
}

func (s *service) ListTips(ctx context.Context, limit int) ([]domain.Tip, error) {
	if s.repo == nil {
		return []domain.Tip{}, nil
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
