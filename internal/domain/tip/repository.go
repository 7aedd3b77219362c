package tip

import "context"

// Generator defines the contract for the hosted text-generation API
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (*GenerateResponse, error)
}

// Repository defines the contract for tip history storage
type Repository interface {
	Create(ctx context.Context, t *Tip) error
	ListRecent(ctx context.Context, limit int) ([]Tip, error)
}
