package driven

import (
	"context"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// Reviewer defines the driven port for the language model. Review sends
// one self-contained chunk prompt and returns the model's findings, or an
// error on any transport, decoding, or response-shape failure. A nil
// error with an empty slice means the model responded and found nothing
// to flag.
type Reviewer interface {
	Review(ctx context.Context, prompt string) ([]model.ReviewFinding, error)
}
