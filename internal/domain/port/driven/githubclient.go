package driven

import (
	"context"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// GitHubClient defines the driven port for the hosting platform.
// Read methods fetch PR metadata and diff text; the single write method
// submits the batched review.
type GitHubClient interface {
	// FetchPRContext returns the title and description of a pull request.
	FetchPRContext(ctx context.Context, owner, repo string, number int) (*model.PRContext, error)
	// FetchDiff returns the full unified diff of a pull request.
	FetchDiff(ctx context.Context, owner, repo string, number int) (string, error)
	// FetchCompareDiff returns the unified diff between two revisions.
	FetchCompareDiff(ctx context.Context, owner, repo, base, head string) (string, error)
	// SubmitReview posts all comments as one COMMENT-event review.
	// It must never be called with an empty comment list.
	SubmitReview(ctx context.Context, owner, repo string, number int, comments []model.ReviewCommentRecord) error
}
