package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v82/github"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// SubmitReview posts all comments as a single review with the COMMENT
// event, so the bot never approves or blocks a pull request.
func (c *Client) SubmitReview(ctx context.Context, owner, repo string, number int, comments []model.ReviewCommentRecord) error {
	drafts := make([]*gh.DraftReviewComment, 0, len(comments))
	for _, comment := range comments {
		drafts = append(drafts, &gh.DraftReviewComment{
			Path: gh.Ptr(comment.Path),
			Line: gh.Ptr(comment.Line),
			Body: gh.Ptr(comment.Body),
		})
	}

	review := &gh.PullRequestReviewRequest{
		Event:    gh.Ptr("COMMENT"),
		Comments: drafts,
	}

	_, resp, err := c.gh.PullRequests.CreateReview(ctx, owner, repo, number, review)
	if err != nil {
		return fmt.Errorf("creating review for %s/%s#%d: %w", owner, repo, number, err)
	}

	logRateLimit(resp, "create-review", len(comments))
	return nil
}
