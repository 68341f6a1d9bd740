// Package application wires the diff-to-feedback pipeline: resolve the
// diff for a change event, parse and filter it, prompt the model once per
// chunk, map findings onto file/line coordinates, and submit the result
// as one batched review.
package application

import (
	"context"
	"log/slog"
	"strconv"

	"github.com/diffwatch/reviewbot/internal/diffparse"
	"github.com/diffwatch/reviewbot/internal/domain/model"
	"github.com/diffwatch/reviewbot/internal/domain/port/driven"
)

// Pipeline runs one review pass over a pull request change event.
// It depends only on port interfaces; both collaborators are injected.
type Pipeline struct {
	github   driven.GitHubClient
	reviewer driven.Reviewer
	exclude  []string
}

// NewPipeline creates a Pipeline with the required collaborators and the
// configured exclusion glob patterns.
func NewPipeline(github driven.GitHubClient, reviewer driven.Reviewer, exclude []string) *Pipeline {
	return &Pipeline{
		github:   github,
		reviewer: reviewer,
		exclude:  exclude,
	}
}

// Run executes the pipeline for one change event. Unsupported actions are
// a soft no-op. Fetch and submission failures are fatal; a failed model
// call only skips its chunk. Chunks are reviewed strictly sequentially so
// the final comment order is deterministic: file order, then chunk order,
// then finding order.
func (p *Pipeline) Run(ctx context.Context, event model.ChangeEvent) error {
	if !event.Supported() {
		slog.Info("unsupported event action, nothing to review", "action", event.Action)
		return nil
	}

	prCtx, err := p.github.FetchPRContext(ctx, event.Owner, event.Repo, event.Number)
	if err != nil {
		return model.NewPipelineError(model.KindFetch, "fetch PR context", err)
	}

	diff, err := p.resolveDiff(ctx, event)
	if err != nil {
		return model.NewPipelineError(model.KindFetch, "fetch diff", err)
	}

	files := excludeFiles(diffparse.Parse(diff), p.exclude)

	var comments []model.ReviewCommentRecord
	chunksSent := 0
	for _, file := range files {
		for _, chunk := range file.Chunks {
			prompt := buildPrompt(file.Path, chunk, *prCtx)
			chunksSent++

			findings := p.requestReview(ctx, prompt, file.Path)
			comments = append(comments, mapFindings(file.Path, findings)...)
		}
	}

	if len(comments) == 0 {
		slog.Info("review complete, no comments to submit",
			"files", len(files),
			"chunks", chunksSent,
		)
		return nil
	}

	if err := p.github.SubmitReview(ctx, event.Owner, event.Repo, event.Number, comments); err != nil {
		return model.NewPipelineError(model.KindSubmission, "submit review", err)
	}

	slog.Info("review submitted",
		"files", len(files),
		"chunks", chunksSent,
		"comments", len(comments),
	)
	return nil
}

// resolveDiff picks which two revisions to diff for the event: the PR's
// full range for opened/reopened, or old head against new head for
// synchronize.
func (p *Pipeline) resolveDiff(ctx context.Context, event model.ChangeEvent) (string, error) {
	if event.FullRange() {
		return p.github.FetchDiff(ctx, event.Owner, event.Repo, event.Number)
	}
	return p.github.FetchCompareDiff(ctx, event.Owner, event.Repo, event.Before, event.After)
}

// requestReview sends one prompt to the model, converting every failure
// into "no findings" so a single bad response cannot abort review of the
// rest of the pull request. One attempt per chunk; no retries.
func (p *Pipeline) requestReview(ctx context.Context, prompt, path string) []model.ReviewFinding {
	findings, err := p.reviewer.Review(ctx, prompt)
	if err != nil {
		slog.Warn("model review failed, skipping chunk",
			"path", path,
			"error", err,
		)
		return nil
	}
	return findings
}

// mapFindings anchors a chunk's findings to the file being processed.
// Deleted-file paths produce nothing (such files are already excluded
// upstream). Findings whose lineNumber does not parse as a non-negative
// base-10 integer are dropped with a warning rather than passed through,
// so one hallucinated line number cannot fail the whole batched
// submission.
func mapFindings(path string, findings []model.ReviewFinding) []model.ReviewCommentRecord {
	if path == "" || path == model.DeletedFilePath {
		return nil
	}

	records := make([]model.ReviewCommentRecord, 0, len(findings))
	for _, f := range findings {
		line, err := strconv.Atoi(f.LineNumber)
		if err != nil || line < 0 {
			slog.Warn("dropping finding with unusable line number",
				"path", path,
				"line_number", f.LineNumber,
			)
			continue
		}
		records = append(records, model.ReviewCommentRecord{
			Path: path,
			Line: line,
			Body: f.ReviewComment,
		})
	}
	return records
}
