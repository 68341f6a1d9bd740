package application

import (
	"fmt"
	"strings"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// reviewInstructions is the fixed per-chunk reviewing contract. The
// response-shape constraint lives in the model adapter's system prompt;
// this text only governs what is worth commenting on.
const reviewInstructions = `Your task is to review pull requests. Instructions:
- Do not give positive comments or compliments.
- Provide comments and suggestions ONLY if there is something to improve; otherwise return an empty "reviews" array.
- Write each comment in GitHub Markdown format.
- Use the pull request title and description only for overall context; comment only on the code.
- IMPORTANT: NEVER suggest adding comments to the code.`

// buildPrompt renders the complete, self-contained review request for one
// chunk of one file. The model receives no other context about the
// repository, so everything it needs is embedded here: the instructions,
// the target path, the PR title and description, and every change line
// prefixed with its resolved line number.
func buildPrompt(filePath string, chunk model.ChunkDiff, pr model.PRContext) string {
	var sb strings.Builder

	sb.WriteString(reviewInstructions)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Review the following code diff in the file %q, taking the pull request title and description into account.\n\n", filePath)
	fmt.Fprintf(&sb, "Pull request title: %s\n", pr.Title)
	sb.WriteString("Pull request description:\n\n---\n")
	sb.WriteString(pr.Description)
	sb.WriteString("\n---\n\n")

	sb.WriteString("Git diff to review:\n\n```diff\n")
	sb.WriteString(chunk.Header)
	sb.WriteString("\n")
	for _, change := range chunk.Changes {
		fmt.Fprintf(&sb, "%d %s\n", change.LineNumber(), change.Content)
	}
	sb.WriteString("```\n")

	return sb.String()
}
