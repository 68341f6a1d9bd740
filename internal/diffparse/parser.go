// Package diffparse converts raw unified-diff text into the domain's
// file/chunk/line structure. Parsing is pure and total: malformed or
// unexpected sections are skipped, never surfaced as errors.
package diffparse

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// hunkHeaderPattern matches a hunk descriptor line.
// Example: @@ -12,5 +12,8 @@ func main() {
var hunkHeaderPattern = regexp.MustCompile(`^@@ -(\d+)(?:,(\d+))? \+(\d+)(?:,(\d+))? @@`)

// filePrefix starts a per-file section in git-produced unified diffs.
const filePrefix = "diff --git "

// Parse converts raw unified-diff text into an ordered sequence of
// FileDiff. File and chunk order match their order of appearance in the
// input. Empty input yields an empty (nil) slice. Files with zero hunks
// (mode changes, binary files) are kept with empty chunk lists.
func Parse(diff string) []model.FileDiff {
	if strings.TrimSpace(diff) == "" {
		return nil
	}

	var files []model.FileDiff
	var current *model.FileDiff
	var chunk *model.ChunkDiff
	var oldLine, newLine int
	var raw strings.Builder

	flushChunk := func() {
		if chunk == nil {
			return
		}
		chunk.Content = strings.TrimSuffix(raw.String(), "\n")
		current.Chunks = append(current.Chunks, *chunk)
		chunk = nil
		raw.Reset()
	}
	flushFile := func() {
		if current == nil {
			return
		}
		flushChunk()
		files = append(files, *current)
		current = nil
	}

	for _, line := range strings.Split(strings.TrimSuffix(diff, "\n"), "\n") {
		switch {
		case strings.HasPrefix(line, filePrefix):
			flushFile()
			current = &model.FileDiff{Path: pathFromGitHeader(line)}

		case current == nil:
			// Preamble before the first file header; skip.

		case chunk == nil && strings.HasPrefix(line, "+++ "):
			current.Path = strings.TrimPrefix(strings.TrimPrefix(line, "+++ "), "b/")

		case hunkHeaderPattern.MatchString(line):
			flushChunk()
			m := hunkHeaderPattern.FindStringSubmatch(line)
			oldLine = atoi(m[1])
			newLine = atoi(m[3])
			chunk = &model.ChunkDiff{Header: line}
			raw.WriteString(line)
			raw.WriteString("\n")

		case chunk == nil:
			// Between the file header and the first hunk (---, index,
			// mode lines, binary notices); skip.

		case strings.HasPrefix(line, "+"):
			chunk.Changes = append(chunk.Changes, model.LineChange{
				Content: line,
				NewLine: newLine,
			})
			newLine++
			raw.WriteString(line)
			raw.WriteString("\n")

		case strings.HasPrefix(line, "-"):
			chunk.Changes = append(chunk.Changes, model.LineChange{
				Content: line,
				OldLine: oldLine,
			})
			oldLine++
			raw.WriteString(line)
			raw.WriteString("\n")

		case strings.HasPrefix(line, " ") || line == "":
			chunk.Changes = append(chunk.Changes, model.LineChange{
				Content: line,
				OldLine: oldLine,
				NewLine: newLine,
			})
			oldLine++
			newLine++
			raw.WriteString(line)
			raw.WriteString("\n")

		default:
			// "\ No newline at end of file" and anything else
			// unexpected inside a hunk; skip.
		}
	}
	flushFile()

	return files
}

// pathFromGitHeader extracts the post-change path from a
// "diff --git a/old b/new" line. Used as a fallback for sections with no
// "+++" line (pure mode changes, binary files).
func pathFromGitHeader(line string) string {
	rest := strings.TrimPrefix(line, filePrefix)
	if idx := strings.Index(rest, " b/"); idx >= 0 {
		return rest[idx+len(" b/"):]
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
