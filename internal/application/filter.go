package application

import (
	"path"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

// excludeFiles drops file diffs that must not reach the prompt builder:
// deleted files (nothing to anchor a comment to) and files whose target
// path matches any exclusion glob. Matching is case-sensitive over the
// full relative path, with shell-glob semantics (`*` does not cross a
// path separator).
func excludeFiles(files []model.FileDiff, patterns []string) []model.FileDiff {
	kept := make([]model.FileDiff, 0, len(files))
	for _, f := range files {
		if f.IsDeleted() {
			continue
		}
		if matchesAny(f.Path, patterns) {
			continue
		}
		kept = append(kept, f)
	}
	return kept
}

// matchesAny reports whether p matches at least one glob pattern.
// Malformed patterns never match.
func matchesAny(p string, patterns []string) bool {
	for _, pattern := range patterns {
		if ok, err := path.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}
