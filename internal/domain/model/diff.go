package model

// DeletedFilePath is the unified-diff target path of a deleted file.
const DeletedFilePath = "/dev/null"

// FileDiff holds the parsed diff of a single file. Path is the post-change
// path; deleted files carry the /dev/null sentinel and are excluded from
// review upstream.
type FileDiff struct {
	Path   string
	Chunks []ChunkDiff
}

// IsDeleted reports whether this entry represents a file deletion.
// An empty path is treated the same as the /dev/null sentinel: neither
// can anchor a review comment.
func (f FileDiff) IsDeleted() bool {
	return f.Path == "" || f.Path == DeletedFilePath
}

// ChunkDiff is one hunk of a file's diff: the @@ header describing the
// old/new line ranges, the raw hunk text, and the individual line changes.
type ChunkDiff struct {
	Header  string
	Content string
	Changes []LineChange
}

// LineChange is a single line of a hunk. OldLine and NewLine are the
// 1-based positions in the old and new revision of the file; zero means
// the line has no position on that side (an added line has no OldLine,
// a removed line has no NewLine).
type LineChange struct {
	Content string
	OldLine int
	NewLine int
}

// LineNumber resolves the line number used to address this change in a
// review comment. The new-file number wins when present; removed lines
// fall back to their old-file number. This mirrors the ambiguity of the
// unified diff format itself.
func (c LineChange) LineNumber() int {
	if c.NewLine > 0 {
		return c.NewLine
	}
	return c.OldLine
}
