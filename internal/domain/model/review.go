package model

// ReviewFinding is one review comment proposed by the model for a chunk.
// The JSON tags match the response shape requested from the model; the
// value is untrusted until the adapter has validated the overall shape.
type ReviewFinding struct {
	LineNumber    string `json:"lineNumber"`
	ReviewComment string `json:"reviewComment"`
}

// ReviewCommentRecord is the platform-ready unit of a review submission:
// a markdown body anchored to a line of a file in the change set.
type ReviewCommentRecord struct {
	Path string
	Line int
	Body string
}
