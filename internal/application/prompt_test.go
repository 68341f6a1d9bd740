package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

func samplePRContext() model.PRContext {
	return model.PRContext{
		Owner:       "acme",
		Repo:        "widget",
		Number:      42,
		Title:       "Add retry logic",
		Description: "Retries transient failures with backoff.",
	}
}

func sampleChunk() model.ChunkDiff {
	return model.ChunkDiff{
		Header: "@@ -10,2 +10,3 @@ func fetch() {",
		Changes: []model.LineChange{
			{Content: " 	client := http.DefaultClient", OldLine: 10, NewLine: 10},
			{Content: "-	resp, _ := client.Get(url)", OldLine: 11},
			{Content: "+	resp, err := client.Get(url)", NewLine: 11},
			{Content: "+	_ = err", NewLine: 12},
		},
	}
}

func TestBuildPrompt_EmbedsContext(t *testing.T) {
	prompt := buildPrompt("internal/fetch.go", sampleChunk(), samplePRContext())

	assert.Contains(t, prompt, `"internal/fetch.go"`)
	assert.Contains(t, prompt, "Add retry logic")
	assert.Contains(t, prompt, "Retries transient failures with backoff.")
	assert.Contains(t, prompt, "@@ -10,2 +10,3 @@ func fetch() {")
}

func TestBuildPrompt_ResolvedLineNumbers(t *testing.T) {
	prompt := buildPrompt("internal/fetch.go", sampleChunk(), samplePRContext())

	// New-file numbers when present, old-file numbers otherwise.
	assert.Contains(t, prompt, "10  	client := http.DefaultClient")
	assert.Contains(t, prompt, "11 -	resp, _ := client.Get(url)")
	assert.Contains(t, prompt, "11 +	resp, err := client.Get(url)")
	assert.Contains(t, prompt, "12 +	_ = err")
}

func TestBuildPrompt_Instructions(t *testing.T) {
	prompt := buildPrompt("a.go", sampleChunk(), samplePRContext())

	assert.Contains(t, prompt, "Do not give positive comments")
	assert.Contains(t, prompt, "NEVER suggest adding comments")
	assert.Contains(t, prompt, `empty "reviews" array`)
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	a := buildPrompt("a.go", sampleChunk(), samplePRContext())
	b := buildPrompt("a.go", sampleChunk(), samplePRContext())

	assert.Equal(t, a, b)
}
