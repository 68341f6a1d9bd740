package diffparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diffwatch/reviewbot/internal/domain/model"
)

const twoFileDiff = `diff --git a/main.go b/main.go
index 83db48f..bf3c2a1 100644
--- a/main.go
+++ b/main.go
@@ -10,4 +10,5 @@ func main() {
 	ctx := context.Background()
-	run(ctx)
+	if err := run(ctx); err != nil {
+		os.Exit(1)
 	}
@@ -30,3 +31,3 @@ func run(ctx context.Context) error {
 	a := 1
-	b := 2
+	b := 3
 	return nil
diff --git a/README.md b/README.md
index 1111111..2222222 100644
--- a/README.md
+++ b/README.md
@@ -1,1 +1,2 @@
 # readme
+more docs
`

func TestParse_FileAndChunkCounts(t *testing.T) {
	files := Parse(twoFileDiff)

	require.Len(t, files, 2)
	assert.Equal(t, "main.go", files[0].Path)
	assert.Equal(t, "README.md", files[1].Path)
	assert.Len(t, files[0].Chunks, 2)
	assert.Len(t, files[1].Chunks, 1)
}

func TestParse_LineNumbers(t *testing.T) {
	files := Parse(twoFileDiff)
	require.Len(t, files, 2)

	chunk := files[0].Chunks[0]
	assert.Equal(t, "@@ -10,4 +10,5 @@ func main() {", chunk.Header)
	require.Len(t, chunk.Changes, 5)

	// Context line carries both numbers.
	assert.Equal(t, 10, chunk.Changes[0].OldLine)
	assert.Equal(t, 10, chunk.Changes[0].NewLine)
	// Removed line has only the old number.
	assert.Equal(t, 11, chunk.Changes[1].OldLine)
	assert.Equal(t, 0, chunk.Changes[1].NewLine)
	// Added lines count up on the new side only.
	assert.Equal(t, 0, chunk.Changes[2].OldLine)
	assert.Equal(t, 11, chunk.Changes[2].NewLine)
	assert.Equal(t, 12, chunk.Changes[3].NewLine)
	// Trailing context resumes both counters.
	assert.Equal(t, 12, chunk.Changes[4].OldLine)
	assert.Equal(t, 13, chunk.Changes[4].NewLine)
}

func TestParse_ChunkContentIncludesHeader(t *testing.T) {
	files := Parse(twoFileDiff)
	require.Len(t, files, 2)

	content := files[0].Chunks[1].Content
	assert.Contains(t, content, "@@ -30,3 +31,3 @@")
	assert.Contains(t, content, "-	b := 2")
	assert.Contains(t, content, "+	b := 3")
}

func TestParse_NewFile(t *testing.T) {
	diff := `diff --git a/a.ts b/a.ts
new file mode 100644
index 0000000..1111111
--- /dev/null
+++ b/a.ts
@@ -0,0 +1,3 @@
+const a = 1;
+const b = 2;
+const c = a + b;
`

	files := Parse(diff)

	require.Len(t, files, 1)
	assert.Equal(t, "a.ts", files[0].Path)
	require.Len(t, files[0].Chunks, 1)
	changes := files[0].Chunks[0].Changes
	require.Len(t, changes, 3)
	assert.Equal(t, 1, changes[0].NewLine)
	assert.Equal(t, 2, changes[1].NewLine)
	assert.Equal(t, 3, changes[2].NewLine)
}

func TestParse_DeletedFile(t *testing.T) {
	diff := `diff --git a/gone.txt b/gone.txt
deleted file mode 100644
index 1111111..0000000
--- a/gone.txt
+++ /dev/null
@@ -1,2 +0,0 @@
-first
-second
`

	files := Parse(diff)

	require.Len(t, files, 1)
	assert.Equal(t, model.DeletedFilePath, files[0].Path)
	assert.True(t, files[0].IsDeleted())
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, Parse(""))
	assert.Empty(t, Parse("   \n\n  "))
}

func TestParse_MalformedInputSkipped(t *testing.T) {
	// No file headers at all: nothing parseable, nothing returned.
	assert.Empty(t, Parse("this is not\na diff at all\n+not even close"))
}

func TestParse_BinaryFileHasZeroChunks(t *testing.T) {
	diff := `diff --git a/logo.png b/logo.png
index 1111111..2222222 100644
Binary files a/logo.png and b/logo.png differ
diff --git a/main.go b/main.go
--- a/main.go
+++ b/main.go
@@ -1,1 +1,1 @@
-old
+new
`

	files := Parse(diff)

	require.Len(t, files, 2)
	assert.Equal(t, "logo.png", files[0].Path)
	assert.Empty(t, files[0].Chunks)
	assert.Equal(t, "main.go", files[1].Path)
	assert.Len(t, files[1].Chunks, 1)
}

func TestParse_NoNewlineMarkerSkipped(t *testing.T) {
	diff := `diff --git a/x.txt b/x.txt
--- a/x.txt
+++ b/x.txt
@@ -1,1 +1,1 @@
-old
+new
\ No newline at end of file
`

	files := Parse(diff)

	require.Len(t, files, 1)
	require.Len(t, files[0].Chunks, 1)
	assert.Len(t, files[0].Chunks[0].Changes, 2)
}
