package diff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/miever/pkg/style"
	"github.com/alexisbeaulieu97/miever/pkg/tokens"
)

func TestGenerateUnifiedDiffIdenticalContent(t *testing.T) {
	t.Parallel()

	content := []byte("line1\nline2\nline3\n")
	assert.Empty(t, GenerateUnifiedDiff(content, content, "expected", "actual"))
}

func TestGenerateUnifiedDiffSingleLineChange(t *testing.T) {
	t.Parallel()

	result := GenerateUnifiedDiff([]byte("line1\nline2\nline3\n"), []byte("line1\nmodified\nline3\n"), "expected", "actual")

	require.NotEmpty(t, result)
	assert.Contains(t, result, "--- expected\n")
	assert.Contains(t, result, "+++ actual\n")
	assert.Contains(t, result, "@@ -1,3 +1,3 @@\n")
	assert.Contains(t, result, "\n line1\n")
	assert.Contains(t, result, "\n-line2\n")
	assert.Contains(t, result, "\n+modified\n")
	assert.Contains(t, result, "\n line3\n")
}

func TestGenerateUnifiedDiffTruncatesLargeOutput(t *testing.T) {
	t.Parallel()

	var a, b strings.Builder
	for i := 0; i < maxDiffLines; i++ {
		fmt.Fprintf(&a, "a%d\n", i)
		fmt.Fprintf(&b, "b%d\n", i)
	}

	result := GenerateUnifiedDiff([]byte(a.String()), []byte(b.String()), "a", "b")
	assert.True(t, strings.HasSuffix(result, truncateMessage+"\n"))
}

func TestStylesShowsTokenChange(t *testing.T) {
	t.Parallel()

	table := tokens.Default()
	before := style.Resolve(style.Request{FlexBox: true, Padding: style.Raw("sm")}, table)
	after := style.Resolve(style.Request{FlexBox: true, Padding: style.Raw("lg")}, table)

	result := Styles(before, after, "before.yaml", "after.yaml")
	assert.Contains(t, result, "\n display: flex;\n")
	assert.Contains(t, result, "\n-padding: sm;\n")
	assert.Contains(t, result, "\n-padding: 8px;\n")
	assert.Contains(t, result, "\n+padding: lg;\n")
	assert.Contains(t, result, "\n+padding: 24px;\n")

	assert.Empty(t, Styles(before, before, "a", "b"))
}
