package links

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectURL(t *testing.T) {
	d := NewDetector()
	found := d.DetectLinks("Visit https://example.com/docs for info", 3)
	require.Len(t, found, 1)
	assert.Equal(t, "https://example.com/docs", found[0].Text)
	assert.Equal(t, TargetURL, found[0].Target.Kind)
	assert.Equal(t, "https://example.com/docs", found[0].Target.URI())
	assert.Equal(t, 6, found[0].StartCol)
	assert.Equal(t, 3, found[0].Row)
}

func TestDetectMultipleURLs(t *testing.T) {
	d := NewDetector()
	found := d.DetectLinks("see http://a.example and ftp://b.example/file", 0)
	require.Len(t, found, 2)
	assert.Equal(t, "http://a.example", found[0].Target.URL)
	assert.Equal(t, "ftp://b.example/file", found[1].Target.URL)
	assert.Less(t, found[0].StartCol, found[1].StartCol)
}

func TestDetectAbsoluteFilePath(t *testing.T) {
	d := NewDetector()
	found := d.DetectLinks("error in /tmp/main.go:10:5 near token", 0)
	require.Len(t, found, 1)
	target := found[0].Target
	assert.Equal(t, TargetFile, target.Kind)
	assert.Equal(t, "/tmp/main.go", target.Path)
	assert.Equal(t, 10, target.Line)
	assert.Equal(t, 5, target.Column)
	assert.Equal(t, "file:///tmp/main.go:10:5", target.URI())
}

func TestDetectRelativePathWithWorkingDir(t *testing.T) {
	d := NewDetector()
	d.SetWorkingDir("/work")
	found := d.DetectLinks("compiling ./main.go:42", 0)
	require.Len(t, found, 1)
	assert.Equal(t, "/work/main.go", found[0].Target.Path)
	assert.Equal(t, 42, found[0].Target.Line)
	assert.Equal(t, 0, found[0].Target.Column)
}

func TestDetectParenthesizedLocation(t *testing.T) {
	d := NewDetector()
	found := d.DetectLinks("index.ts(10, 5): error TS2304", 0)
	require.NotEmpty(t, found)
	assert.Equal(t, "index.ts", found[0].Target.Path)
	assert.Equal(t, 10, found[0].Target.Line)
	assert.Equal(t, 5, found[0].Target.Column)
}

func TestURLSuppressesOverlappingFileMatch(t *testing.T) {
	d := NewDetector()
	found := d.DetectLinks("https://example.com/pkg/file.go:1", 0)
	require.Len(t, found, 1)
	assert.Equal(t, TargetURL, found[0].Target.Kind)
}

func TestValidatePathsFiltersMissing(t *testing.T) {
	cfg := DefaultDetectorConfig()
	cfg.ValidatePaths = true
	cfg.Exists = func(path string) bool { return path == "/real/file.go" }
	d := NewDetectorWithConfig(cfg)

	found := d.DetectLinks("in /real/file.go:1 and /fake/file.go:2", 0)
	require.Len(t, found, 1)
	assert.Equal(t, "/real/file.go", found[0].Target.Path)
}

func TestCustomPattern(t *testing.T) {
	cfg := DetectorConfig{
		CustomPatterns: []Pattern{
			NewPattern("jira", `JIRA-(\d+)`, "https://issues.example.com/browse/JIRA-$1"),
		},
	}
	d := NewDetectorWithConfig(cfg)
	found := d.DetectLinks("fix JIRA-123 before release", 0)
	require.Len(t, found, 1)
	assert.Equal(t, "JIRA-123", found[0].Text)
	assert.Equal(t, TargetCustom, found[0].Target.Kind)
	assert.Equal(t, "jira", found[0].Target.Protocol)
	assert.Equal(t, "https://issues.example.com/browse/JIRA-123", found[0].Target.Data)
	assert.Equal(t, "jira:https://issues.example.com/browse/JIRA-123", found[0].Target.URI())
}

func TestInvalidCustomPatternNeverMatches(t *testing.T) {
	d := NewDetectorWithConfig(DetectorConfig{
		CustomPatterns: []Pattern{NewPattern("bad", `(unclosed`, "$0")},
	})
	assert.Empty(t, d.DetectLinks("(unclosed", 0))
}

func TestLinkAt(t *testing.T) {
	d := NewDetector()
	text := "go to https://example.com now"

	link, ok := d.LinkAt(text, 0, 10)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link.Target.URL)

	_, ok = d.LinkAt(text, 0, 2)
	assert.False(t, ok)
}

func TestParsePathLocation(t *testing.T) {
	path, line, col := parsePathLocation("main.go:42")
	assert.Equal(t, "main.go", path)
	assert.Equal(t, 42, line)
	assert.Equal(t, 0, col)

	path, line, col = parsePathLocation("a/b.go:10:5")
	assert.Equal(t, "a/b.go", path)
	assert.Equal(t, 10, line)
	assert.Equal(t, 5, col)

	path, line, col = parsePathLocation("plain.txt")
	assert.Equal(t, "plain.txt", path)
	assert.Equal(t, 0, line)
	assert.Equal(t, 0, col)

	path, line, col = parsePathLocation("f.ts(3,7)")
	assert.Equal(t, "f.ts", path)
	assert.Equal(t, 3, line)
	assert.Equal(t, 7, col)
}

func TestBuiltinPatterns(t *testing.T) {
	cases := []struct {
		pattern Pattern
		input   string
		want    string
	}{
		{GoCompilerPattern(), "./cmd/main.go:10:5: undefined: foo", "./cmd/main.go:10:5"},
		{RustCompilerPattern(), "  --> src/main.rs:4:9", "src/main.rs:4:9"},
		{PythonTracebackPattern(), `  File "app.py", line 12, in <module>`, "app.py:12"},
		{NodeStackPattern(), "    at Object.<anonymous> (/app/index.js:3:15)", "/app/index.js:3:15"},
		{TypeScriptCompilerPattern(), "src/index.ts(10,5): error TS2304", "src/index.ts:10:5"},
		{GitDiffPattern(), "+++ b/internal/server.go", "internal/server.go"},
	}
	for _, tc := range cases {
		d := NewDetectorWithConfig(DetectorConfig{CustomPatterns: []Pattern{tc.pattern}})
		found := d.DetectLinks(tc.input, 0)
		require.NotEmpty(t, found, "pattern %s on %q", tc.pattern.Name, tc.input)
		assert.Equal(t, tc.want, found[0].Target.Data, "input %q", tc.input)
	}
}

func TestHyperlinkState(t *testing.T) {
	h := NewHyperlinkState()
	assert.False(t, h.IsActive())

	h.SetHyperlink("doc", "https://example.com")
	assert.True(t, h.IsActive())
	assert.Equal(t, "https://example.com", h.CurrentURL())
	assert.Equal(t, "doc", h.CurrentID())

	url, ok := h.URLByID("doc")
	require.True(t, ok)
	assert.Equal(t, "https://example.com", url)

	// Closing keeps remembered ids
	h.SetHyperlink("", "")
	assert.False(t, h.IsActive())
	_, ok = h.URLByID("doc")
	assert.True(t, ok)

	h.Clear()
	_, ok = h.URLByID("doc")
	assert.False(t, ok)
}

func TestParseParams(t *testing.T) {
	assert.Equal(t, "x1", ParseParams("id=x1"))
	assert.Equal(t, "x2", ParseParams("foo=bar:id=x2"))
	assert.Equal(t, "", ParseParams(""))
	assert.Equal(t, "", ParseParams("foo=bar"))
}
