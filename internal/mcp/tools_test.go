package mcp

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/nextdoc/internal/report"
)

// --- Test helpers ---

func makeApp(t *testing.T, files map[string]string) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "web")
	for rel, content := range files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func fixedClock() time.Time {
	return time.Date(2026, time.October, 17, 8, 0, 0, 0, time.UTC)
}

// --- list_files ---

func TestHandleListFiles(t *testing.T) {
	root := makeApp(t, map[string]string{
		"package.json":       "{}",
		"pages/index.tsx":    "x",
		"node_modules/a.js":  "x",
		"public/favicon.ico": "x",
	})
	handler := handleListFiles(nil)

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, AppInput{App: root})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Count)
	require.Len(t, out.Files, 2)
	assert.Equal(t, "package.json", out.Files[0].Path)
	assert.Equal(t, "json", out.Files[0].Language)
	assert.Equal(t, "pages/index.tsx", out.Files[1].Path)
}

func TestHandleListFiles_MissingApp(t *testing.T) {
	handler := handleListFiles(nil)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, AppInput{App: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not exist")
}

func TestHandleListFiles_RequiresApp(t *testing.T) {
	handler := handleListFiles(nil)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, AppInput{})
	require.Error(t, err)
}

// --- generate_report ---

func TestHandleGenerateReport(t *testing.T) {
	root := makeApp(t, map[string]string{
		"a.ts":        "const a = 1",
		"lib/util.js": "module.exports = {}",
	})
	handler := handleGenerateReport([]report.Option{report.WithClock(fixedClock)})

	_, out, err := handler(context.Background(), &mcp.CallToolRequest{}, AppInput{App: root})
	require.NoError(t, err)

	assert.Equal(t, 2, out.Files)
	assert.Equal(t, 1, out.Directories)
	assert.Equal(t, 0, out.ReadErrors)
	assert.Equal(t, "2026-10-17T08:00:00Z", out.GeneratedAt)
	assert.Equal(t, root, filepath.Dir(out.OutputPath))
	assert.True(t, report.IsReportFile(filepath.Base(out.OutputPath)))

	data, err := os.ReadFile(out.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "const a = 1")
}

func TestHandleGenerateReport_SkipReportsOverride(t *testing.T) {
	root := makeApp(t, map[string]string{"a.ts": "x"})
	ctx := context.Background()

	handler := handleGenerateReport(nil)
	_, first, err := handler(ctx, &mcp.CallToolRequest{}, AppInput{App: root})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Files)

	skip := true
	_, second, err := handler(ctx, &mcp.CallToolRequest{}, AppInput{App: root, SkipReports: &skip})
	require.NoError(t, err)
	assert.Equal(t, 1, second.Files, "earlier report must be skipped")

	keep := false
	_, third, err := handler(ctx, &mcp.CallToolRequest{}, AppInput{App: root, SkipReports: &keep})
	require.NoError(t, err)
	assert.Equal(t, 3, third.Files, "a.ts plus both earlier reports")
}

func TestHandleGenerateReport_MissingApp(t *testing.T) {
	handler := handleGenerateReport(nil)

	_, _, err := handler(context.Background(), &mcp.CallToolRequest{}, AppInput{App: filepath.Join(t.TempDir(), "nope")})
	require.Error(t, err)
}

func TestNewServer(t *testing.T) {
	assert.NotNil(t, NewServer("1.0.0", report.WithSkipReports(true)))
}
