package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withUpstream(t *testing.T, status int, body string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	t.Setenv("CONTENTGUARD_ANALYZER_URL", srv.URL+"/analyze")
	t.Setenv("CONTENTGUARD_LOG_LEVEL", "error")
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yml")))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestAnalyzeCmd_Stdin(t *testing.T) {
	withUpstream(t, http.StatusOK, `{"risk_score": 85, "tone": "aggressive", "plagiarism_risk": "high", "issues": ["a"], "recommendations": ["b"]}`)

	out, _, err := execute(t, "some content", "analyze", "-")
	require.NoError(t, err)

	assert.Contains(t, out, "HIGH RISK")
	assert.Contains(t, out, "85")
	assert.Contains(t, out, "aggressive")
	assert.Contains(t, out, "→ a")
	assert.Contains(t, out, "✓ b")
}

func TestAnalyzeCmd_File(t *testing.T) {
	withUpstream(t, http.StatusOK, `{"risk_score": 55, "tone": "neutral", "plagiarism_risk": "low", "issues": [], "recommendations": []}`)

	path := filepath.Join(t.TempDir(), "post.txt")
	require.NoError(t, os.WriteFile(path, []byte("a blog post"), 0o644))

	out, _, err := execute(t, "", "analyze", path)
	require.NoError(t, err)
	assert.Contains(t, out, "MEDIUM RISK")
}

func TestAnalyzeCmd_ServerError(t *testing.T) {
	withUpstream(t, http.StatusBadRequest, `{"error": "bad input"}`)

	out, errOut, err := execute(t, "some content", "analyze")
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, errOut, "bad input")
	assert.NotContains(t, out, "RISK")
}

func TestAnalyzeCmd_EmptyInput(t *testing.T) {
	withUpstream(t, http.StatusOK, `{}`)

	_, _, err := execute(t, "  \n ", "analyze")
	assert.ErrorContains(t, err, "input is empty")
}

func TestAnalyzeCmd_MissingFile(t *testing.T) {
	withUpstream(t, http.StatusOK, `{}`)

	_, _, err := execute(t, "", "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	assert.ErrorContains(t, err, "failed to read")
}
