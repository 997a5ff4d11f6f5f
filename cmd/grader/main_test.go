package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/quantmind-br/grader-go/internal/domain"
	"github.com/quantmind-br/grader-go/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_LocalFile(t *testing.T) {
	dir := t.TempDir()
	checks := writeFile(t, dir, "checks.json", `["h2", "h1"]`)
	html := writeFile(t, dir, "index.html", `<div><h1>x</h1></div>`)

	stdout, stderr, err := execute(t, "-c", checks, "-f", html)
	require.NoError(t, err)

	assert.Equal(t, "{\n    \"h1\": true,\n    \"h2\": false\n}\n", stdout)
	assert.Contains(t, stderr, "Loading checks")
}

func TestRoot_LongFlags(t *testing.T) {
	dir := t.TempDir()
	checks := writeFile(t, dir, "checks.json", `["title"]`)
	html := writeFile(t, dir, "page.html", `<title>t</title>`)

	stdout, _, err := execute(t, "--checks", checks, "--file", html)
	require.NoError(t, err)

	var report map[string]bool
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Equal(t, map[string]bool{"title": true}, report)
}

func TestRoot_MissingChecksFile(t *testing.T) {
	dir := t.TempDir()
	html := writeFile(t, dir, "index.html", `<h1>x</h1>`)
	missing := filepath.Join(dir, "missing.json")

	stdout, _, err := execute(t, "-c", missing, "-f", html)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
	assert.Equal(t, missing+" does not exist", err.Error())
	assert.Empty(t, stdout)
}

func TestRoot_MissingHTMLFile(t *testing.T) {
	dir := t.TempDir()
	checks := writeFile(t, dir, "checks.json", `["h1"]`)
	missing := filepath.Join(dir, "missing.html")

	stdout, _, err := execute(t, "-c", checks, "-f", missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
	assert.Empty(t, stdout)
}

func TestRoot_InvalidManifest(t *testing.T) {
	dir := t.TempDir()
	checks := writeFile(t, dir, "checks.json", `["h1",`)
	html := writeFile(t, dir, "index.html", `<h1>x</h1>`)

	stdout, _, err := execute(t, "-c", checks, "-f", html)
	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrInvalidFormat)
	assert.Empty(t, stdout)
}

func TestRoot_URL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<div id="header"><a href="/">x</a></div>`))
	}))
	defer server.Close()

	dir := t.TempDir()
	checks := writeFile(t, dir, "checks.json", `["#header a", "h1"]`)

	// --file is ignored on the remote path, even when it does not exist
	stdout, stderr, err := execute(t, "-c", checks, "-f", filepath.Join(dir, "nope.html"), "-u", server.URL)
	require.NoError(t, err)

	assert.Equal(t, "{\n    \"#header a\": true,\n    \"h1\": false\n}\n", stdout)
	assert.Contains(t, stderr, server.URL)
}

func TestRoot_UnreachableURL(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	dir := t.TempDir()
	checks := writeFile(t, dir, "checks.json", `["h1"]`)

	stdout, stderr, err := execute(t, "-c", checks, "-u", url)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTransport)
	assert.Contains(t, err.Error(), url)
	assert.Contains(t, stderr, url)
	assert.Empty(t, stdout)
}

func TestRoot_Strict(t *testing.T) {
	dir := t.TempDir()
	checks := writeFile(t, dir, "checks.json", `["h1", "div["]`)
	html := writeFile(t, dir, "index.html", `<h1>x</h1>`)

	stdout, _, err := execute(t, "-c", checks, "-f", html)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"div[": false`)

	stdout, _, err = execute(t, "-c", checks, "-f", html, "--strict")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSelector)
	assert.Empty(t, stdout)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, _, err := execute(t, "extra")
	assert.Error(t, err)
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "grader")
}
