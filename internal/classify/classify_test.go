package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldIgnoreVCSDirectoryAnywhereInPath(t *testing.T) {
	c := New(0)

	assert.True(t, c.ShouldIgnore(".git/config", 10))
	assert.True(t, c.ShouldIgnore("src/.git/hooks/pre-commit", 10))
	assert.True(t, c.ShouldIgnore("a/b/node_modules/pkg/index.js", 10))
	assert.True(t, c.ShouldIgnore("vendor/lib.go", 10))
}

func TestShouldIgnoreHiddenEntriesExceptAllowList(t *testing.T) {
	c := New(0)

	assert.True(t, c.ShouldIgnore(".secret/creds.txt", 10))
	assert.True(t, c.ShouldIgnore(".env", 10))

	// Meaningful hidden entries stay.
	assert.False(t, c.ShouldIgnore(".env.example", 10))
	assert.False(t, c.ShouldIgnore(".github/workflows/main.yml", 10))
	assert.False(t, c.ShouldIgnore(".dockerignore", 10))
}

func TestShouldIgnoreExtensionsAndGlobs(t *testing.T) {
	c := New(0)

	assert.True(t, c.ShouldIgnore("bin/app.exe", 10))
	assert.True(t, c.ShouldIgnore("static/bundle.min.js", 10))
	assert.True(t, c.ShouldIgnore("static/bundle.js.map", 10))
	assert.True(t, c.ShouldIgnore("debug.log", 10))
	assert.True(t, c.ShouldIgnore("yarn.lock", 10))

	assert.False(t, c.ShouldIgnore("static/bundle.js", 10))
	assert.False(t, c.ShouldIgnore("src/main.py", 10))
}

func TestShouldIgnoreSizeCeiling(t *testing.T) {
	c := New(0)
	assert.False(t, c.ShouldIgnore("data.csv", 100_000))
	assert.True(t, c.ShouldIgnore("data.csv", 100_001))

	small := New(100)
	assert.True(t, small.ShouldIgnore("data.csv", 101))
	assert.False(t, small.ShouldIgnore("data.csv", 99))
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, "Source code directory", CategorizeDir("src"))
	assert.Equal(t, "Test files", CategorizeDir("Tests"))
	assert.Equal(t, "Project directory", CategorizeDir("mystuff"))

	assert.Equal(t, "Node.js package configuration", CategorizeFile("package.json"))
	assert.Equal(t, "Docker container configuration", CategorizeFile("Dockerfile"))
	assert.Equal(t, "Project file", CategorizeFile("notes.rst"))
}
