package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readmegen/internal/profile"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Errorf("restore working directory: %v", err)
		}
	})
}

func TestRepoName(t *testing.T) {
	assert.Equal(t, "demo", repoName("/srv/repos/demo"))
	assert.Equal(t, "demo", repoName("/srv/repos/demo.git"))
	assert.Equal(t, "demo", repoName("repos/demo/"))
}

func TestWriteProfile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.json")
	p := &profile.Profile{
		Name:             "demo",
		MainLanguage:     "Go",
		ArchitectureType: "Monolithic Application",
		SetupDifficulty:  "Easy",
	}
	require.NoError(t, writeProfile(path, p))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, "demo", got["name"])
	assert.Equal(t, "Go", got["main_language"])
	assert.Equal(t, "Monolithic Application", got["architecture_type"])
}

func TestRunWritesPromptArtifact(t *testing.T) {
	chdir(t, t.TempDir())

	repo := t.TempDir()
	pkg := []byte(`{"name":"demo","version":"1.0.0","scripts":{"start":"node index.js"}}`)
	require.NoError(t, os.WriteFile(filepath.Join(repo, "package.json"), pkg, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(repo, "index.js"), []byte("console.log('hi');\n"), 0o644))

	profilePath := filepath.Join(t.TempDir(), "profile.json")
	promptPath := filepath.Join(t.TempDir(), "prompt.txt")
	err := run([]string{
		"--repo-dir", repo,
		"--profile-out", profilePath,
		"--prompt-out", promptPath,
	})
	require.NoError(t, err)

	rendered, err := os.ReadFile(promptPath)
	require.NoError(t, err)
	assert.Contains(t, string(rendered), "- Name: demo")
	assert.Contains(t, string(rendered), "- Run: npm start")

	b, err := os.ReadFile(profilePath)
	require.NoError(t, err)
	var p profile.Profile
	require.NoError(t, json.Unmarshal(b, &p))
	assert.Equal(t, "JavaScript", p.MainLanguage)
	assert.Equal(t, "demo", p.Name)
}

func TestRunMissingRepoFails(t *testing.T) {
	chdir(t, t.TempDir())

	err := run([]string{"--repo-dir", filepath.Join(t.TempDir(), "absent")})
	assert.Error(t, err)
}
