package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePackageJSONDerivesCommandsAndLanguage(t *testing.T) {
	content := []byte(`{
		"name": "demo",
		"description": "demo app",
		"version": "1.2.3",
		"author": "Jo Doe",
		"license": "MIT",
		"scripts": {"start": "node index.js", "test": "jest", "build": "webpack"},
		"dependencies": {"express": "^4.18.0"},
		"devDependencies": {"jest": "^29.0.0"}
	}`)

	f, err := ParsePackageJSON(content)
	require.NoError(t, err)

	assert.Equal(t, "demo", f.Name)
	assert.Equal(t, "demo app", f.Description)
	assert.Equal(t, "1.2.3", f.Version)
	assert.Equal(t, "Jo Doe", f.Author)
	assert.Equal(t, "MIT", f.License)
	assert.Equal(t, "JavaScript", f.MainLanguage)
	assert.Equal(t, "index.js", f.EntryPoint)
	assert.Equal(t, "npm install", f.InstallCmd)
	assert.Equal(t, "npm start", f.RunCmd)
	assert.Equal(t, "npm run test", f.TestCmd)
	assert.Equal(t, "npm run build", f.BuildCmd)
	assert.Equal(t, []string{"express"}, f.Dependencies)
	assert.Equal(t, []string{"jest"}, f.DevDependencies)
	assert.Equal(t, []string{"Express.js"}, f.Frameworks)
}

func TestParsePackageJSONObjectAuthorAndDevAlias(t *testing.T) {
	content := []byte(`{
		"name": "demo",
		"author": {"name": "Jo Doe", "email": "jo@example.com"},
		"scripts": {"serve": "vite", "dev": "vite --watch"}
	}`)

	f, err := ParsePackageJSON(content)
	require.NoError(t, err)
	assert.Equal(t, "Jo Doe", f.Author)
	// "dev" precedes "serve" in the fixed script order.
	assert.Equal(t, "npm run dev", f.DevCmd)
}

func TestParsePackageJSONMalformed(t *testing.T) {
	_, err := ParsePackageJSON([]byte("{not json"))
	assert.Error(t, err)
}

func TestParseRequirements(t *testing.T) {
	content := []byte(`# pinned deps
Flask==2.3.0
requests>=2.31
uvicorn[standard]

django<5`)

	f := ParseRequirements(content)
	assert.Equal(t, "Python", f.MainLanguage)
	assert.Equal(t, "pip install -r requirements.txt", f.InstallCmd)
	assert.Equal(t, []string{"flask", "requests", "uvicorn[standard]", "django"}, f.Dependencies)
	assert.Equal(t, []string{"Flask", "Django"}, f.Frameworks)
	// The first framework found sets the run command.
	assert.Equal(t, "python app.py", f.RunCmd)
}

func TestParsePyProject(t *testing.T) {
	content := []byte(`
[project]
name = "demo"
description = "demo tool"
version = "0.4.0"
authors = [{name = "Jo Doe"}, {name = "Sam Roe"}]
license = {text = "Apache-2.0"}
dependencies = ["fastapi >=0.100", "httpx"]
`)

	f, err := ParsePyProject(content)
	require.NoError(t, err)
	assert.Equal(t, "demo", f.Name)
	assert.Equal(t, "demo tool", f.Description)
	assert.Equal(t, "0.4.0", f.Version)
	assert.Equal(t, "Jo Doe, Sam Roe", f.Author)
	assert.Equal(t, "Apache-2.0", f.License)
	assert.Equal(t, []string{"fastapi", "httpx"}, f.Dependencies)
}

func TestParsePyProjectStringLicense(t *testing.T) {
	content := []byte(`
[project]
name = "demo"
license = "MIT"
`)
	f, err := ParsePyProject(content)
	require.NoError(t, err)
	assert.Equal(t, "MIT", f.License)
}

func TestParseSetupPy(t *testing.T) {
	content := []byte(`from setuptools import setup

setup(
    name="legacy-demo",
    version='0.1.0',
    description="an old package",
    packages=["legacy"],
)`)

	f := ParseSetupPy(content)
	assert.Equal(t, "legacy-demo", f.Name)
	assert.Equal(t, "0.1.0", f.Version)
	assert.Equal(t, "an old package", f.Description)
}

func TestProbeEntryPoint(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "app.py"), []byte("print('hi')\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "server.py"), []byte("print('hi')\n"), 0644))

	var f Fact
	ProbeEntryPoint(tmp, &f)
	// app.py precedes server.py in probe order.
	assert.Equal(t, "app.py", f.EntryPoint)
	assert.Equal(t, "python app.py", f.RunCmd)

	// An existing run command is kept.
	g := Fact{RunCmd: "flask run"}
	ProbeEntryPoint(tmp, &g)
	assert.Equal(t, "app.py", g.EntryPoint)
	assert.Equal(t, "flask run", g.RunCmd)
}

func TestProbeEntryPointAbsent(t *testing.T) {
	var f Fact
	ProbeEntryPoint(t.TempDir(), &f)
	assert.Empty(t, f.EntryPoint)
	assert.Empty(t, f.RunCmd)
}
