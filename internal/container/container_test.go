package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDockerfile(t *testing.T) {
	content := []byte(`FROM node:20-alpine
WORKDIR /app
COPY . .
ENV DEBUG true
ENV PORT=3000
EXPOSE 8080
EXPOSE 9090
CMD ["node", "index.js"]
`)

	info := AnalyzeDockerfile(content)
	assert.Equal(t, []string{"8080", "9090"}, info.Ports)
	assert.Contains(t, info.EnvVars, "DEBUG")
	assert.Contains(t, info.EnvVars, "PORT")
	assert.Equal(t, "node:20-alpine", info.BaseImage)
	assert.Equal(t, "/app", info.WorkDir)
	assert.Equal(t, []string{"Node.js"}, info.Technologies)
}

func TestAnalyzeDockerfileLowercaseDirectives(t *testing.T) {
	info := AnalyzeDockerfile([]byte("from python:3.12\nexpose 8000\nenv SECRET_KEY abc\n"))
	assert.Equal(t, []string{"8000"}, info.Ports)
	assert.Equal(t, []string{"SECRET_KEY"}, info.EnvVars)
	assert.Equal(t, []string{"Python"}, info.Technologies)
}

func TestAnalyzeComposeMappingEnvironment(t *testing.T) {
	content := []byte(`
services:
  web:
    build: .
    ports:
      - "8080:80"
    environment:
      NODE_ENV: production
      API_KEY: secret
  db:
    image: postgres:16
    ports:
      - "5432:5432"
    environment:
      POSTGRES_PASSWORD: example
`)

	info, err := AnalyzeCompose(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"db", "web"}, info.Services)
	assert.ElementsMatch(t, []string{"8080", "5432"}, info.Ports)
	assert.ElementsMatch(t, []string{"NODE_ENV", "API_KEY", "POSTGRES_PASSWORD"}, info.EnvVars)
	assert.Equal(t, []string{"PostgreSQL"}, info.Databases)
}

func TestAnalyzeComposeListEnvironmentAndBarePorts(t *testing.T) {
	content := []byte(`
services:
  cache:
    image: redis:7
    ports:
      - 6379
    environment:
      - REDIS_PASSWORD=changeme
      - MAXMEMORY=256mb
`)

	info, err := AnalyzeCompose(content)
	require.NoError(t, err)

	assert.Equal(t, []string{"cache"}, info.Services)
	assert.Equal(t, []string{"6379"}, info.Ports)
	assert.Equal(t, []string{"REDIS_PASSWORD", "MAXMEMORY"}, info.EnvVars)
	assert.Equal(t, []string{"Redis"}, info.Databases)
}

func TestAnalyzeComposeMalformed(t *testing.T) {
	_, err := AnalyzeCompose([]byte("services:\n\t- broken"))
	assert.Error(t, err)
}

func TestAnalyzeComposeDeterministicServiceOrder(t *testing.T) {
	content := []byte(`
services:
  zeta: {image: nginx}
  alpha: {image: nginx}
  mid: {image: nginx}
`)
	for i := 0; i < 5; i++ {
		info, err := AnalyzeCompose(content)
		require.NoError(t, err)
		assert.Equal(t, []string{"alpha", "mid", "zeta"}, info.Services)
	}
}
