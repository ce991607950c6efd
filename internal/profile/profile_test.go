package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplexityScoreFormula(t *testing.T) {
	p := &Profile{
		Languages:      []LanguageCount{{"Python", 10}, {"JavaScript", 4}},
		Technologies:   []string{"Flask", "Docker", "Redis"},
		HasDocker:      true,
		DockerServices: []string{"web", "cache"},
		Databases:      []string{"Redis"},
		EnvVars:        []string{"A", "B", "C"},
		APIEndpoints:   []string{"/users", "/items"},
		Dependencies:   []string{"flask", "redis", "gunicorn"},
	}

	// 2*2 + 1.5*3 + (5 + 2*2) + 3*1 + 0.5*3 + 0.3*2 + 0.1*3 = 22.9 -> 22
	assert.Equal(t, 22, ComplexityScore(p))

	// Pure function: recomputing on the captured profile reproduces the
	// stored score exactly.
	p.ComplexityScore = ComplexityScore(p)
	assert.Equal(t, p.ComplexityScore, ComplexityScore(p))
}

func TestComplexityScoreWithoutDocker(t *testing.T) {
	p := &Profile{
		Languages:      []LanguageCount{{"Go", 20}},
		DockerServices: []string{"ghost"}, // ignored without HasDocker
	}
	assert.Equal(t, 2, ComplexityScore(p))
}

func TestSetupDifficultyBoundaries(t *testing.T) {
	cases := []struct {
		score int
		want  string
	}{
		{0, "Easy"},
		{9, "Easy"},
		{10, "Medium"},
		{29, "Medium"},
		{30, "Hard"},
		{59, "Hard"},
		{60, "Expert"},
		{200, "Expert"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SetupDifficulty(tc.score), "score %d", tc.score)
	}
}

func TestArchitectureType(t *testing.T) {
	micro := &Profile{HasDocker: true, DockerServices: []string{"a", "b", "c", "d"}}
	assert.Equal(t, "Microservices", ArchitectureType(micro))

	contained := &Profile{HasDocker: true, DockerServices: []string{"app"}}
	assert.Equal(t, "Containerized Application", ArchitectureType(contained))

	multi := &Profile{Languages: []LanguageCount{{"Go", 3}, {"Python", 2}, {"JavaScript", 1}}}
	assert.Equal(t, "Multi-language Application", ArchitectureType(multi))

	mono := &Profile{Languages: []LanguageCount{{"Go", 3}}}
	assert.Equal(t, "Monolithic Application", ArchitectureType(mono))
}
