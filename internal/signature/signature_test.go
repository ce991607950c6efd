package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"readmegen/internal/rules"
)

func TestDetectFindsReactFromDependencyNames(t *testing.T) {
	labels := Detect("react\n^18.0", rules.TechSignatures, true)
	assert.Contains(t, labels, "React")
}

func TestDetectReturnsNothingForUnrelatedCorpus(t *testing.T) {
	labels := Detect("totally-unrelated-pkg 1.0", rules.TechSignatures, true)
	assert.Empty(t, labels)
}

func TestDetectCasePolicy(t *testing.T) {
	// Folded corpora match regardless of case.
	assert.Contains(t, Detect("DJANGO>=4.0", rules.TechSignatures, true), "Django")

	// Source corpora are matched case-sensitively; "unity" alone must not
	// trigger the Unity label, while the exact token does.
	assert.NotContains(t, Detect("community edition", rules.TechSignatures, false), "Unity")
	assert.Contains(t, Detect("using UnityEngine;", rules.TechSignatures, false), "Unity")
}

func TestDetectOutputIsSortedAndCanonical(t *testing.T) {
	labels := Detect("react vue flask", rules.TechSignatures, true)
	assert.IsIncreasing(t, labels)

	seen := map[string]int{}
	for _, l := range labels {
		seen[l]++
	}
	for l, n := range seen {
		assert.Equal(t, 1, n, "label %s duplicated", l)
	}
}

func TestDetectDatabases(t *testing.T) {
	assert.Equal(t, []string{"PostgreSQL"}, DetectDatabases("postgres:16-alpine"))
	assert.Equal(t, []string{"MySQL"}, DetectDatabases("mariadb:11"))
	assert.Empty(t, DetectDatabases("nginx:latest"))
}

func TestLooksLikeRouteFile(t *testing.T) {
	assert.True(t, LooksLikeRouteFile("userController.js"))
	assert.True(t, LooksLikeRouteFile("api_v2.py"))
	assert.True(t, LooksLikeRouteFile("routes.rb"))
	assert.False(t, LooksLikeRouteFile("helpers.py"))
}

func TestUnionMergesAndSorts(t *testing.T) {
	got := Union([]string{"React", "Docker"}, []string{"Docker", "Flask"})
	assert.Equal(t, []string{"Docker", "Flask", "React"}, got)
}
