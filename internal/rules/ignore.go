// Package rules holds the static data tables that drive repository
// classification: ignore rules, technology signatures, category labels,
// manifest role maps, and key-file priorities. Everything here is loaded
// once and never mutated; the engine packages treat these values as
// read-only.
package rules

// IgnoreRules describes which repository entries are excluded from analysis.
type IgnoreRules struct {
	Directories map[string]struct{}
	Files       []string // basenames or glob patterns (e.g. "*.log")
	Extensions  []string // matched as filename suffixes
	MaxFileSize int64    // bytes; larger files skip content scanning

	// HiddenAllowList names dot-entries that carry analysis signal and are
	// kept despite being hidden.
	HiddenAllowList map[string]struct{}
}

// Ignore is the default rule set used for every analysis run.
var Ignore = IgnoreRules{
	Directories: setOf(
		".git", "__pycache__", "node_modules", ".vscode", ".idea",
		"dist", "build", "venv", "env", ".pytest_cache", "coverage",
		"logs", "tmp", "temp", ".next", ".nuxt", "vendor",
	),
	Files: []string{
		".gitignore", ".env", ".DS_Store", "Thumbs.db", "*.log",
		"*.lock", ".coverage", "*.pid", "*.seed", "*.tmp",
	},
	Extensions: []string{
		".pyc", ".pyo", ".so", ".dll", ".exe", ".class", ".jar",
		".min.js", ".map", ".cache",
	},
	MaxFileSize: 100_000,
	HiddenAllowList: setOf(
		".env.example", ".github", ".gitignore", ".dockerignore",
	),
}

func setOf(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}
