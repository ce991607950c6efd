// Package profile builds the aggregate analysis record for one repository.
// A Builder is scoped to a single run; the returned Profile is never
// mutated afterwards, so concurrent analyses of different repositories do
// not interfere.
package profile

// LanguageCount is one histogram entry: a language label and the number of
// files using it. Entries are ordered by count descending, ties broken by
// first-seen walk order, so serialization is deterministic.
type LanguageCount struct {
	Language string `json:"language"`
	Files    int    `json:"files"`
}

// StructureEntry describes one immediate child of the repository root.
type StructureEntry struct {
	Name        string `json:"name"`
	Type        string `json:"type"` // "directory" or "file"
	Description string `json:"description"`
	FileCount   int    `json:"file_count,omitempty"`
}

// Profile is the aggregate result of analyzing a repository. Every field
// serializes to plain structured data (objects, arrays, strings, numbers,
// booleans).
type Profile struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Version      string `json:"version"`
	Author       string `json:"author"`
	License      string `json:"license"`
	MainLanguage string `json:"main_language"`

	Languages    []LanguageCount `json:"languages"`
	Frameworks   []string        `json:"frameworks"`
	Technologies []string        `json:"technologies"`
	Features     []string        `json:"features"`

	ArchitectureType string   `json:"architecture_type"`
	HasDocker        bool     `json:"has_docker"`
	DockerServices   []string `json:"docker_services"`
	Databases        []string `json:"databases"`

	EntryPoint string `json:"entry_point"`
	InstallCmd string `json:"install_cmd"`
	RunCmd     string `json:"run_cmd"`
	DevCmd     string `json:"dev_cmd"`
	TestCmd    string `json:"test_cmd"`
	BuildCmd   string `json:"build_cmd"`

	Dependencies    []string `json:"dependencies"`
	DevDependencies []string `json:"dev_dependencies"`

	Ports          []string `json:"ports"`
	EnvVars        []string `json:"env_vars"`
	EnvExampleVars []string `json:"env_example_vars"`
	APIEndpoints   []string `json:"api_endpoints"`

	Structure []StructureEntry `json:"project_structure"`

	ComplexityScore int    `json:"complexity_score"`
	SetupDifficulty string `json:"setup_difficulty"`
}

// ComplexityScore is a pure function of the profile's other fields: a
// weighted sum over stack breadth and operational surface, truncated to an
// integer. Re-running it on a captured profile reproduces the stored score.
func ComplexityScore(p *Profile) int {
	score := 2.0 * float64(len(p.Languages))
	score += 1.5 * float64(len(p.Technologies))
	if p.HasDocker {
		score += 5
		score += 2 * float64(len(p.DockerServices))
	}
	score += 3 * float64(len(p.Databases))
	score += 0.5 * float64(len(p.EnvVars))
	score += 0.3 * float64(len(p.APIEndpoints))
	score += 0.1 * float64(len(p.Dependencies))
	return int(score)
}

// SetupDifficulty buckets a complexity score into four ascending tiers with
// right-open boundaries: [0,10) Easy, [10,30) Medium, [30,60) Hard,
// [60,inf) Expert.
func SetupDifficulty(score int) string {
	switch {
	case score < 10:
		return "Easy"
	case score < 30:
		return "Medium"
	case score < 60:
		return "Hard"
	default:
		return "Expert"
	}
}

// ArchitectureType infers a coarse architecture label from container and
// language facts.
func ArchitectureType(p *Profile) string {
	switch {
	case len(p.DockerServices) > 3:
		return "Microservices"
	case p.HasDocker:
		return "Containerized Application"
	case len(p.Languages) > 2:
		return "Multi-language Application"
	default:
		return "Monolithic Application"
	}
}
