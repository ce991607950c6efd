package rules

// PriorityKeyFiles lists files sampled for prompting, in priority order.
// Entries may be nested paths (CI workflows under dot-directories).
var PriorityKeyFiles = []string{
	// manifests
	"package.json", "requirements.txt", "pyproject.toml", "setup.py",
	"Cargo.toml", "go.mod", "pom.xml", "build.gradle", "composer.json",

	// container files
	"Dockerfile", "docker-compose.yml", "docker-compose.yaml", "compose.yml",

	// documentation
	"README.md", "README.rst", "README.txt", "CHANGELOG.md",

	// environment and config
	".env.example", ".env.template", "config.json", "config.yaml",

	// entry points
	"main.py", "app.py", "index.js", "server.js", "app.js",
	"main.go", "main.rs", "Main.java", "Program.cs",

	// framework specific
	"manage.py", "artisan", "mix.exs", "Gemfile",

	// build and CI
	"Makefile", "CMakeLists.txt", "webpack.config.js",
	".github/workflows/main.yml", ".gitlab-ci.yml", "Jenkinsfile",

	// database
	"schema.sql", "migration.sql", "models.py", "database.js",
}

// KeyFileExtensions are the source types eligible for supplemental sampling.
var KeyFileExtensions = []string{
	".py", ".js", ".ts", ".java", ".go", ".rs", ".php", ".rb", ".cs",
}

const (
	// MaxPriorityFileSize is the per-file ceiling for priority key files.
	MaxPriorityFileSize = 8000
	// MaxSupplementFileSize is the per-file ceiling for supplemental source files.
	MaxSupplementFileSize = 3000
	// MaxSupplementFiles bounds how many extra source files are sampled.
	MaxSupplementFiles = 5
	// DefaultKeyFileBudget caps the cumulative sample size in bytes.
	DefaultKeyFileBudget = 48_000
)
