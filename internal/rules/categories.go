package rules

// DirectoryCategories maps well-known directory basenames (lower case) to a
// one-line description used in the project structure summary.
var DirectoryCategories = map[string]string{
	"src":           "Source code directory",
	"source":        "Source code directory",
	"app":           "Application code",
	"lib":           "Library files",
	"components":    "Reusable UI components",
	"pages":         "Application pages/routes",
	"views":         "Application views/templates",
	"controllers":   "MVC controllers",
	"models":        "Data models",
	"services":      "Business logic services",
	"utils":         "Utility functions",
	"helpers":       "Helper functions",
	"config":        "Configuration files",
	"static":        "Static assets (CSS, JS, images)",
	"public":        "Public/served files",
	"assets":        "Project assets",
	"tests":         "Test files",
	"test":          "Test files",
	"spec":          "Test specifications",
	"docs":          "Documentation",
	"documentation": "Documentation",
	"scripts":       "Build/deployment scripts",
	"tools":         "Development tools",
	"migrations":    "Database migrations",
	"templates":     "Template files",
	"styles":        "Stylesheets",
	"images":        "Image assets",
	"fonts":         "Font files",
	"api":           "API related code",
	"middleware":    "Middleware components",
	"routes":        "Application routes",
	"database":      "Database related files",
	"storage":       "File storage",
	"logs":          "Log files",
	"cache":         "Cache files",
}

// FileCategories maps well-known file basenames (lower case) to a
// description for the structure summary.
var FileCategories = map[string]string{
	"package.json":       "Node.js package configuration",
	"requirements.txt":   "Python dependencies",
	"pyproject.toml":     "Python project configuration",
	"setup.py":           "Python package setup",
	"dockerfile":         "Docker container configuration",
	"docker-compose.yml": "Docker multi-container setup",
	"makefile":           "Build automation",
	"readme.md":          "Project documentation",
	"license":            "Project license",
	".gitignore":         "Git ignore rules",
	".env.example":       "Environment variables template",
	"config.json":        "Application configuration",
	"tsconfig.json":      "TypeScript configuration",
	"webpack.config.js":  "Webpack bundler configuration",
	"babel.config.js":    "Babel transpiler configuration",
	"jest.config.js":     "Jest testing configuration",
	"eslint.config.js":   "ESLint configuration",
	"prettier.config.js": "Prettier formatting configuration",
}
