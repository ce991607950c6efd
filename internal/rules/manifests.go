package rules

// CommandRole names the slot a manifest script fills in the profile.
type CommandRole int

const (
	RoleRun CommandRole = iota
	RoleDev
	RoleTest
	RoleBuild
)

// ScriptOrder fixes the evaluation order of manifest scripts; the first
// script found for a role wins.
var ScriptOrder = []string{"start", "dev", "develop", "serve", "test", "build", "compile"}

// ScriptRoles maps package.json script names to command roles.
var ScriptRoles = map[string]CommandRole{
	"start":   RoleRun,
	"dev":     RoleDev,
	"develop": RoleDev,
	"serve":   RoleDev,
	"test":    RoleTest,
	"build":   RoleBuild,
	"compile": RoleBuild,
}

// NodeFrameworks maps framework labels to the exact dependency names that
// declare them in package.json.
var NodeFrameworks = map[string][]string{
	"React":        {"react", "@types/react"},
	"Vue.js":       {"vue", "@vue"},
	"Angular":      {"@angular/core"},
	"Next.js":      {"next"},
	"Nuxt.js":      {"nuxt"},
	"Express.js":   {"express"},
	"Koa.js":       {"koa"},
	"NestJS":       {"@nestjs/core"},
	"Electron":     {"electron"},
	"React Native": {"react-native"},
}

// PythonFramework pairs a framework label with its conventional run command.
type PythonFramework struct {
	Label  string
	RunCmd string
}

// PythonRequirementFrameworks maps requirement names (lower case) to the
// framework they imply and a default run command.
var PythonRequirementFrameworks = map[string]PythonFramework{
	"django":   {"Django", "python manage.py runserver"},
	"flask":    {"Flask", "python app.py"},
	"fastapi":  {"FastAPI", "uvicorn main:app --reload"},
	"tornado":  {"Tornado", "python app.py"},
	"pyramid":  {"Pyramid", "pserve development.ini"},
	"bottle":   {"Bottle", "python app.py"},
	"cherrypy": {"CherryPy", "python app.py"},
}

// PythonSourceFrameworks detects frameworks from import/usage idioms in the
// first couple of kilobytes of Python source files.
var PythonSourceFrameworks = map[string][]string{
	"Django":    {"from django", "import django", "django."},
	"Flask":     {"from flask", "Flask(", "@app.route"},
	"FastAPI":   {"from fastapi", "FastAPI(", "@app.get", "@app.post"},
	"Tornado":   {"import tornado", "tornado.web"},
	"Pyramid":   {"from pyramid", "pyramid."},
	"Starlette": {"from starlette", "Starlette("},
	"Sanic":     {"from sanic", "Sanic("},
	"Quart":     {"from quart", "Quart("},
}

// EntryPointFiles lists conventional Python entry files in probe order.
var EntryPointFiles = []string{
	"main.py", "app.py", "run.py", "server.py", "manage.py", "__main__.py",
}

// EnvTemplateFiles lists env-template filenames in probe order. Only the
// first existing file is scanned.
var EnvTemplateFiles = []string{
	".env.example", ".env.template", ".env.sample", ".env.local",
}

// ComposeFiles lists compose-manifest filenames in probe order.
var ComposeFiles = []string{
	"docker-compose.yml", "docker-compose.yaml", "compose.yml", "compose.yaml",
}

// InfraFiles are infra/CI definitions scanned for technology signatures.
var InfraFiles = []string{
	"docker-compose.yml", "docker-compose.yaml", "Dockerfile",
	"kubernetes.yml", "k8s.yml", ".gitlab-ci.yml", ".travis.yml",
}

// PythonManifests lists Python manifest files in parse priority order; the
// first existing one short-circuits the rest.
var PythonManifests = []string{"requirements.txt", "pyproject.toml", "setup.py"}
