package rules

// SignatureTable maps a canonical label to the keywords whose presence in a
// corpus indicates that label. Labels are unique in canonical form; the
// matcher relies on that to avoid alias duplicates in results.
type SignatureTable map[string][]string

// TechSignatures detects frameworks and technologies from dependency names,
// manifest text, infra files, and source prefixes.
var TechSignatures = SignatureTable{
	"React":            {"react", "@types/react", "react-dom", "create-react-app"},
	"Vue.js":           {"vue", "@vue", "nuxt", "quasar"},
	"Angular":          {"@angular", "angular", "ng-", "@nguniversal"},
	"Next.js":          {"next", "next.js"},
	"Nuxt.js":          {"nuxt", "@nuxt"},
	"Express.js":       {"express", "express-"},
	"Koa.js":           {"koa", "@koa"},
	"Fastify":          {"fastify"},
	"NestJS":           {"@nestjs", "nest"},
	"Django":           {"django", "Django"},
	"Flask":            {"flask", "Flask"},
	"FastAPI":          {"fastapi", "uvicorn"},
	"Spring Boot":      {"spring-boot", "@SpringBootApplication"},
	"Laravel":          {"laravel", "artisan"},
	"Symfony":          {"symfony"},
	"Rails":            {"rails", "actionpack"},
	"Sinatra":          {"sinatra"},
	"Gin":              {"gin-gonic", "github.com/gin-gonic/gin"},
	"Echo":             {"labstack/echo"},
	"Rocket":           {"rocket", "rocket.rs"},
	"Actix":            {"actix-web"},
	"ASP.NET":          {"Microsoft.AspNetCore", "System.Web"},
	"Electron":         {"electron"},
	"React Native":     {"react-native", "@react-native"},
	"Flutter":          {"flutter", "dart:flutter"},
	"Unity":            {"UnityEngine", "Unity"},
	"Docker":           {"Dockerfile", "docker-compose"},
	"Kubernetes":       {"kubectl", "k8s", "kubernetes"},
	"Redis":            {"redis", "ioredis"},
	"MongoDB":          {"mongodb", "mongoose", "pymongo"},
	"PostgreSQL":       {"postgresql", "psycopg2", "pg"},
	"MySQL":            {"mysql", "mysql2", "PyMySQL"},
	"SQLite":           {"sqlite", "sqlite3"},
	"GraphQL":          {"graphql", "apollo", "@graphql"},
	"REST API":         {"@RestController", "flask-restful", "express"},
	"WebSocket":        {"socket.io", "ws", "websocket"},
	"Microservices":    {"consul", "eureka", "istio"},
	"Machine Learning": {"tensorflow", "pytorch", "scikit-learn", "pandas", "numpy"},
	"Data Science":     {"jupyter", "matplotlib", "seaborn", "plotly"},
	"Blockchain":       {"web3", "ethers", "truffle", "hardhat"},
	"Testing":          {"jest", "pytest", "mocha", "chai", "cypress", "selenium"},
	"CI/CD":            {".github/workflows", ".gitlab-ci.yml", "Jenkinsfile", ".travis.yml"},
}

// DatabaseSignatures maps database products to image/dependency keywords.
var DatabaseSignatures = SignatureTable{
	"PostgreSQL":    {"postgres", "postgresql"},
	"MySQL":         {"mysql", "mariadb"},
	"MongoDB":       {"mongo"},
	"Redis":         {"redis"},
	"Elasticsearch": {"elasticsearch", "elastic"},
	"SQLite":        {"sqlite"},
}

// LanguageExtensions maps a file extension to its language label for the
// usage histogram. Extensions absent here are simply not counted.
var LanguageExtensions = map[string]string{
	".py":   "Python",
	".js":   "JavaScript",
	".jsx":  "JavaScript",
	".ts":   "TypeScript",
	".tsx":  "TypeScript",
	".java": "Java",
	".cpp":  "C++",
	".cc":   "C++",
	".cxx":  "C++",
	".cs":   "C#",
	".go":   "Go",
	".rs":   "Rust",
	".php":  "PHP",
	".rb":   "Ruby",
	".html": "HTML",
	".htm":  "HTML",
	".css":  "CSS",
	".scss": "CSS",
	".sass": "CSS",
}

// FeatureIndicators maps a feature label to keywords searched across the
// union of dependency names, detected labels, and the project description.
var FeatureIndicators = map[string][]string{
	"Authentication":       {"auth", "jwt", "passport", "oauth", "login", "session"},
	"API Development":      {"api", "rest", "graphql", "endpoint"},
	"Real-time Features":   {"websocket", "socket.io", "ws", "realtime"},
	"File Upload":          {"multer", "upload", "file-upload", "boto3"},
	"Email Services":       {"nodemailer", "sendgrid", "mailgun", "smtp"},
	"Payment Integration":  {"stripe", "paypal", "payment"},
	"Caching":              {"redis", "memcached", "cache"},
	"Testing":              {"jest", "pytest", "mocha", "phpunit", "rspec"},
	"CI/CD":                {"github-actions", "travis", "jenkins", "gitlab-ci"},
	"Monitoring":           {"sentry", "newrelic", "datadog", "prometheus"},
	"Documentation":        {"swagger", "openapi", "docs", "sphinx"},
	"Containerization":     {"docker", "kubernetes"},
	"Microservices":        {"consul", "eureka", "istio", "service-mesh"},
	"Machine Learning":     {"tensorflow", "pytorch", "scikit-learn", "ml"},
	"Data Processing":      {"pandas", "numpy", "spark", "kafka"},
	"Frontend Framework":   {"react", "vue", "angular", "svelte"},
	"Mobile Development":   {"react-native", "flutter", "ionic"},
	"Desktop Application":  {"electron", "qt", "tkinter"},
	"Game Development":     {"unity", "pygame", "phaser"},
	"Blockchain":           {"web3", "ethereum", "solidity", "bitcoin"},
	"Database Integration": nil, // filled at match time from detected databases
}

// APIFileHints flags filenames that likely define API routes.
var APIFileHints = []string{"route", "endpoint", "api", "controller", "handler", "service"}
