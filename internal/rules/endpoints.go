package rules

import "regexp"

// EndpointPatterns matches route declarations across common ecosystems. The
// last capture group of every pattern is the path argument; the detected
// string is best-effort and may carry decorator remnants.
var EndpointPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)@app\.route\(["']([^"']+)["']`),                              // Flask
	regexp.MustCompile(`(?i)@router\.(get|post|put|delete)\(["']([^"']+)["']`),           // FastAPI
	regexp.MustCompile(`(?i)app\.(get|post|put|delete)\(["']([^"']+)["']`),               // Express.js
	regexp.MustCompile(`(?i)@(GetMapping|PostMapping|PutMapping|DeleteMapping)\(["']([^"']+)["']`), // Spring Boot
	regexp.MustCompile(`(?i)@RequestMapping.*value\s*=\s*["']([^"']+)["']`),              // Spring Boot
	regexp.MustCompile(`(?i)Route::(get|post|put|delete)\(["']([^"']+)["']`),             // Laravel
	regexp.MustCompile(`(?i)router\.(get|post|put|delete)\(["']([^"']+)["']`),            // generic routers
}

// SourceExtensions are the file types scanned for signatures and endpoints.
var SourceExtensions = []string{
	".py", ".js", ".jsx", ".ts", ".tsx", ".java", ".go", ".rs", ".php", ".rb",
}

// MaxEndpoints caps the deduplicated endpoint list.
const MaxEndpoints = 20

// MaxFeatures caps the inferred feature list.
const MaxFeatures = 15
