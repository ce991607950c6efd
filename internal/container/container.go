// Package container analyzes Dockerfiles and compose manifests. Dockerfiles
// are genuinely line-oriented and scanned with patterns; compose files are
// hierarchical and get a real YAML parse.
package container

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"readmegen/internal/signature"
)

// DockerInfo is the line-scan extraction from a Dockerfile.
type DockerInfo struct {
	Ports        []string
	EnvVars      []string
	BaseImage    string
	WorkDir      string
	Technologies []string
}

// ComposeInfo aggregates the per-service extraction from a compose file.
type ComposeInfo struct {
	Services  []string
	Ports     []string
	EnvVars   []string
	Databases []string
}

var (
	exposeRe  = regexp.MustCompile(`(?i)^\s*EXPOSE\s+(\d+)`)
	envRe     = regexp.MustCompile(`(?i)^\s*ENV\s+(\w+)`)
	fromRe    = regexp.MustCompile(`(?i)^\s*FROM\s+(\S+)`)
	workdirRe = regexp.MustCompile(`(?i)^\s*WORKDIR\s+(\S+)`)
)

// baseImageTech maps base-image name fragments to the language technology
// they imply.
var baseImageTech = []struct{ fragment, label string }{
	{"node", "Node.js"},
	{"python", "Python"},
	{"java", "Java"},
	{"golang", "Go"},
}

// AnalyzeDockerfile scans Dockerfile directives line by line.
func AnalyzeDockerfile(content []byte) DockerInfo {
	var info DockerInfo
	for _, line := range strings.Split(string(content), "\n") {
		if m := exposeRe.FindStringSubmatch(line); m != nil {
			info.Ports = append(info.Ports, m[1])
			continue
		}
		if m := envRe.FindStringSubmatch(line); m != nil {
			info.EnvVars = append(info.EnvVars, m[1])
			continue
		}
		if m := fromRe.FindStringSubmatch(line); m != nil && info.BaseImage == "" {
			info.BaseImage = m[1]
			lower := strings.ToLower(info.BaseImage)
			for _, t := range baseImageTech {
				if strings.Contains(lower, t.fragment) {
					info.Technologies = append(info.Technologies, t.label)
					break
				}
			}
			continue
		}
		if m := workdirRe.FindStringSubmatch(line); m != nil && info.WorkDir == "" {
			info.WorkDir = m[1]
		}
	}
	return info
}

type composeService struct {
	Image       string    `yaml:"image"`
	Ports       []any     `yaml:"ports"`
	Environment yaml.Node `yaml:"environment"`
}

type composeDoc struct {
	Services map[string]composeService `yaml:"services"`
}

// AnalyzeCompose parses a compose manifest and extracts service names,
// host-side ports, environment variable names, and database products
// implied by service images. Services are processed in sorted name order
// so repeated runs produce identical results.
func AnalyzeCompose(content []byte) (ComposeInfo, error) {
	var doc composeDoc
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return ComposeInfo{}, fmt.Errorf("decode compose file: %w", err)
	}

	var info ComposeInfo
	names := make([]string, 0, len(doc.Services))
	for name := range doc.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	info.Services = names

	seenDB := make(map[string]struct{})
	for _, name := range names {
		svc := doc.Services[name]

		for _, db := range signature.DetectDatabases(svc.Image) {
			if _, ok := seenDB[db]; ok {
				continue
			}
			seenDB[db] = struct{}{}
			info.Databases = append(info.Databases, db)
		}

		for _, p := range svc.Ports {
			if host := hostPort(p); host != "" {
				info.Ports = append(info.Ports, host)
			}
		}

		info.EnvVars = append(info.EnvVars, environmentNames(svc.Environment)...)
	}
	sort.Strings(info.Databases)
	return info, nil
}

// hostPort extracts the left (host) side of a "host:container" pair. Bare
// numeric ports are taken as-is.
func hostPort(v any) string {
	s, ok := v.(string)
	if !ok {
		if n, ok := v.(int); ok {
			return fmt.Sprintf("%d", n)
		}
		return ""
	}
	host, _, found := strings.Cut(s, ":")
	if !found {
		return s
	}
	return host
}

// environmentNames supports both the mapping form (NAME: value) and the
// list form (- NAME=value) of a compose environment block.
func environmentNames(node yaml.Node) []string {
	var names []string
	switch node.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			names = append(names, node.Content[i].Value)
		}
	case yaml.SequenceNode:
		for _, item := range node.Content {
			name, _, found := strings.Cut(item.Value, "=")
			if found && name != "" {
				names = append(names, name)
			}
		}
	}
	return names
}
