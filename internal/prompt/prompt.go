// Package prompt renders the structured README-generation prompt from a
// project profile and a key-file sample. Invoking a generation backend is
// the caller's concern.
package prompt

import (
	"fmt"
	"strings"

	"readmegen/internal/keyfiles"
	"readmegen/internal/profile"
)

const (
	maxPromptTechnologies = 10
	maxPromptEndpoints    = 10
	maxPromptEnvVars      = 10
	maxPromptSourceFiles  = 3
	maxSourceExcerpt      = 1500
)

// configExtensions classify sampled files into the configuration section
// of the prompt; everything else renders as source.
var configExtensions = []string{".json", ".txt", ".toml", ".yml", ".yaml", "Dockerfile"}

// Render assembles the full generation prompt. repoName is the fallback
// project name when no manifest declared one.
func Render(p *profile.Profile, sample keyfiles.Sample, repoName string) string {
	name := p.Name
	if name == "" {
		name = repoName
	}

	var b strings.Builder
	b.WriteString("You are tasked with creating a comprehensive, professional README.md for a software project. ")
	b.WriteString("Analyze the provided information and create documentation that would be helpful for both developers and users.\n\n")

	b.WriteString("PROJECT INFORMATION:\n")
	fmt.Fprintf(&b, "- Name: %s\n", name)
	fmt.Fprintf(&b, "- Description: %s\n", orPlaceholder(p.Description, "[Analyze the code to write a description]"))
	fmt.Fprintf(&b, "- Version: %s\n", orPlaceholder(p.Version, "Not specified"))
	fmt.Fprintf(&b, "- Author: %s\n", orPlaceholder(p.Author, "Not specified"))
	fmt.Fprintf(&b, "- License: %s\n", orPlaceholder(p.License, "Not specified"))

	writeTechStack(&b, p)
	writeDocker(&b, p)

	if len(p.Features) > 0 {
		b.WriteString("\nDETECTED FEATURES:\n")
		b.WriteString(strings.Join(p.Features, ", "))
		b.WriteByte('\n')
	}
	if len(p.APIEndpoints) > 0 {
		b.WriteString("\nAPI ENDPOINTS DETECTED:\n")
		b.WriteString(strings.Join(capped(p.APIEndpoints, maxPromptEndpoints), ", "))
		b.WriteByte('\n')
	}
	if len(p.EnvExampleVars) > 0 {
		b.WriteString("\nENVIRONMENT VARIABLES:\n")
		b.WriteString(strings.Join(capped(p.EnvExampleVars, maxPromptEnvVars), ", "))
		b.WriteByte('\n')
	}

	writeKeyFiles(&b, sample)
	writeCommands(&b, p)
	writeSkeleton(&b, name)
	return b.String()
}

func writeTechStack(b *strings.Builder, p *profile.Profile) {
	b.WriteString("\nTECHNOLOGY STACK:\n")
	fmt.Fprintf(b, "- Main Language: %s\n", orPlaceholder(p.MainLanguage, "Not detected"))

	langs := make([]string, 0, len(p.Languages))
	for _, l := range p.Languages {
		langs = append(langs, l.Language)
	}
	fmt.Fprintf(b, "- Languages: %s\n", joinOr(langs, "Not detected"))
	fmt.Fprintf(b, "- Frameworks: %s\n", joinOr(p.Frameworks, "None detected"))
	fmt.Fprintf(b, "- Technologies: %s\n", joinOr(capped(p.Technologies, maxPromptTechnologies), "None detected"))
	fmt.Fprintf(b, "- Architecture: %s\n", p.ArchitectureType)
	fmt.Fprintf(b, "- Setup Difficulty: %s (Complexity Score: %d)\n", p.SetupDifficulty, p.ComplexityScore)
}

func writeDocker(b *strings.Builder, p *profile.Profile) {
	if !p.HasDocker {
		return
	}
	b.WriteString("\nDOCKER CONFIGURATION:\n")
	fmt.Fprintf(b, "- Services: %s\n", joinOr(p.DockerServices, "Standard container"))
	fmt.Fprintf(b, "- Exposed Ports: %s\n", joinOr(p.Ports, "Not specified"))
	fmt.Fprintf(b, "- Databases: %s\n", joinOr(p.Databases, "None"))
}

func writeKeyFiles(b *strings.Builder, sample keyfiles.Sample) {
	var configFiles, sourceFiles []keyfiles.File
	for _, f := range sample.Files {
		if isConfigFile(f.Path) {
			configFiles = append(configFiles, f)
		} else {
			sourceFiles = append(sourceFiles, f)
		}
	}

	b.WriteString("\nPROJECT FILES ANALYSIS:\n")
	if len(configFiles) > 0 {
		b.WriteString("\n=== CONFIGURATION FILES ===\n")
		for _, f := range configFiles {
			fmt.Fprintf(b, "\n--- %s ---\n%s\n", f.Path, f.Content)
		}
	}
	if len(sourceFiles) > 0 {
		b.WriteString("\n=== SOURCE FILES ===\n")
		for i, f := range sourceFiles {
			if i >= maxPromptSourceFiles {
				break
			}
			content := f.Content
			if len(content) > maxSourceExcerpt {
				content = content[:maxSourceExcerpt]
			}
			fmt.Fprintf(b, "\n--- %s ---\n%s\n", f.Path, content)
		}
	}
}

func writeCommands(b *strings.Builder, p *profile.Profile) {
	b.WriteString("\nCOMMANDS DETECTED:\n")
	fmt.Fprintf(b, "- Install: %s\n", orPlaceholder(p.InstallCmd, "[Determine from files above]"))
	fmt.Fprintf(b, "- Run: %s\n", orPlaceholder(p.RunCmd, "[Determine from files above]"))
	fmt.Fprintf(b, "- Development: %s\n", orPlaceholder(p.DevCmd, "[Determine from files above if different from run]"))
	fmt.Fprintf(b, "- Test: %s\n", orPlaceholder(p.TestCmd, "[Determine from files above]"))
	fmt.Fprintf(b, "- Build: %s\n", orPlaceholder(p.BuildCmd, "[Determine from files above]"))
}

func writeSkeleton(b *strings.Builder, name string) {
	b.WriteString("\nCreate a comprehensive README.md with the following structure:\n\n")
	fmt.Fprintf(b, "# %s\n\n", name)
	b.WriteString("[Write a compelling project description based on the analysis above. Include what the project does, its main purpose, and key features.]\n\n")
	b.WriteString("## Table of Contents\n")
	b.WriteString("- [Features](#features)\n")
	b.WriteString("- [Tech Stack](#tech-stack)\n")
	b.WriteString("- [Getting Started](#getting-started)\n")
	b.WriteString("  - [Prerequisites](#prerequisites)\n")
	b.WriteString("  - [Installation](#installation)\n")
	b.WriteString("  - [Configuration](#configuration)\n")
	b.WriteString("- [Usage](#usage)\n")
	b.WriteString("- [API Documentation](#api-documentation) [Include only if APIs detected]\n")
	b.WriteString("- [Docker Deployment](#docker-deployment) [Include only if Docker detected]\n")
	b.WriteString("- [Development](#development)\n")
	b.WriteString("- [Contributing](#contributing)\n")
	b.WriteString("- [License](#license)\n")
}

func isConfigFile(path string) bool {
	for _, suffix := range configExtensions {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

func orPlaceholder(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

func joinOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return strings.Join(values, ", ")
}

func capped(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}
