package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"readmegen/internal/rules"
)

// ParseRequirements extracts dependency names from a pip-style pin list.
// One dependency per non-empty, non-comment line; the name is everything
// before the first version operator or whitespace.
func ParseRequirements(content []byte) Fact {
	f := Fact{
		MainLanguage: "Python",
		InstallCmd:   "pip install -r requirements.txt",
	}

	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		name := strings.ToLower(splitRequirement(line))
		if name == "" {
			continue
		}
		f.Dependencies = append(f.Dependencies, name)

		if fw, ok := rules.PythonRequirementFrameworks[name]; ok {
			f.Frameworks = append(f.Frameworks, fw.Label)
			if f.RunCmd == "" {
				f.RunCmd = fw.RunCmd
			}
		}
	}
	return f
}

func splitRequirement(line string) string {
	if idx := strings.IndexAny(line, ">=<! \t"); idx >= 0 {
		return line[:idx]
	}
	return line
}

type pyProject struct {
	Project struct {
		Name         string         `toml:"name"`
		Description  string         `toml:"description"`
		Version      string         `toml:"version"`
		Authors      []tomlAuthor   `toml:"authors"`
		License      toml.Primitive `toml:"license"`
		Dependencies []string       `toml:"dependencies"`
	} `toml:"project"`
}

type tomlAuthor struct {
	Name  string `toml:"name"`
	Email string `toml:"email"`
}

// ParsePyProject extracts the PEP 621 project table from pyproject.toml.
func ParsePyProject(content []byte) (Fact, error) {
	var doc pyProject
	meta, err := toml.Decode(string(content), &doc)
	if err != nil {
		return Fact{}, fmt.Errorf("decode pyproject.toml: %w", err)
	}

	f := Fact{
		Name:         doc.Project.Name,
		Description:  doc.Project.Description,
		Version:      doc.Project.Version,
		MainLanguage: "Python",
		InstallCmd:   "pip install .",
		License:      decodeLicense(meta, doc.Project.License),
	}

	var authors []string
	for _, a := range doc.Project.Authors {
		if a.Name != "" {
			authors = append(authors, a.Name)
		} else if a.Email != "" {
			authors = append(authors, a.Email)
		}
	}
	f.Author = strings.Join(authors, ", ")

	for _, dep := range doc.Project.Dependencies {
		if name, _, _ := strings.Cut(strings.TrimSpace(dep), " "); name != "" {
			f.Dependencies = append(f.Dependencies, name)
		}
	}
	return f, nil
}

// decodeLicense tolerates both the table form ({text = "..."}) and the
// plain string form of the license field.
func decodeLicense(meta toml.MetaData, prim toml.Primitive) string {
	var table struct {
		Text string `toml:"text"`
	}
	if err := meta.PrimitiveDecode(prim, &table); err == nil && table.Text != "" {
		return table.Text
	}
	var s string
	if err := meta.PrimitiveDecode(prim, &s); err == nil {
		return s
	}
	return ""
}

var (
	setupNameRe    = regexp.MustCompile(`name=["']([^"']+)["']`)
	setupDescRe    = regexp.MustCompile(`description=["']([^"']+)["']`)
	setupVersionRe = regexp.MustCompile(`version=["']([^"']+)["']`)
)

// ParseSetupPy recovers basic metadata from a legacy setup script with
// regexes over the source text. Lossy on purpose: the script is never
// executed.
func ParseSetupPy(content []byte) Fact {
	f := Fact{MainLanguage: "Python", InstallCmd: "pip install ."}
	text := string(content)

	if m := setupNameRe.FindStringSubmatch(text); m != nil {
		f.Name = m[1]
	}
	if m := setupDescRe.FindStringSubmatch(text); m != nil {
		f.Description = m[1]
	}
	if m := setupVersionRe.FindStringSubmatch(text); m != nil {
		f.Version = m[1]
	}
	return f
}

// ProbeEntryPoint finds the first conventional entry file under root and
// fills the entry point plus a default interpreter command when the fact
// has no run command yet.
func ProbeEntryPoint(root string, f *Fact) {
	for _, name := range rules.EntryPointFiles {
		if _, err := os.Stat(filepath.Join(root, name)); err != nil {
			continue
		}
		f.EntryPoint = name
		if f.RunCmd == "" {
			f.RunCmd = "python " + name
		}
		return
	}
}

func sortStrings(s []string) {
	sort.Strings(s)
}
