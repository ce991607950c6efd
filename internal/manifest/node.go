package manifest

import (
	"encoding/json"
	"fmt"

	"readmegen/internal/rules"
)

type packageJSON struct {
	Name         string            `json:"name"`
	Description  string            `json:"description"`
	Version      string            `json:"version"`
	Main         string            `json:"main"`
	Author       json.RawMessage   `json:"author"`
	License      string            `json:"license"`
	Scripts      map[string]string `json:"scripts"`
	Dependencies map[string]string `json:"dependencies"`
	DevDeps      map[string]string `json:"devDependencies"`
}

// ParsePackageJSON extracts facts from a Node-style package manifest.
func ParsePackageJSON(content []byte) (Fact, error) {
	var pkg packageJSON
	if err := json.Unmarshal(content, &pkg); err != nil {
		return Fact{}, fmt.Errorf("decode package.json: %w", err)
	}

	f := Fact{
		Name:         pkg.Name,
		Description:  pkg.Description,
		Version:      pkg.Version,
		Author:       decodeAuthor(pkg.Author),
		License:      pkg.License,
		MainLanguage: "JavaScript",
		EntryPoint:   pkg.Main,
		InstallCmd:   "npm install",
	}
	if f.EntryPoint == "" {
		f.EntryPoint = "index.js"
	}

	// Fixed order so that competing aliases (dev/develop/serve) resolve
	// the same way on every run.
	for _, script := range rules.ScriptOrder {
		if _, ok := pkg.Scripts[script]; !ok {
			continue
		}
		cmd := "npm run " + script
		if script == "start" {
			cmd = "npm start"
		}
		switch rules.ScriptRoles[script] {
		case rules.RoleRun:
			if f.RunCmd == "" {
				f.RunCmd = cmd
			}
		case rules.RoleDev:
			if f.DevCmd == "" {
				f.DevCmd = cmd
			}
		case rules.RoleTest:
			if f.TestCmd == "" {
				f.TestCmd = cmd
			}
		case rules.RoleBuild:
			if f.BuildCmd == "" {
				f.BuildCmd = cmd
			}
		}
	}

	for dep := range pkg.Dependencies {
		f.Dependencies = append(f.Dependencies, dep)
	}
	for dep := range pkg.DevDeps {
		f.DevDependencies = append(f.DevDependencies, dep)
	}
	sortStrings(f.Dependencies)
	sortStrings(f.DevDependencies)

	for label, names := range rules.NodeFrameworks {
		for _, name := range names {
			_, inDeps := pkg.Dependencies[name]
			_, inDev := pkg.DevDeps[name]
			if inDeps || inDev {
				f.Frameworks = append(f.Frameworks, label)
				break
			}
		}
	}
	sortStrings(f.Frameworks)

	return f, nil
}

// decodeAuthor tolerates both the string and the object form of the
// package.json author field.
func decodeAuthor(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return obj.Name
	}
	return ""
}
