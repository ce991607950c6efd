// Package manifest extracts structured facts from ecosystem manifest
// files. Every parser returns a partial Fact and degrades to an empty one
// on malformed input; a broken manifest must never abort the analysis.
package manifest

// Fact is the structured extraction from a single manifest file. Fields
// default to their zero value when the manifest does not declare them.
type Fact struct {
	Name        string
	Description string
	Version     string
	Author      string
	License     string

	MainLanguage string
	EntryPoint   string

	InstallCmd string
	RunCmd     string
	DevCmd     string
	TestCmd    string
	BuildCmd   string

	Dependencies    []string
	DevDependencies []string
	Frameworks      []string
}
