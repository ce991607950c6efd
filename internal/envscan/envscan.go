// Package envscan collects variable names from env-template files. These
// are the variables a user must supply, kept separate from the variables a
// container sets.
package envscan

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"

	"readmegen/internal/rules"
)

// Scan parses the first existing env-template file under root and returns
// its declared variable names, sorted. A missing template is the normal
// "feature not present" case and yields nil.
func Scan(root string) []string {
	for _, name := range rules.EnvTemplateFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		vars, err := godotenv.Read(path)
		if err != nil {
			slog.Warn("could not parse env template", "file", name, "error", err)
			return nil
		}

		names := make([]string, 0, len(vars))
		for k := range vars {
			names = append(names, k)
		}
		sort.Strings(names)
		return names
	}
	return nil
}
