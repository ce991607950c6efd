// Package keyfiles selects a bounded, deterministic sample of repository
// files to represent the project to a downstream text generator.
package keyfiles

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"readmegen/internal/classify"
	"readmegen/internal/rules"
	"readmegen/internal/textfile"
)

// File is one sampled file: a repo-relative path and its (possibly
// truncated) text content.
type File struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// Sample is the ordered selection result.
type Sample struct {
	Files      []File
	TotalBytes int
}

// Select walks the priority list first, then supplements with additional
// source files in walk order, never exceeding the cumulative byte budget.
// A candidate that would push the total past the budget is skipped whole;
// content is never trimmed to fit exactly. Selection order is
// deterministic so repeated runs over an unchanged tree produce identical
// prompts.
func Select(root string, budget int) (Sample, error) {
	if _, err := os.Stat(root); err != nil {
		return Sample{}, err
	}
	if budget <= 0 {
		budget = rules.DefaultKeyFileBudget
	}

	cls := classify.New(0)
	var sample Sample
	selected := make(map[string]struct{})

	for _, name := range rules.PriorityKeyFiles {
		rel := filepath.ToSlash(name)
		path := filepath.Join(root, filepath.FromSlash(name))
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if cls.ShouldIgnore(rel, info.Size()) {
			continue
		}
		content := textfile.Read(path)
		if content == "" || len(content) >= rules.MaxPriorityFileSize {
			continue
		}
		if sample.TotalBytes+len(content) > budget {
			continue
		}
		sample.Files = append(sample.Files, File{Path: rel, Content: content})
		sample.TotalBytes += len(content)
		selected[rel] = struct{}{}
	}

	// Supplement with a few small source files for code-level context.
	added := 0
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, rerr := filepath.Rel(root, path)
		if rerr != nil || rel == "." {
			return nil
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if cls.ShouldIgnore(rel, 0) {
				return filepath.SkipDir
			}
			return nil
		}
		if added >= rules.MaxSupplementFiles {
			return fs.SkipAll
		}
		if !isSourceFile(rel) {
			return nil
		}
		info, ierr := d.Info()
		if ierr != nil || cls.ShouldIgnore(rel, info.Size()) {
			return nil
		}
		if _, ok := selected[rel]; ok {
			return nil
		}

		content := textfile.Read(path)
		if content == "" || len(content) >= rules.MaxSupplementFileSize {
			return nil
		}
		if sample.TotalBytes+len(content) > budget {
			return nil
		}
		sample.Files = append(sample.Files, File{Path: rel, Content: content})
		sample.TotalBytes += len(content)
		selected[rel] = struct{}{}
		added++
		return nil
	})
	if err != nil {
		return Sample{}, err
	}
	return sample, nil
}

func isSourceFile(rel string) bool {
	ext := strings.ToLower(filepath.Ext(rel))
	for _, e := range rules.KeyFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
