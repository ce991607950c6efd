// Package signature matches text corpora against curated keyword tables to
// detect technologies, frameworks, and databases. Matching is intentionally
// approximate: the results feed a best-effort documentation draft, so false
// positives on short tokens are tolerated where the case policy allows.
package signature

import (
	"sort"
	"strings"

	"readmegen/internal/rules"
)

// Detect returns the canonical labels whose signatures occur as substrings
// of corpus. With foldCase the corpus and signatures are lower-cased before
// matching; manifest-derived corpora use folding, raw source corpora do not
// (short tokens like "ws" are too noisy case-insensitively).
func Detect(corpus string, table rules.SignatureTable, foldCase bool) []string {
	if corpus == "" {
		return nil
	}
	haystack := corpus
	if foldCase {
		haystack = strings.ToLower(corpus)
	}

	var labels []string
	for label, sigs := range table {
		for _, sig := range sigs {
			if foldCase {
				sig = strings.ToLower(sig)
			}
			if sig != "" && strings.Contains(haystack, sig) {
				labels = append(labels, label)
				break
			}
		}
	}
	sort.Strings(labels)
	return labels
}

// DetectDatabases maps image or dependency names to database products.
// Image names are conventionally lower case, so matching always folds.
func DetectDatabases(corpus string) []string {
	return Detect(corpus, rules.DatabaseSignatures, true)
}

// LooksLikeRouteFile reports whether a filename suggests API route
// definitions, by substring heuristics only.
func LooksLikeRouteFile(name string) bool {
	lower := strings.ToLower(name)
	for _, hint := range rules.APIFileHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}

// Union merges label slices into one sorted, duplicate-free slice.
func Union(sets ...[]string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, set := range sets {
		for _, label := range set {
			if _, ok := seen[label]; ok {
				continue
			}
			seen[label] = struct{}{}
			out = append(out, label)
		}
	}
	sort.Strings(out)
	return out
}
