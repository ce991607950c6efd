package profile

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"readmegen/internal/classify"
	"readmegen/internal/config"
	"readmegen/internal/container"
	"readmegen/internal/envscan"
	"readmegen/internal/manifest"
	"readmegen/internal/rules"
	"readmegen/internal/signature"
	"readmegen/internal/textfile"
)

// sourcePrefixBytes caps how much of each source file the signature scan
// reads; it bounds wall-clock cost on large repositories, nothing more.
const sourcePrefixBytes = 5000

// endpointPrefixBytes caps the per-file read for route detection.
const endpointPrefixBytes = 3000

// pythonFrameworkFiles bounds the Python source files inspected for
// framework idioms.
const pythonFrameworkFiles = 10

type fileEntry struct {
	rel  string
	size int64
}

// Builder runs one analysis over a repository tree. It is single-use and
// not safe for concurrent calls; create one Builder per analysis.
type Builder struct {
	root string
	cfg  *config.Config
	cls  classify.Classifier

	files            []fileEntry // kept files in walk order
	manifestLanguage string
	p                *Profile
}

// NewBuilder prepares an analysis of the tree rooted at root.
func NewBuilder(root string, cfg *config.Config) *Builder {
	return &Builder{
		root: root,
		cfg:  cfg,
		cls:  classify.New(cfg.Analysis.MaxFileSize),
		p:    &Profile{},
	}
}

// Build walks the repository once and derives the full profile. The only
// hard failure is an unreadable root; every parser failure degrades to a
// logged warning and an absent contribution.
func (b *Builder) Build() (*Profile, error) {
	if err := b.walk(); err != nil {
		return nil, fmt.Errorf("enumerate repository root %s: %w", b.root, err)
	}

	b.detectTechnologies()
	b.summarizeStructure()
	b.parseManifests()
	b.probeEntryPoint()
	b.analyzeContainers()
	b.p.EnvExampleVars = envscan.Scan(b.root)

	if !b.cfg.Analysis.Shallow() {
		b.scanEndpoints()
		b.inferFeatures()
	}

	// Manifest detection overrides the histogram-derived guess.
	if b.manifestLanguage != "" {
		b.p.MainLanguage = b.manifestLanguage
	}

	b.p.ComplexityScore = ComplexityScore(b.p)
	b.p.SetupDifficulty = SetupDifficulty(b.p.ComplexityScore)
	b.p.ArchitectureType = ArchitectureType(b.p)
	return b.p, nil
}

// walk enumerates the tree once, applying ignore rules and building the
// language histogram.
func (b *Builder) walk() error {
	counts := make(map[string]int)
	var firstSeen []string

	err := filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == b.root {
				return err
			}
			slog.Warn("skipping unreadable entry", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		rel, rerr := filepath.Rel(b.root, path)
		if rerr != nil || rel == "." {
			return nil
		}

		if d.IsDir() {
			if b.cls.ShouldIgnore(rel, 0) {
				return filepath.SkipDir
			}
			return nil
		}

		info, ierr := d.Info()
		if ierr != nil {
			return nil
		}
		if b.cls.ShouldIgnore(rel, info.Size()) {
			return nil
		}
		b.files = append(b.files, fileEntry{rel: filepath.ToSlash(rel), size: info.Size()})

		ext := strings.ToLower(filepath.Ext(rel))
		if lang, ok := rules.LanguageExtensions[ext]; ok {
			if counts[lang] == 0 {
				firstSeen = append(firstSeen, lang)
			}
			counts[lang]++
		}
		return nil
	})
	if err != nil {
		return err
	}

	order := make(map[string]int, len(firstSeen))
	for i, lang := range firstSeen {
		order[lang] = i
	}
	for _, lang := range firstSeen {
		b.p.Languages = append(b.p.Languages, LanguageCount{Language: lang, Files: counts[lang]})
	}
	sort.SliceStable(b.p.Languages, func(i, j int) bool {
		if b.p.Languages[i].Files != b.p.Languages[j].Files {
			return b.p.Languages[i].Files > b.p.Languages[j].Files
		}
		return order[b.p.Languages[i].Language] < order[b.p.Languages[j].Language]
	})
	if len(b.p.Languages) > 0 {
		b.p.MainLanguage = b.p.Languages[0].Language
	}
	return nil
}

// detectTechnologies runs the signature matcher over the four corpora:
// manifest dependency names, raw manifest text, infra/CI files, and source
// file prefixes (deep mode only).
func (b *Builder) detectTechnologies() {
	var detected [][]string

	if content := textfile.Read(filepath.Join(b.root, "package.json")); content != "" {
		if fact, err := manifest.ParsePackageJSON([]byte(content)); err == nil {
			depCorpus := strings.Join(append(fact.Dependencies, fact.DevDependencies...), "\n")
			detected = append(detected, signature.Detect(depCorpus, rules.TechSignatures, true))
		}
		detected = append(detected, signature.Detect(content, rules.TechSignatures, true))
	}

	for _, name := range append([]string{"requirements.txt", "pyproject.toml", "setup.py", "Pipfile"}, rules.InfraFiles...) {
		content := textfile.Read(filepath.Join(b.root, name))
		if content == "" {
			continue
		}
		detected = append(detected, signature.Detect(content, rules.TechSignatures, true))
	}

	if !b.cfg.Analysis.Shallow() {
		detected = append(detected, b.scanSourceSignatures())
	}

	b.p.Technologies = signature.Union(detected...)
}

// scanSourceSignatures samples source files and matches their prefixes
// case-sensitively. Python files double as framework evidence.
func (b *Builder) scanSourceSignatures() []string {
	var (
		detected   [][]string
		scanned    int
		pyScanned  int
		frameworks []string
	)
	for _, f := range b.files {
		if scanned >= b.cfg.Analysis.SourceSampleLimit {
			break
		}
		if !hasExtension(f.rel, rules.SourceExtensions) {
			continue
		}
		scanned++
		prefix := textfile.ReadPrefix(filepath.Join(b.root, f.rel), sourcePrefixBytes)
		if prefix == "" {
			continue
		}
		detected = append(detected, signature.Detect(prefix, rules.TechSignatures, false))

		if pyScanned < pythonFrameworkFiles && strings.HasSuffix(f.rel, ".py") {
			pyScanned++
			for label, signs := range rules.PythonSourceFrameworks {
				for _, sign := range signs {
					if strings.Contains(prefix, sign) {
						frameworks = append(frameworks, label)
						break
					}
				}
			}
		}
	}
	b.p.Frameworks = signature.Union(b.p.Frameworks, frameworks)
	return signature.Union(detected...)
}

// summarizeStructure categorizes the immediate children of the root only;
// downstream consumers need orientation, not a recursive tree.
func (b *Builder) summarizeStructure() {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		slog.Warn("could not read root for structure summary", "error", err)
		return
	}
	for _, e := range entries {
		var size int64
		if !e.IsDir() {
			if info, ierr := e.Info(); ierr == nil {
				size = info.Size()
			}
		}
		if b.cls.ShouldIgnore(e.Name(), size) {
			continue
		}
		if e.IsDir() {
			prefix := e.Name() + "/"
			count := 0
			for _, f := range b.files {
				if strings.HasPrefix(f.rel, prefix) {
					count++
				}
			}
			b.p.Structure = append(b.p.Structure, StructureEntry{
				Name:        e.Name(),
				Type:        "directory",
				Description: classify.CategorizeDir(e.Name()),
				FileCount:   count,
			})
			continue
		}
		b.p.Structure = append(b.p.Structure, StructureEntry{
			Name:        e.Name(),
			Type:        "file",
			Description: classify.CategorizeFile(e.Name()),
		})
	}
}

// parseManifests runs the ecosystem parsers in priority order: the Node
// manifest first, then the first existing Python manifest.
func (b *Builder) parseManifests() {
	if content, err := os.ReadFile(filepath.Join(b.root, "package.json")); err == nil {
		fact, perr := manifest.ParsePackageJSON(content)
		if perr != nil {
			slog.Warn("could not parse package.json", "error", perr)
		} else {
			b.mergeFact(fact)
		}
	}

	for _, name := range rules.PythonManifests {
		content, err := os.ReadFile(filepath.Join(b.root, name))
		if err != nil {
			continue
		}
		var (
			fact manifest.Fact
			perr error
		)
		switch name {
		case "requirements.txt":
			fact = manifest.ParseRequirements(content)
		case "pyproject.toml":
			fact, perr = manifest.ParsePyProject(content)
		case "setup.py":
			fact = manifest.ParseSetupPy(content)
		}
		if perr != nil {
			slog.Warn("could not parse manifest", "file", name, "error", perr)
			// The file exists, so the language signal stands even when the
			// document is malformed.
			if b.manifestLanguage == "" {
				b.manifestLanguage = "Python"
			}
			break
		}
		b.mergeFact(fact)
		break
	}
}

// mergeFact folds a manifest fact into the profile. Scalar fields are only
// filled when still empty; the first manifest found wins.
func (b *Builder) mergeFact(f manifest.Fact) {
	setIfEmpty(&b.p.Name, f.Name)
	setIfEmpty(&b.p.Description, f.Description)
	setIfEmpty(&b.p.Version, f.Version)
	setIfEmpty(&b.p.Author, f.Author)
	setIfEmpty(&b.p.License, f.License)
	setIfEmpty(&b.p.EntryPoint, f.EntryPoint)
	setIfEmpty(&b.p.InstallCmd, f.InstallCmd)
	setIfEmpty(&b.p.RunCmd, f.RunCmd)
	setIfEmpty(&b.p.DevCmd, f.DevCmd)
	setIfEmpty(&b.p.TestCmd, f.TestCmd)
	setIfEmpty(&b.p.BuildCmd, f.BuildCmd)

	if f.MainLanguage != "" && b.manifestLanguage == "" {
		b.manifestLanguage = f.MainLanguage
	}

	b.p.Dependencies = appendUnique(b.p.Dependencies, f.Dependencies)
	b.p.DevDependencies = appendUnique(b.p.DevDependencies, f.DevDependencies)
	b.p.Frameworks = signature.Union(b.p.Frameworks, f.Frameworks)
}

// probeEntryPoint looks for a conventional entry file and synthesizes a
// default run command when none was derived from a manifest.
func (b *Builder) probeEntryPoint() {
	var fact manifest.Fact
	manifest.ProbeEntryPoint(b.root, &fact)
	if fact.EntryPoint == "" {
		return
	}
	b.p.EntryPoint = fact.EntryPoint
	setIfEmpty(&b.p.RunCmd, fact.RunCmd)
}

// analyzeContainers feeds ports, env vars, services, and databases from
// the Dockerfile and the first compose manifest found.
func (b *Builder) analyzeContainers() {
	if content, err := os.ReadFile(filepath.Join(b.root, "Dockerfile")); err == nil {
		b.p.HasDocker = true
		info := container.AnalyzeDockerfile(content)
		b.p.Ports = append(b.p.Ports, info.Ports...)
		b.p.EnvVars = append(b.p.EnvVars, info.EnvVars...)
		b.p.Technologies = signature.Union(b.p.Technologies, info.Technologies)
	}

	for _, name := range rules.ComposeFiles {
		content, err := os.ReadFile(filepath.Join(b.root, name))
		if err != nil {
			continue
		}
		info, cerr := container.AnalyzeCompose(content)
		if cerr != nil {
			slog.Warn("could not parse compose file", "file", name, "error", cerr)
			break
		}
		b.p.DockerServices = info.Services
		b.p.Ports = append(b.p.Ports, info.Ports...)
		b.p.EnvVars = append(b.p.EnvVars, info.EnvVars...)
		b.p.Databases = info.Databases
		break
	}
}

// scanEndpoints applies the route patterns to a capped prefix of each kept
// source file. Matches are deduplicated and capped; ordering after dedup is
// unspecified, so the list is sorted for stable output.
func (b *Builder) scanEndpoints() {
	seen := make(map[string]struct{})
	for _, f := range b.files {
		if !hasExtension(f.rel, rules.SourceExtensions) {
			continue
		}
		prefix := textfile.ReadPrefix(filepath.Join(b.root, f.rel), endpointPrefixBytes)
		if prefix == "" {
			continue
		}
		for _, pattern := range rules.EndpointPatterns {
			for _, m := range pattern.FindAllStringSubmatch(prefix, -1) {
				endpoint := m[len(m)-1]
				if endpoint != "" {
					seen[endpoint] = struct{}{}
				}
			}
		}
	}

	endpoints := make([]string, 0, len(seen))
	for e := range seen {
		endpoints = append(endpoints, e)
	}
	sort.Strings(endpoints)
	if len(endpoints) > rules.MaxEndpoints {
		endpoints = endpoints[:rules.MaxEndpoints]
	}
	b.p.APIEndpoints = endpoints
}

// inferFeatures matches the feature indicator table against everything
// detected so far plus the project description.
func (b *Builder) inferFeatures() {
	corpus := strings.ToLower(strings.Join([]string{
		strings.Join(b.p.Dependencies, " "),
		strings.Join(b.p.Technologies, " "),
		strings.Join(b.p.Frameworks, " "),
		b.p.Description,
	}, " "))

	labels := make([]string, 0, len(rules.FeatureIndicators))
	for label := range rules.FeatureIndicators {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	var features []string
	for _, label := range labels {
		indicators := rules.FeatureIndicators[label]
		if label == "Database Integration" {
			indicators = b.p.Databases
		}
		for _, ind := range indicators {
			if ind != "" && strings.Contains(corpus, strings.ToLower(ind)) {
				features = append(features, label)
				break
			}
		}
	}
	if len(features) > rules.MaxFeatures {
		features = features[:rules.MaxFeatures]
	}
	b.p.Features = features
}

func setIfEmpty(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func appendUnique(dst, src []string) []string {
	seen := make(map[string]struct{}, len(dst))
	for _, s := range dst {
		seen[s] = struct{}{}
	}
	for _, s := range src {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		dst = append(dst, s)
	}
	return dst
}

func hasExtension(path string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}
