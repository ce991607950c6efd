package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"readmegen/internal/config"
	"readmegen/internal/keyfiles"
	"readmegen/internal/logging"
	"readmegen/internal/profile"
	"readmegen/internal/prompt"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	startedAt := time.Now()

	cfg := config.Load()

	fs := flag.NewFlagSet("readmegen", flag.ContinueOnError)
	repoDir := fs.String("repo-dir", "", "repository directory to analyze (overrides config)")
	shallow := fs.Bool("shallow", false, "perform shallow analysis for faster processing")
	profileOut := fs.String("profile-out", "", "write the project profile as JSON to this path")
	promptOut := fs.String("prompt-out", "", "write the rendered prompt to this path (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *repoDir != "" {
		cfg.RepoDir = *repoDir
	}
	if *shallow {
		cfg.Analysis.Depth = "shallow"
	}
	if *profileOut != "" {
		cfg.Output.ProfilePath = *profileOut
	}
	if *promptOut != "" {
		cfg.Output.PromptPath = *promptOut
	}

	closeLogger, err := logging.Configure(cfg.Logging)
	if err != nil {
		return fmt.Errorf("configure logger: %w", err)
	}
	defer func() {
		if closeErr := closeLogger(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	slog.Info("analysis run started",
		"repo_dir", cfg.RepoDir,
		"depth", cfg.Analysis.Depth,
	)
	defer func() {
		fields := []any{"duration_ms", time.Since(startedAt).Milliseconds()}
		if err != nil {
			fields = append(fields, "error", err)
			slog.Error("analysis run failed", fields...)
			return
		}
		slog.Info("analysis run finished", fields...)
	}()

	var p *profile.Profile
	if err := logStep("build_profile", func() error {
		builder := profile.NewBuilder(cfg.RepoDir, cfg)
		built, buildErr := builder.Build()
		if buildErr != nil {
			return buildErr
		}
		p = built
		return nil
	}); err != nil {
		return err
	}
	slog.Info("project profile ready",
		"main_language", p.MainLanguage,
		"technologies", len(p.Technologies),
		"complexity_score", p.ComplexityScore,
		"setup_difficulty", p.SetupDifficulty,
	)

	var sample keyfiles.Sample
	if err := logStep("select_key_files", func() error {
		s, selErr := keyfiles.Select(cfg.RepoDir, cfg.Analysis.KeyFileBudget)
		if selErr != nil {
			return selErr
		}
		sample = s
		return nil
	}); err != nil {
		return err
	}
	slog.Info("key files selected", "files", len(sample.Files), "total_bytes", sample.TotalBytes)

	if cfg.Output.ProfilePath != "" {
		if err := logStep("write_profile", func() error {
			return writeProfile(cfg.Output.ProfilePath, p)
		}); err != nil {
			return err
		}
	}

	rendered := prompt.Render(p, sample, repoName(cfg.RepoDir))
	if cfg.Output.PromptPath != "" {
		return logStep("write_prompt", func() error {
			return os.WriteFile(cfg.Output.PromptPath, []byte(rendered), 0644)
		})
	}
	_, werr := fmt.Fprintln(os.Stdout, rendered)
	return werr
}

func writeProfile(path string, p *profile.Profile) error {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return os.WriteFile(path, append(b, '\n'), 0644)
}

// repoName derives a fallback project name from the analyzed directory.
func repoName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return strings.TrimSuffix(filepath.Base(abs), ".git")
}

func logStep(name string, fn func() error) error {
	startedAt := time.Now()
	slog.Info("step started", "step", name)
	if err := fn(); err != nil {
		slog.Error("step failed", "step", name, "duration_ms", time.Since(startedAt).Milliseconds(), "error", err)
		return err
	}
	slog.Info("step succeeded", "step", name, "duration_ms", time.Since(startedAt).Milliseconds())
	return nil
}
