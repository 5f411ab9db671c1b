package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
}

type projectConfig struct {
	Package packageConfig `toml:"package"`
	Parse   parseConfig   `toml:"parse"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type parseConfig struct {
	Ext  string `toml:"ext"`
	Jobs int    `toml:"jobs"`
}

func findWikitextToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "wikitext.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findWikitextToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadProjectConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &projectManifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadProjectConfig(path string) (projectConfig, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return projectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return projectConfig{}, fmt.Errorf("%s: missing [package]", path)
	}
	if !meta.IsDefined("package", "name") || strings.TrimSpace(cfg.Package.Name) == "" {
		return projectConfig{}, fmt.Errorf("%s: missing [package].name", path)
	}
	if meta.IsDefined("parse", "ext") && !strings.HasPrefix(cfg.Parse.Ext, ".") {
		return projectConfig{}, fmt.Errorf("%s: [parse].ext must start with a dot", path)
	}
	if meta.IsDefined("parse", "jobs") && cfg.Parse.Jobs < 0 {
		return projectConfig{}, fmt.Errorf("%s: [parse].jobs must not be negative", path)
	}
	return cfg, nil
}

// resolveBatchOptions сводит --ext/--jobs с дефолтами из wikitext.toml.
// Явно заданный флаг всегда сильнее манифеста.
func resolveBatchOptions(cmd *cobra.Command, startDir string) (string, int, error) {
	ext, err := cmd.Flags().GetString("ext")
	if err != nil {
		return "", 0, fmt.Errorf("failed to get ext flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return "", 0, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	manifest, ok, err := loadProjectManifest(startDir)
	if err != nil {
		return "", 0, err
	}
	if ok {
		if !cmd.Flags().Changed("ext") && manifest.Config.Parse.Ext != "" {
			ext = manifest.Config.Parse.Ext
		}
		if !cmd.Flags().Changed("jobs") && manifest.Config.Parse.Jobs > 0 {
			jobs = manifest.Config.Parse.Jobs
		}
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	return ext, jobs, nil
}
