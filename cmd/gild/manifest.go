package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const noManifestMessage = "no gild.toml found and --golden not set\nplease specify the golden root explicitly, e.g.:\n  gild verify --golden testdata/golden path/to/output"

type manifest struct {
	Path   string
	Root   string
	Config manifestConfig
}

type manifestConfig struct {
	Golden goldenConfig `toml:"golden"`
}

type goldenConfig struct {
	Dir string `toml:"dir"`
}

// resolveGoldenRoot picks the golden root from the --golden flag, falling
// back to the gild.toml manifest found by walking up from dir. Manifest
// paths are relative to the manifest's own directory.
func resolveGoldenRoot(goldenFlag, dir string) (string, error) {
	if goldenFlag != "" {
		return goldenFlag, nil
	}
	m, ok, err := loadManifest(dir)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", errors.New(noManifestMessage)
	}
	return filepath.Join(m.Root, m.Config.Golden.Dir), nil
}

func findGildToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, "gild.toml")
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

func loadManifest(startDir string) (*manifest, bool, error) {
	manifestPath, ok, err := findGildToml(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	cfg, err := loadManifestConfig(manifestPath)
	if err != nil {
		return nil, true, err
	}
	return &manifest{
		Path:   manifestPath,
		Root:   filepath.Dir(manifestPath),
		Config: cfg,
	}, true, nil
}

func loadManifestConfig(path string) (manifestConfig, error) {
	var cfg manifestConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return manifestConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("golden") {
		return manifestConfig{}, fmt.Errorf("%s: missing [golden]", path)
	}
	if !meta.IsDefined("golden", "dir") || strings.TrimSpace(cfg.Golden.Dir) == "" {
		return manifestConfig{}, fmt.Errorf("%s: missing [golden].dir", path)
	}
	return cfg, nil
}
