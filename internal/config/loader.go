package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SourceEmbedded is reported when no config file was found on disk.
const SourceEmbedded = "embedded"

// validator is implemented by every game config.
type validator interface {
	Validate() error
}

// LoadBird loads Healing Bird configuration.
// Search order: customPath -> ~/.arcade/configs/bird.yaml -> ./configs/bird.yaml -> embedded default.
// The returned source names the file that was used.
func LoadBird(customPath string) (BirdConfig, string, error) {
	return load(BirdID, customPath, defaultBirdYAML, DefaultBirdConfig())
}

// LoadInvaders loads Invaders configuration.
// Search order: customPath -> ~/.arcade/configs/invaders.yaml -> ./configs/invaders.yaml -> embedded default.
func LoadInvaders(customPath string) (InvadersConfig, string, error) {
	return load(InvadersID, customPath, defaultInvadersYAML, DefaultInvadersConfig())
}

// load overlays the first usable file onto the embedded defaults, so a file
// only needs the keys it changes. An explicit path must exist, parse and
// validate; files found on the search path are skipped when broken.
func load[T validator](gameID, customPath string, embedded []byte, fallback T) (T, string, error) {
	base := fallback
	if err := yaml.Unmarshal(embedded, &base); err != nil {
		base = fallback // Fallback to hardcoded if embed fails
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data, true)
		if err != nil {
			return base, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, "", fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	filename := gameID + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := overlay(base, data, false)
		if err != nil || cfg.Validate() != nil {
			continue
		}
		return cfg, path, nil
	}

	return base, SourceEmbedded, nil
}

// overlay decodes data on top of a copy of base.
func overlay[T any](base T, data []byte, strict bool) (T, error) {
	cfg := base
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(strict)
	if err := dec.Decode(&cfg); err != nil {
		// An empty document leaves the defaults in place.
		if errors.Is(err, io.EOF) {
			return base, nil
		}
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
