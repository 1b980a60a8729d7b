package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadShooter loads the shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.yaml -> ./configs/shooter.yaml -> embedded default.
// Files found on the search path start from the defaults, so a partial file
// only overrides the keys it names. A file that exists but does not parse is
// an error rather than a silent fallback.
func LoadShooter(customPath string) (ShooterConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ShooterConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parseShooterFile(customPath, data)
	}

	if userCfgPath := userConfigPath("shooter.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parseShooterFile(userCfgPath, data)
		}
	}

	localPath := filepath.Join("configs", "shooter.yaml")
	if data, err := os.ReadFile(localPath); err == nil {
		return parseShooterFile(localPath, data)
	}

	cfg, err := parseShooter(defaultShooterYAML)
	if err != nil {
		return DefaultShooterConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseShooterFile(path string, data []byte) (ShooterConfig, error) {
	cfg, err := parseShooter(data)
	if err != nil {
		return ShooterConfig{}, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// difficultyOverrides captures the raw tier entries so each one can be
// decoded over its default profile.
type difficultyOverrides struct {
	Difficulty map[DifficultyTier]yaml.Node `yaml:"difficulty"`
}

// parseShooter decodes YAML over the defaults and validates the result.
// Tier entries merge field by field into the default profile of that tier.
func parseShooter(data []byte) (ShooterConfig, error) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return ShooterConfig{}, err
	}

	var raw difficultyOverrides
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return ShooterConfig{}, err
	}
	if len(raw.Difficulty) > 0 {
		defaults := DefaultShooterConfig().Difficulty
		if cfg.Difficulty == nil {
			cfg.Difficulty = make(map[DifficultyTier]DifficultyProfile, len(raw.Difficulty))
		}
		for tier, node := range raw.Difficulty {
			profile := defaults[tier]
			if err := node.Decode(&profile); err != nil {
				return ShooterConfig{}, fmt.Errorf("config: difficulty %q: %w", tier, err)
			}
			cfg.Difficulty[tier] = profile
		}
	}

	if err := cfg.Validate(); err != nil {
		return ShooterConfig{}, err
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
