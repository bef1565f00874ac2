package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for cargobump.
type Settings struct {
	Manifest     string   `yaml:"manifest"`     // Manifest file name, e.g. "Cargo.toml"
	GitURL       string   `yaml:"git_url"`      // Source URL recognised in pinnable declarations
	Dependencies []string `yaml:"dependencies"` // Crate names to pin
	SetVersion   []string `yaml:"set_version"`  // Command argv; the version is appended
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the built-in configuration used when no file is found.
func DefaultSettings() *Settings {
	return &Settings{
		Manifest:     DefaultManifestName,
		GitURL:       DefaultGitURL,
		Dependencies: DefaultPinnedDependencies(),
		SetVersion:   []string{"cargo", "set-version"},
	}
}

// NewSettings reads a configuration file. Keys missing from the file keep
// their default values.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Manifest = expandEnv(settings.Manifest)
	settings.GitURL = expandEnv(settings.GitURL)
	for i := range settings.SetVersion {
		settings.SetVersion[i] = expandEnv(settings.SetVersion[i])
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// PinRule returns the dependency rule described by the settings.
func (s *Settings) PinRule() PinRule {
	return PinRule{Names: s.Dependencies, GitURL: s.GitURL}
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.Manifest == "" {
		return errors.New("manifest is required")
	}
	if filepath.Base(s.Manifest) != s.Manifest {
		return fmt.Errorf("manifest must be a file name, not a path: %q", s.Manifest)
	}
	if s.GitURL == "" {
		return errors.New("git_url is required")
	}
	if len(s.Dependencies) == 0 {
		return errors.New("dependencies must have at least one entry")
	}
	for i, name := range s.Dependencies {
		if name == "" {
			return fmt.Errorf("dependencies[%d] must not be empty", i)
		}
	}
	if len(s.SetVersion) == 0 || s.SetVersion[0] == "" {
		return errors.New("set_version must name a command")
	}
	return nil
}

// FindConfigFile searches for a configuration file in standard locations
// below dir, then in the user's home directory. Returns the absolute path to
// the first file found or an error if none is found.
func FindConfigFile(dir string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		dir,
		filepath.Join(dir, ".config"),
		filepath.Join(dir, "configs"),
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cargobump.yaml",
		".cargobump.yml",
		"cargobump.yaml",
		"cargobump.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return filepath.Abs(p)
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// LoadSettings loads the file at path (relative paths resolve against dir),
// or the file auto-detected from dir when path is empty, or the defaults
// when nothing is found. It also returns the absolute path that was loaded,
// empty when the defaults are used.
func LoadSettings(dir, path string) (*Settings, string, error) {
	if path == "" {
		found, err := FindConfigFile(dir)
		if err != nil {
			logger.Debugf("[bump] No config file found, using defaults: %v", err)
			return DefaultSettings(), "", nil
		}
		path = found
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	logger.Debugf("[bump] Using config file: %s", path)
	settings, err := NewSettings(path)
	if err != nil {
		return nil, "", err
	}
	return settings, path, nil
}

// expandEnv replaces ${ENV_VAR} references with their values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
