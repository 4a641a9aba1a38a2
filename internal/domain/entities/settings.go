package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for gitupgrade. Every field has a
// default, so the tool works without a config file.
type Settings struct {
	Framework      FrameworkSettings      `yaml:"framework"`
	PackageManager PackageManagerSettings `yaml:"package_manager"`
	Generator      GeneratorSettings      `yaml:"generator"`
}

// FrameworkSettings identifies the upgraded framework package and its
// peer-dependency migration rule.
type FrameworkSettings struct {
	Package       string `yaml:"package"`        // registry name of the framework
	PeerPackage   string `yaml:"peer_package"`   // peer dependency the project must declare
	PeerThreshold string `yaml:"peer_threshold"` // first release that requires the explicit declaration
}

// PackageManagerSettings holds the package-manager command used for registry
// queries and installs.
type PackageManagerSettings struct {
	Command string `yaml:"command"`
}

// GeneratorSettings holds the template generator command.
type GeneratorSettings struct {
	Command string `yaml:"command"`
}

// DefaultSettings returns the built-in configuration.
func DefaultSettings() *Settings {
	return &Settings{
		Framework: FrameworkSettings{
			Package:       "react-native",
			PeerPackage:   "react",
			PeerThreshold: "0.21.0",
		},
		PackageManager: PackageManagerSettings{Command: "npm"},
		Generator:      GeneratorSettings{Command: "react-native"},
	}
}

// NewSettings reads and parses a configuration file, filling absent fields
// with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	applyDefaults(&settings)

	if validateErr := validate(&settings); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// LoadSettings resolves the configuration for this run: the GITUPGRADE_CONFIG
// environment variable wins, then standard file locations, then defaults.
// Broken config files are reported and replaced with defaults so the CLI
// stays usable.
func LoadSettings() *Settings {
	path := os.Getenv("GITUPGRADE_CONFIG")
	if path == "" {
		found, err := FindSettingsFile()
		if err != nil {
			return DefaultSettings()
		}
		path = found
	}

	settings, err := NewSettings(path)
	if err != nil {
		logger.Warnf("Ignoring config file %q: %v", path, err)
		return DefaultSettings()
	}

	logger.Debugf("Using config file: %s", path)
	return settings
}

// FindSettingsFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindSettingsFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".gitupgrade.yaml",
		".gitupgrade.yml",
		"gitupgrade.yaml",
		"gitupgrade.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

func applyDefaults(settings *Settings) {
	defaults := DefaultSettings()

	if settings.Framework.Package == "" {
		settings.Framework.Package = defaults.Framework.Package
	}
	if settings.Framework.PeerPackage == "" {
		settings.Framework.PeerPackage = defaults.Framework.PeerPackage
	}
	if settings.Framework.PeerThreshold == "" {
		settings.Framework.PeerThreshold = defaults.Framework.PeerThreshold
	}
	if settings.PackageManager.Command == "" {
		settings.PackageManager.Command = defaults.PackageManager.Command
	}
	if settings.Generator.Command == "" {
		settings.Generator.Command = defaults.Generator.Command
	}
}

// validate checks the configuration values that cannot be defaulted away.
func validate(settings *Settings) error {
	threshold := settings.Framework.PeerThreshold
	if !semver.IsValid(normalizeThreshold(threshold)) {
		return fmt.Errorf("framework.peer_threshold %q is not a valid semantic version", threshold)
	}
	return nil
}

func normalizeThreshold(version string) string {
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
