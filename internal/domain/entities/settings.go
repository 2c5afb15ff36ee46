package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultUpstreamName  = "Polkadot-SDK"
	DefaultUpstreamURL   = "git@github.com:paritytech/polkadot-sdk.git"
	DefaultManifest      = "Cargo.toml"
	DefaultCheckCommand  = "cargo check"
	DefaultCheckShell    = "/bin/bash"
	DefaultCIProvider    = "github"
	DefaultCIOwner       = "HorizenLabs"
	DefaultCIRepository  = "zkVerify"
	DefaultRelayImage    = "horizenlabs/zkv-relay:latest"
	DefaultParaImage     = "paratest:latest"
	DefaultChainSpec     = "staging/raw-chainspec.json"
	DefaultParaChainSpec = "staging/raw-para-chainspec.json"
	DefaultValidator1Key = "//Validator1"
	DefaultValidator2Key = "//Validator2"

	DefaultStopAfterProcessed = 10
)

// DefaultJobsToProfile lists the CI job names profiled when none are configured.
func DefaultJobsToProfile() []string {
	return []string{
		"build-test-job / build-and-test",
		"test-coverage-job / coverage",
		"lint-format-job / lint-and-format",
		"e2e-test-job / e2e-test",
	}
}

// Settings is the top-level configuration for zkvtools.
type Settings struct {
	Sync    SyncSettings    `yaml:"sync"`
	Profile ProfileSettings `yaml:"profile"`
	Compose ComposeSettings `yaml:"compose"`
}

// SyncSettings configures the dependency synchronization run.
type SyncSettings struct {
	UpstreamName  string `yaml:"upstream_name"`  // Used in logs and the commit message
	UpstreamURL   string `yaml:"upstream_url"`   // Clone URL of the upstream workspace
	UpstreamToken string `yaml:"upstream_token"` // Inline, $VAR, or file path; dropped unless upstream_url is HTTPS
	Manifest      string `yaml:"manifest"`       // Local workspace manifest
	CheckCommand  string `yaml:"check_command"`  // Build verification command
	CheckShell    string `yaml:"check_shell"`    // Shell running CheckCommand
	AuthorName    string `yaml:"author_name"`    // Empty: taken from git config
	AuthorEmail   string `yaml:"author_email"`
}

// ProfileSettings configures the CI profiler.
type ProfileSettings struct {
	Provider   string   `yaml:"provider"`
	Owner      string   `yaml:"owner"`
	Repository string   `yaml:"repository"`
	Token      string   `yaml:"token"` // Inline, $VAR, or file path
	Jobs       []string `yaml:"jobs"`
}

// ComposeSettings holds defaults for the compose topology generator.
type ComposeSettings struct {
	RelayImage    string `yaml:"relay_image"`
	ParaImage     string `yaml:"para_image"`
	ChainSpec     string `yaml:"chain_spec"`
	ParaChainSpec string `yaml:"para_chain_spec"`
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Sync: SyncSettings{
			UpstreamName: DefaultUpstreamName,
			UpstreamURL:  DefaultUpstreamURL,
			Manifest:     DefaultManifest,
			CheckCommand: DefaultCheckCommand,
			CheckShell:   DefaultCheckShell,
		},
		Profile: ProfileSettings{
			Provider:   DefaultCIProvider,
			Owner:      DefaultCIOwner,
			Repository: DefaultCIRepository,
			Jobs:       DefaultJobsToProfile(),
		},
		Compose: ComposeSettings{
			RelayImage:    DefaultRelayImage,
			ParaImage:     DefaultParaImage,
			ChainSpec:     DefaultChainSpec,
			ParaChainSpec: DefaultParaChainSpec,
		},
	}
}

// NewSettings reads a configuration file on top of the defaults and
// resolves its token references.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Profile.Token = expandSecret("profile.token", settings.Profile.Token)
	if settings.Sync.UpstreamToken != "" {
		if IsHTTPS(settings.Sync.UpstreamURL) {
			settings.Sync.UpstreamToken = expandSecret("sync.upstream_token", settings.Sync.UpstreamToken)
		} else {
			logger.Warnf("Ignoring sync.upstream_token, %s is not an HTTPS URL", settings.Sync.UpstreamURL)
			settings.Sync.UpstreamToken = ""
		}
	}

	if validateErr := validate(settings); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// IsHTTPS reports whether url is cloned over HTTPS, the only transport that
// takes a token.
func IsHTTPS(url string) bool {
	return strings.HasPrefix(url, "https://")
}

// ConfigSearch lists where a config file is looked up when --config is not
// given. Every name is tried in each directory, in order.
type ConfigSearch struct {
	Dirs  []string
	Names []string
}

// DefaultConfigSearch looks in the working directory, ./configs, the user
// config directory and the home directory.
func DefaultConfigSearch() ConfigSearch {
	dirs := []string{".", "configs"}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(configDir, "zkvtools"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, home)
	}
	return ConfigSearch{
		Dirs:  dirs,
		Names: []string{"zkvtools.yaml", "zkvtools.yml", ".zkvtools.yaml"},
	}
}

// Find returns the first regular file among the candidates.
func (s ConfigSearch) Find() (string, bool) {
	for _, dir := range s.Dirs {
		for _, name := range s.Names {
			path := filepath.Join(dir, name)
			if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
				return path, true
			}
		}
	}
	return "", false
}

// expandSecret substitutes $VAR and ${VAR} references in raw. A result that
// names an existing file is replaced by the file's trimmed content.
func expandSecret(field, raw string) string {
	if raw == "" {
		return ""
	}

	value := os.Expand(raw, func(name string) string {
		env, ok := os.LookupEnv(name)
		if !ok {
			logger.Warnf("%s references unset variable %s", field, name)
		}
		return env
	})

	info, err := os.Stat(value)
	if err != nil || !info.Mode().IsRegular() {
		return value
	}
	data, err := os.ReadFile(value)
	if err != nil {
		logger.Warnf("Failed to read %s from %q: %v", field, value, err)
		return value
	}
	logger.Debugf("Read %s from %q", field, value)
	return strings.TrimSpace(string(data))
}

// validate checks for required configuration values.
func validate(settings *Settings) error {
	if settings.Sync.UpstreamURL == "" {
		return errors.New("sync.upstream_url is required")
	}
	if settings.Sync.Manifest == "" {
		return errors.New("sync.manifest is required")
	}
	if settings.Sync.CheckShell == "" {
		return errors.New("sync.check_shell is required")
	}
	if (settings.Sync.AuthorName == "") != (settings.Sync.AuthorEmail == "") {
		return errors.New("sync.author_name and sync.author_email must be set together")
	}
	if settings.Profile.Owner == "" || settings.Profile.Repository == "" {
		return errors.New("profile.owner and profile.repository are required")
	}
	return nil
}
