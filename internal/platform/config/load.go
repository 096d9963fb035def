package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Environment variables read outside the key hierarchy.
const (
	EnvPrefix    = "STORESYNC_"
	ProfileEnv   = EnvPrefix + "PROFILE"
	ConfigDirEnv = EnvPrefix + "CONFIG_DIR"
)

const defaultConfigDir = "configs"

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	dir       string
	overrides map[string]any
}

// WithConfigDir reads base.yaml and the profile file from dir instead of
// $STORESYNC_CONFIG_DIR or ./configs.
func WithConfigDir(dir string) Option {
	return func(o *loadOptions) { o.dir = dir }
}

// WithOverride sets key after every other layer, so it beats the
// environment. Command-line flags use it.
func WithOverride(key string, value any) Option {
	return func(o *loadOptions) { o.overrides[key] = value }
}

// layer is one step of the load order; later layers win.
type layer struct {
	name string
	load func(k *koanf.Koanf) error
}

// Load builds the configuration for profile from, in order: built-in
// defaults, base.yaml, {profile}.yaml, STORESYNC_* variables and
// overrides. Variables map onto known keys first, so
// STORESYNC_CLIENT_RATE_LIMIT_BURST_SIZE sets client.rate_limit.burst_size
// rather than client.rate.limit.burst.size.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	o := &loadOptions{dir: os.Getenv(ConfigDirEnv), overrides: map[string]any{}}
	if o.dir == "" {
		o.dir = defaultConfigDir
	}
	for _, opt := range opts {
		opt(o)
	}

	k := koanf.New(".")
	for _, l := range []layer{
		{"defaults", setAll(defaults())},
		{"base.yaml", yamlFile(filepath.Join(o.dir, "base.yaml"))},
		{profile + ".yaml", yamlFile(filepath.Join(o.dir, profile+".yaml"))},
		{"environment", environment},
		{"overrides", setAll(o.overrides)},
	} {
		if err := l.load(k); err != nil {
			return nil, fmt.Errorf("loading %s: %w", l.name, err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", profile, err)
	}
	return &cfg, nil
}

func setAll(values map[string]any) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		for key, value := range values {
			if err := k.Set(key, value); err != nil {
				return fmt.Errorf("%s: %w", key, err)
			}
		}
		return nil
	}
}

func yamlFile(path string) func(*koanf.Koanf) error {
	return func(k *koanf.Koanf) error {
		return k.Load(file.Provider(path), yaml.Parser())
	}
}

// environment loads STORESYNC_* variables. It must run after the defaults
// so that every known key is available for matching.
func environment(k *koanf.Koanf) error {
	known := make(map[string]string, len(k.Keys()))
	for _, key := range k.Keys() {
		known[strings.ReplaceAll(key, ".", "_")] = key
	}

	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, EnvPrefix))
			if key, ok := known[name]; ok {
				return key, value
			}
			// PROFILE, CONFIG_DIR and unknown names land outside Config.
			return strings.ReplaceAll(name, "_", "."), value
		},
	}), nil)
}

// validateProfile keeps the profile name inside the config directory.
func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`), strings.Contains(profile, ".."):
		return fmt.Errorf("profile %q must be a bare name", profile)
	}
	return nil
}
