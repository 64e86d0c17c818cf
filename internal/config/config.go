// Package config resolves runtime settings from defaults, an optional YAML
// file, environment variables and command-line flags, in that order of
// increasing precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/hammamikhairi/hiitcoach/internal/logger"
)

// Environment variables read by Parse. A .env file is loaded into the
// environment before Parse runs.
const (
	EnvCatalog           = "HIIT_CATALOG"
	EnvLogLevel          = "HIIT_LOG_LEVEL"
	EnvSeed              = "HIIT_SEED"
	EnvAzureSpeechKey    = "AZURE_SPEECH_KEY"
	EnvAzureSpeechRegion = "AZURE_SPEECH_REGION"
)

// Config holds every setting the coach needs at startup.
type Config struct {
	// Catalog is the path of the exercise catalog. Empty selects the
	// built-in catalog.
	Catalog string       `yaml:"catalog"`
	Log     LogConfig    `yaml:"log"`
	Speech  SpeechConfig `yaml:"speech"`
	// Seed fixes exercise selection. Zero picks a random seed.
	Seed uint64 `yaml:"seed"`
}

type LogConfig struct {
	// File receives log output; "stderr" logs to the console.
	File   string       `yaml:"file"`
	Level  string       `yaml:"level"`
	Parsed logger.Level `yaml:"-"`
}

type SpeechConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Voice     string `yaml:"voice"`
	CacheDir  string `yaml:"cache_dir"`
	DiskCache bool   `yaml:"disk_cache"`
	Beep      bool   `yaml:"beep"`

	// Credentials only come from the environment.
	AzureKey    string `yaml:"-"`
	AzureRegion string `yaml:"-"`
}

// Default returns the settings used when nothing else is configured.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			File:  ".hiit-logs/hiit.log",
			Level: "normal",
		},
		Speech: SpeechConfig{
			Enabled:   true,
			CacheDir:  ".hiit-cache",
			DiskCache: true,
			Beep:      true,
		},
	}
}

// SpeechAvailable reports whether spoken cues are enabled and credentials
// are present.
func (c *Config) SpeechAvailable() bool {
	return c.Speech.Enabled && c.Speech.AzureKey != "" && c.Speech.AzureRegion != ""
}

// Parse resolves the configuration for args (without the program name).
// getenv is usually os.Getenv. It returns flag.ErrHelp when -h is given.
func Parse(args []string, getenv func(string) string) (*Config, error) {
	fs := flag.NewFlagSet("hiitcoach", flag.ContinueOnError)

	configPath := fs.String("config", "", "optional YAML settings file")
	catalog := fs.String("catalog", "", "exercise catalog (JSON or YAML); empty uses the built-in one")
	logFile := fs.String("log-file", "", "file to write logs to (use \"stderr\" to log to console)")
	verbose := fs.Bool("verbose", false, "enable verbose/debug logging")
	quiet := fs.Bool("quiet", false, "disable all logging")
	noSpeech := fs.Bool("no-speech", false, "disable spoken cues even if Azure keys are set")
	voice := fs.String("voice", "", "Azure neural voice for spoken cues")
	cacheDir := fs.String("cache-dir", "", "directory for persistent TTS audio cache")
	diskCache := fs.Bool("disk-cache", true, "persist TTS audio cache to disk (reads from disk even when false)")
	beep := fs.Bool("beep", true, "beep on the last three seconds of every countdown")
	seed := fs.Uint64("seed", 0, "fix exercise selection (0 = random)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg := Default()
	if *configPath != "" {
		if err := cfg.loadFile(*configPath); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if set["catalog"] {
		cfg.Catalog = *catalog
	}
	if set["log-file"] {
		cfg.Log.File = *logFile
	}
	if set["verbose"] && *verbose {
		cfg.Log.Level = "verbose"
	}
	// Quiet wins over verbose.
	if set["quiet"] && *quiet {
		cfg.Log.Level = "off"
	}
	if set["no-speech"] && *noSpeech {
		cfg.Speech.Enabled = false
	}
	if set["voice"] {
		cfg.Speech.Voice = *voice
	}
	if set["cache-dir"] {
		cfg.Speech.CacheDir = *cacheDir
	}
	if set["disk-cache"] {
		cfg.Speech.DiskCache = *diskCache
	}
	if set["beep"] {
		cfg.Speech.Beep = *beep
	}
	if set["seed"] {
		cfg.Seed = *seed
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	cfg.Log.Parsed = level

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv(EnvCatalog); v != "" {
		c.Catalog = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	c.Speech.AzureKey = getenv(EnvAzureSpeechKey)
	c.Speech.AzureRegion = getenv(EnvAzureSpeechRegion)
	return nil
}
