package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/widgetkit/widgetgen/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the generator.
const (
	KeyAuthor      = "author"
	KeyCopyright   = "copyright"
	KeyLicense     = "license"
	KeyBuilder     = "builder"
	KeyBoilerplate = "boilerplate"
	KeyNPM         = "npm"
	KeySkipInstall = "skip_install"
)

// Keys returns every supported configuration key.
func Keys() []string {
	return []string{KeyAuthor, KeyCopyright, KeyLicense, KeyBuilder, KeyBoilerplate, KeyNPM, KeySkipInstall}
}

// ValidateKey rejects keys the generator does not read.
func ValidateKey(key string) error {
	for _, k := range Keys() {
		if k == key {
			return nil
		}
	}
	return fmt.Errorf("unknown config key %q: valid keys are %s", key, strings.Join(Keys(), ", "))
}

// Defaults are the user-configured fallbacks for a generator run.
type Defaults struct {
	Author      string
	Copyright   string
	License     string
	Builder     string
	Boilerplate string
	NPM         string
	SkipInstall bool
}

// Dir returns the path to the config directory (~/.widgetgen/).
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("home")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyLicense, "Apache 2")
	viper.SetDefault(KeyBuilder, "gulp")
	viper.SetDefault(KeyBoilerplate, "appstore")
	viper.SetDefault(KeyNPM, "npm")
	viper.SetDefault(KeySkipInstall, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// LoadDefaults reads the generator defaults from the loaded configuration.
func LoadDefaults() Defaults {
	return Defaults{
		Author:      viper.GetString(KeyAuthor),
		Copyright:   viper.GetString(KeyCopyright),
		License:     viper.GetString(KeyLicense),
		Builder:     viper.GetString(KeyBuilder),
		Boilerplate: viper.GetString(KeyBoilerplate),
		NPM:         viper.GetString(KeyNPM),
		SkipInstall: viper.GetBool(KeySkipInstall),
	}
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
