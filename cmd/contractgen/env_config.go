package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without a settings file.
type envConfig struct {
	SettingsPath string // CONTRACTGEN_SETTINGS: settings file name or path
	OutputDir    string // CONTRACTGEN_OUTPUT_DIR: directory for generated files
	TemplatePath string // CONTRACTGEN_TEMPLATE: contract template path
	LogLevel     string // CONTRACTGEN_LOG_LEVEL: debug, info, warn, error
}

const envPrefix = "CONTRACTGEN_"

// knownEnvVars lists valid CONTRACTGEN_* environment variables.
var knownEnvVars = map[string]bool{
	"CONTRACTGEN_SETTINGS":   true,
	"CONTRACTGEN_OUTPUT_DIR": true,
	"CONTRACTGEN_TEMPLATE":   true,
	"CONTRACTGEN_LOG_LEVEL":  true,
}

// loadEnvConfig reads the recognized CONTRACTGEN_* values from environ,
// given in os.Environ form. Empty values count as unset.
func loadEnvConfig(environ []string) *envConfig {
	vars := make(map[string]string, len(knownEnvVars))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if ok && knownEnvVars[name] {
			vars[name] = strings.TrimSpace(value)
		}
	}
	return &envConfig{
		SettingsPath: vars["CONTRACTGEN_SETTINGS"],
		OutputDir:    vars["CONTRACTGEN_OUTPUT_DIR"],
		TemplatePath: vars["CONTRACTGEN_TEMPLATE"],
		LogLevel:     vars["CONTRACTGEN_LOG_LEVEL"],
	}
}

// unknownEnvVars returns CONTRACTGEN_* names that are not recognized,
// such as CONTRACTGEN_OUTPUTDIR for CONTRACTGEN_OUTPUT_DIR.
func unknownEnvVars(environ []string) []string {
	var unknown []string
	for _, kv := range environ {
		name, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(name, envPrefix) && !knownEnvVars[name] {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// warnUnknownEnvVars logs one warning per unrecognized CONTRACTGEN_* variable.
func warnUnknownEnvVars(logger zerolog.Logger, environ []string) {
	for _, name := range unknownEnvVars(environ) {
		logger.Warn().Str("name", name).Msg("unknown environment variable (typo?)")
	}
}

// applyEnvConfig fills control flags the command line left empty.
// This gives: flags > environment > settings file > defaults, since the
// settings file is only read after this merge.
func applyEnvConfig(env *envConfig, f *controlFlags) error {
	if env.LogLevel != "" && f.logLevel == "" {
		if _, err := zerolog.ParseLevel(env.LogLevel); err != nil {
			return fmt.Errorf("%w: CONTRACTGEN_LOG_LEVEL %q", ErrUsage, env.LogLevel)
		}
		f.logLevel = env.LogLevel
	}
	if env.SettingsPath != "" && f.settings == "" {
		f.settings = env.SettingsPath
	}
	if env.OutputDir != "" && f.outputDir == "" {
		f.outputDir = env.OutputDir
	}
	if env.TemplatePath != "" && f.template == "" {
		f.template = env.TemplatePath
	}
	return nil
}
