package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/salmonumbrella/txt2opml/internal/config"
	"github.com/spf13/cobra"
)

// loadConfigFromFlag loads config from --config if provided, otherwise from default path.
func loadConfigFromFlag() (*config.Config, error) {
	if strings.TrimSpace(configFile) != "" {
		return config.Load(configFile)
	}
	return config.ReadConfig()
}

func configFileForLog() string {
	if strings.TrimSpace(configFile) != "" {
		return configFile
	}
	path, err := config.DefaultConfigPath()
	if err != nil {
		return ""
	}
	return path
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if cmd.Flags().Changed(name) {
		return true
	}
	return cmd.InheritedFlags().Changed(name)
}

// currentConfig returns the config loaded for this run, or defaults.
func currentConfig() *config.Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	return &config.Config{}
}

// defaultOutputPath replaces the extension of input with ext.
func defaultOutputPath(input, ext string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + ext
}

func formatConfigLoadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load config: %w", err)
}
