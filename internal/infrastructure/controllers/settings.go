package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/zkvtools/internal/domain/entities"
)

// loadSettings reads --config, or the first file found by search, or falls
// back to the built-in defaults.
func loadSettings(cmd *cobra.Command, search entities.ConfigSearch) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, ok := search.Find()
		if !ok {
			logger.Debug("No config file found, using built-in defaults")
			return entities.DefaultSettings(), nil
		}
		configPath = found
	}

	logger.Infof("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}
