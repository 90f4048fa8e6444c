package main

import (
	"os"

	"github.com/spf13/cobra"

	"property-management/internal/config"
	"property-management/internal/logger"
)

// @title Property Management API
// @version 1.0
// @description REST API over property managers, properties, tenancies, tenants and support workers
// @host localhost:8080
// @BasePath /
// @schemes http

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCommand().Execute(); err != nil {
		logger.Default().WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string
	root := &cobra.Command{
		Use:           "property-management",
		Short:         "Property management REST API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to the YAML config file.")

	load := func() (*config.Config, error) {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		if err := logger.InitLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
			return nil, err
		}
		return cfg, nil
	}

	root.AddCommand(
		newServeCommand(load),
		newDBCommand(load),
		newTokenCommand(load),
	)
	return root
}

type configLoader func() (*config.Config, error)
