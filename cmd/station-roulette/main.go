package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/tubetrivia/station-roulette/config"
	"github.com/tubetrivia/station-roulette/internal/logging"
)

var (
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:           "station-roulette",
	Short:         "Draw random London stations matching a basket of criteria",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		if err := config.LoadAppConfig(flagConfig); err != nil {
			return err
		}
		if flagLogLevel != "" {
			config.Config.Logging.Level = flagLogLevel
		}
		if flagLogFile != "" {
			config.Config.Logging.File = flagLogFile
		}
		log = logging.Setup(logging.Options{
			Level:      config.Config.Logging.Level,
			File:       config.Config.Logging.File,
			MaxSizeMB:  config.Config.Logging.MaxSizeMB,
			MaxBackups: config.Config.Logging.MaxBackups,
			MaxAgeDays: config.Config.Logging.MaxAgeDays,
		})
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config.yml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (trace|debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "write logs to this file (rotated)")
	rootCmd.AddCommand(drawCmd, linesCmd, stationsCmd, quizCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}
