package commands

import (
	"github.com/VladPetriv/currency_bot/config"
	"github.com/VladPetriv/currency_bot/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
	log *logger.Logger
)

// Execute runs the command line interface of the bot.
func Execute() error {
	root := &cobra.Command{
		Use:          "currency_bot",
		Short:        "Chat bot that converts currency amounts mentioned in messages",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error

			cfg, err = config.Get()
			if err != nil {
				return err
			}

			log, err = logger.New(logger.Options{
				Level:      cfg.Logger.Level,
				Pretty:     cfg.Logger.Pretty,
				Filename:   cfg.Logger.Filename,
				MaxSizeMB:  cfg.Logger.MaxSizeMB,
				MaxBackups: cfg.Logger.MaxBackups,
			})
			if err != nil {
				return err
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}

	root.AddCommand(serveCmd(), convertCmd())
	return root.Execute()
}
