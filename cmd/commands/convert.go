package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/VladPetriv/currency_bot/internal/app"
	"github.com/VladPetriv/currency_bot/internal/service"
	"github.com/spf13/cobra"
)

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "convert <text>",
		Short:   "Print conversions of the amount mentioned in text",
		Example: `  currency_bot convert "lunch was 25 GEL"`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := app.Convert(cmd.Context(), cfg, log, strings.Join(args, " "))
			if err != nil {
				if errors.Is(err, service.ErrNoCurrencyDetected) {
					fmt.Fprintln(cmd.OutOrStdout(), err.Error())
					return nil
				}

				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}
	return cmd
}
