package commands

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/IanChok/finance-tracker/internal/config"
	"github.com/IanChok/finance-tracker/internal/model"
	"github.com/IanChok/finance-tracker/internal/statement"
)

func newParseCommand() *cobra.Command {
	var format string
	var configPath string

	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a single bank statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// The flag wins; otherwise the config's output format applies.
			if format == "" {
				cfg, err := config.LoadOrDefault(configPath)
				if err != nil {
					return err
				}
				format = cfg.Output.Format
			}

			txns, err := statement.ParseFile(args[0])
			if err != nil {
				return err
			}
			return writeTransactions(cmd.OutOrStdout(), txns, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "", `output format ("table" or "csv"; defaults to the config setting)`)
	cmd.Flags().StringVar(&configPath, "config", "tracker.yaml", "path to config file")

	return cmd
}

func writeTransactions(w io.Writer, txns []model.Transaction, format string) error {
	switch format {
	case "table":
		for _, t := range txns {
			fmt.Fprintf(w, "%s  %-6s  %12s  %s\n",
				t.Date.Format("2006-01-02"), t.Type, t.Amount.StringFixed(2), t.Description)
		}
		fmt.Fprintf(w, "%d transaction(s)\n", len(txns))
		return nil
	case "csv":
		cw := csv.NewWriter(w)
		for _, t := range txns {
			row := []string{
				t.Date.Format("2006-01-02"),
				string(t.Type),
				t.Amount.String(),
				t.Description,
				string(t.Category),
			}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing row: %w", err)
			}
		}
		cw.Flush()
		return cw.Error()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
