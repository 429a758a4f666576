package commands

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/IanChok/finance-tracker/internal/config"
	"github.com/IanChok/finance-tracker/internal/importer"
	"github.com/IanChok/finance-tracker/internal/importlog"
)

func newImportCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "import [dir]",
		Short: "Parse every statement CSV in the import directory",
		Long: `Import parses every CSV file in the import directory, moves parsed
files to a processed/ subdirectory, and records each run in logs/import-log.csv.
One bad file fails the whole batch and nothing is moved.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) > 0 {
				dir = args[0]
			}
			return runImport(dir, configPath, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "tracker.yaml", "path to config file")

	return cmd
}

func runImport(dir, configPath string, out io.Writer) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	if dir == "" {
		dir = cfg.Import.Dir
	}

	// Logs land next to the import directory.
	root := filepath.Dir(filepath.Clean(dir))

	results, err := importer.ImportAll(dir)
	if err != nil {
		file := dir
		var ferr *importer.FileError
		if errors.As(err, &ferr) {
			file = ferr.Name
		}
		entry := importlog.Entry{
			Timestamp: time.Now().UTC(),
			File:      file,
			Status:    importlog.StatusFailed,
			Detail:    err.Error(),
		}
		if logErr := importlog.Append(root, []importlog.Entry{entry}); logErr != nil {
			return fmt.Errorf("%w (logging failure: %v)", err, logErr)
		}
		return err
	}

	var entries []importlog.Entry
	total := 0
	for _, res := range results {
		if err := importer.MarkProcessed(dir, res.File.Name); err != nil {
			return err
		}
		entries = append(entries, importlog.Entry{
			Timestamp: time.Now().UTC(),
			File:      res.File.Name,
			Records:   len(res.Transactions),
			Status:    importlog.StatusImported,
		})
		total += len(res.Transactions)
		fmt.Fprintf(out, "%s: %d transaction(s)\n", res.File.Name, len(res.Transactions))
	}

	if len(entries) > 0 {
		if err := importlog.Append(root, entries); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "imported %d file(s), %d transaction(s)\n", len(results), total)
	return nil
}
