package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mindguard/internal/prediction"
	"mindguard/internal/usecases"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	var (
		format    string
		output    string
		anonymize bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a user's check-ins as CSV or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("internal/cli/data.go export: %w", err)
				}
				defer f.Close()
				w = f
			}
			return a.services.Privacy.Export(cmd.Context(), a.user(opts.user), strings.ToLower(format), anonymize, w)
		},
	}
	cmd.Flags().StringVar(&format, "format", usecases.FormatCSV, "csv or json")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&anonymize, "anonymize", false, "drop the user id column")
	return cmd
}

func newImportCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Import check-ins from a CSV or JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), opts.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("internal/cli/data.go import: %w", err)
			}
			defer f.Close()

			if format == "" {
				format = strings.TrimPrefix(strings.ToLower(filepath.Ext(args[0])), ".")
			}
			res, err := a.services.Privacy.Import(cmd.Context(), a.user(opts.user), format, f)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %d, updated %d, rejected %d\n", res.Created, res.Updated, len(res.Errors))
			for _, e := range res.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "row %d: %s\n", e.Row, e.Error)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "csv or json (default from the file extension)")
	return cmd
}

func newPruneCommand(opts *rootOptions) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete check-ins older than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			if days == 0 {
				days = a.cfg.RetentionDays
			}
			if days <= 0 {
				return fmt.Errorf("no retention period: pass --days or set RETENTION_DAYS")
			}

			n, err := a.services.Privacy.Prune(cmd.Context(), a.user(opts.user), days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d entries older than %d days\n", n, days)
			return nil
		},
	}
	cmd.Flags().IntVar(&days, "days", 0, "keep this many days (default RETENTION_DAYS)")
	return cmd
}

func newTrainCommand(opts *rootOptions) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train and store a prediction model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd.Context(), opts.configFile)
			if err != nil {
				return err
			}
			defer a.Close()

			res, err := a.services.Forecast.Train(cmd.Context(), a.user(opts.user), target)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}
	cmd.Flags().StringVar(&target, "target", prediction.TargetStress, "stress_level or mood_score")
	return cmd
}
