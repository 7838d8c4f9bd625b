package cli

import (
	"bytes"
	"fmt"
	"io"
	"ocai-hub/services"
	"os"

	"github.com/spf13/cobra"
)

func newExportCommand() *cobra.Command {
	var (
		surveyID   string
		exportType string
		outPath    string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a de-identified CSV export of a survey",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, db, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer db.Close()
			defer application.Cache.Close()

			var buf bytes.Buffer
			filename, err := application.Exports.Write(cmd.Context(), &buf, surveyID, exportType)
			if err != nil {
				return err
			}

			if outPath == "" {
				_, err = io.Copy(cmd.OutOrStdout(), &buf)
				return err
			}
			if outPath == "." {
				outPath = filename
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&surveyID, "survey", "", "survey id")
	cmd.Flags().StringVar(&exportType, "type", services.ExportResponses, "export type: responses or aggregates")
	cmd.Flags().StringVar(&outPath, "out", "", `output file, "." for the default filename (default: stdout)`)
	_ = cmd.MarkFlagRequired("survey")
	return cmd
}
