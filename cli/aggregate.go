package cli

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

func newAggregateCommand() *cobra.Command {
	var surveyID string

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Recompute a survey's aggregates and print them as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, db, err := openApp(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer db.Close()
			defer application.Cache.Close()

			aggs, err := application.Reports.Recompute(cmd.Context(), surveyID)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(map[string]any{"aggregates": aggs})
		},
	}

	cmd.Flags().StringVar(&surveyID, "survey", "", "survey id")
	_ = cmd.MarkFlagRequired("survey")
	return cmd
}
