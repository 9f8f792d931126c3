package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/utsurius/actionable-messages/adaptivecard"
	"github.com/utsurius/actionable-messages/internal/samples"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the feedback sample form",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(adaptivecard.FormSchema[samples.Feedback]())
		},
	}
}
