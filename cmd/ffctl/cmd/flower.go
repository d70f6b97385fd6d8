package cmd

import (
	"github.com/spf13/cobra"
)

func flowerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flower <name>",
		Short: "Look up a flower by English or Korean name",
		Example: `  ffctl flower rose
  ffctl flower 장미 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := newClient().FindFlower(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), f)
			}
			return printFlowerDetail(cmd.OutOrStdout(), f)
		},
	}
}
