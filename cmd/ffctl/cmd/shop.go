package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func shopCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "shop <name>",
		Short: "List Naver Shopping products for a flower",
		Long: "Fetches every product the server aggregates for the name. Table output\n" +
			"shows the first --limit rows; JSON output prints all items unchanged.",
		Example: `  ffctl shop 장미
  ffctl shop "rose bouquet" --limit 50`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := newClient().Shop(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), items)
			}

			products := make([]product, 0, len(items))
			for i, raw := range items {
				var p product
				if err := json.Unmarshal(raw, &p); err != nil {
					return fmt.Errorf("decoding item %d: %w", i, err)
				}
				products = append(products, p)
			}
			return printProductTable(cmd.OutOrStdout(), products, limit)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum rows in table output (0 for all)")

	return cmd
}
