package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/flower-finder/internal/api"
)

func openapiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document as YAML",
		Long: "Print the OpenAPI 3.1 document describing the flower-finder API.\n" +
			"A running server also serves it at /openapi.json and /openapi.yaml.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := api.OpenAPIYAML(Version)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), string(doc))
			return err
		},
	}
}
