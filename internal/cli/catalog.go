package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

func (c *CLI) catalogCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the item catalog",
	}

	var types []string
	list := &cobra.Command{
		Use:   "list",
		Short: "List catalog objects, every page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			params := square.ListCatalogParams{Types: catalogTypes(types)}
			objects, err := square.CollectAll(cmd.Context(), func(ctx context.Context, cursor string) ([]models.CatalogObject, string, error) {
				params.Cursor = cursor
				resp, err := client.Catalog().List(ctx, params)
				if err != nil {
					return nil, "", err
				}
				return resp.Objects, resp.Cursor, nil
			})
			if err != nil {
				return err
			}
			if objects == nil {
				objects = []models.CatalogObject{}
			}
			return c.printJSON(objects)
		},
	}
	list.Flags().StringSliceVar(&types, "types", nil, "object types, e.g. ITEM,CATEGORY,TAX")

	cmd.AddCommand(list)
	return cmd
}

func catalogTypes(raw []string) []models.CatalogObjectType {
	var types []models.CatalogObjectType
	for _, t := range raw {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, models.CatalogObjectType(strings.ToUpper(t)))
		}
	}
	return types
}
