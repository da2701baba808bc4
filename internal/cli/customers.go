package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

func (c *CLI) customersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Browse the customer directory",
	}

	var params square.ListCustomersParams
	list := &cobra.Command{
		Use:   "list",
		Short: "List every customer profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}

			customers := []models.Customer{}
			it := client.Customers().Iterate(params)
			for it.Next(cmd.Context()) {
				customers = append(customers, it.Value())
			}
			if err := it.Err(); err != nil {
				return err
			}
			return c.printJSON(customers)
		},
	}
	list.Flags().IntVar(&params.Limit, "limit", 0, "page size (Square caps it at 100)")
	list.Flags().StringVar(&params.SortField, "sort-field", "", "DEFAULT or CREATED_AT")

	cmd.AddCommand(list)
	return cmd
}
