package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) locationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List and inspect business locations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all locations of the seller",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.Locations().List(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(resp.Locations)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <location-id>",
		Short: "Show one location (\"main\" is the default location)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.Locations().Retrieve(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printJSON(resp.Location)
		},
	})

	return cmd
}
