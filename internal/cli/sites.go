package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) sitesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sites",
		Short: "Square Online sites",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the seller's Square Online sites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.Sites().List(cmd.Context())
			if err != nil {
				return err
			}
			return c.printJSON(resp.Sites)
		},
	})

	return cmd
}
