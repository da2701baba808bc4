package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-square/models"
	"github.com/MKhiriev/go-square/square"
)

func (c *CLI) paymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List, inspect and cancel payments",
	}

	cmd.AddCommand(c.paymentsListCommand())

	cmd.AddCommand(&cobra.Command{
		Use:   "get <payment-id>",
		Short: "Show one payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.Payments().Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return c.printJSON(resp.Payment)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <payment-id>",
		Short: "Void an APPROVED payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			resp, err := client.Payments().Cancel(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c.Logger.Info().Str("payment_id", resp.Payment.ID).Str("status", string(resp.Payment.Status)).Msg("payment canceled")
			return c.printJSON(resp.Payment)
		},
	})

	return cmd
}

func (c *CLI) paymentsListCommand() *cobra.Command {
	var (
		params square.ListPaymentsParams
		desc   bool
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments, newest first with --desc",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := c.client()
			if err != nil {
				return err
			}
			if desc {
				params.SortOrder = models.SortDesc
			}

			if !all {
				resp, err := client.Payments().List(cmd.Context(), params)
				if err != nil {
					return err
				}
				if resp.Cursor != "" {
					c.Logger.Info().Str("cursor", resp.Cursor).Msg("more payments available, use --all or --cursor")
				}
				return c.printJSON(resp.Payments)
			}

			var payments []models.Payment
			it := client.Payments().Iterate(params)
			for it.Next(cmd.Context()) {
				payments = append(payments, it.Value())
			}
			if err := it.Err(); err != nil {
				return err
			}
			return c.printJSON(payments)
		},
	}

	f := cmd.Flags()
	f.StringVar(&params.LocationID, "location", "", "only payments taken at this location")
	f.StringVar(&params.BeginTime, "begin", "", "RFC 3339 start of the time range")
	f.StringVar(&params.EndTime, "end", "", "RFC 3339 end of the time range")
	f.StringVar(&params.Cursor, "cursor", "", "cursor returned by a previous call")
	f.IntVar(&params.Limit, "limit", 0, "page size (Square caps it at 100)")
	f.BoolVar(&desc, "desc", false, "newest payments first")
	f.BoolVar(&all, "all", false, "follow cursors and print every page")

	return cmd
}
