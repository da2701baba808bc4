// Package cli implements squarectl, a small command-line client for the
// Square API built on the go-square binding.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-square/internal/config"
	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/MKhiriev/go-square/square"
)

const appName = "squarectl"

// CLI holds the state shared by all commands. Output goes to out as
// indented JSON; logs go to the logger's writer.
type CLI struct {
	Logger *logger.Logger

	out io.Writer

	// flag values
	token   string
	env     string
	baseURL string
	timeout time.Duration
	verbose bool

	// newClient is replaced in tests.
	newClient func(cfg *config.Square) (*square.Client, error)
}

// New creates a CLI writing results to out and logs to errOut.
func New(out, errOut io.Writer) *CLI {
	l := logger.NewWithWriter(appName, errOut)
	_ = l.SetLevel("info")

	c := &CLI{Logger: l, out: out}
	c.newClient = c.buildClient
	return c
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "squarectl queries the Square API",
		Long:          `squarectl lists and inspects Square locations, payments, catalog objects, customers and sites. The access token comes from --token or SQUARE_ACCESS_TOKEN (a .env file is read too).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				return c.Logger.SetLevel("debug")
			}
			return nil
		},
	}
	root.SetOut(c.out)

	flags := root.PersistentFlags()
	flags.StringVar(&c.token, "token", "", "Square access token (default $SQUARE_ACCESS_TOKEN)")
	flags.StringVar(&c.env, "env", "", "Square environment: sandbox or production (default $SQUARE_ENVIRONMENT or sandbox)")
	flags.StringVar(&c.baseURL, "base-url", "", "override the API root URL")
	flags.DurationVar(&c.timeout, "timeout", 0, "per-request timeout, e.g. 10s")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log every request")
	_ = flags.MarkHidden("base-url")

	root.AddCommand(c.locationsCommand())
	root.AddCommand(c.paymentsCommand())
	root.AddCommand(c.catalogCommand())
	root.AddCommand(c.customersCommand())
	root.AddCommand(c.sitesCommand())
	root.AddCommand(c.versionCommand())

	return root
}

// Execute runs the command tree with args.
func (c *CLI) Execute(ctx context.Context, args []string) error {
	root := c.RootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// client builds a Square client from the global flags, the environment and
// .env, in that order of precedence.
func (c *CLI) client() (*square.Client, error) {
	cfg, err := config.GetClientConfig(config.Square{
		AccessToken: c.token,
		Environment: c.env,
		BaseURL:     c.baseURL,
		Timeout:     c.timeout,
	})
	if err != nil {
		return nil, err
	}
	return c.newClient(cfg)
}

func (c *CLI) buildClient(cfg *config.Square) (*square.Client, error) {
	opts, err := cfg.ClientOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, square.WithLogger(c.Logger.Logger))
	return square.NewClient(cfg.AccessToken, opts...), nil
}

// printJSON writes v as indented JSON followed by a newline.
func (c *CLI) printJSON(v any) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}
