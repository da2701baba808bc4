package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-square/models"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the build information printed by "squarectl version". It
// is called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.printJSON(models.NewAppBuildInfo(version, date, commit))
		},
	}
}
