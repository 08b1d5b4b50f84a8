package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm ID",
	Short: "Remove a file by id",
	Long: `Delete a file by id. If you pushed the file with a prefix, you must
include that prefix. Deletion does not require a password.

EXAMPLES:
    scratch rm c869d7cc
    scratch rm creds.aws:f0022e5a`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true, false)
		if err != nil {
			return err
		}
		resp, err := c.Delete(context.Background(), args[0])
		if err != nil {
			return err
		}
		render(resp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
