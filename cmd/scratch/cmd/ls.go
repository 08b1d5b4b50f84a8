package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all file metadata",
	Long:  "List file ids and their metadata.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true, false)
		if err != nil {
			return err
		}
		resp, err := c.List(context.Background())
		if err != nil {
			return err
		}
		render(resp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
}
