package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Get usage stats for your account",
	Long:  "List usage and capacity stats for your account.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(true, false)
		if err != nil {
			return err
		}
		resp, err := c.Stats(context.Background())
		if err != nil {
			return err
		}
		render(resp)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
