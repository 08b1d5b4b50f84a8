package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilobytetools/scratch/client"
)

var pullCmd = &cobra.Command{
	Use:   "pull [ID]",
	Short: "Get the contents of a file",
	Long: `Pull a file by id and write it to stdout. If the file was pushed with a
password, it is required to pull the file. When ID is omitted, pulls the
most recently pushed file. If you pushed the file with a prefix, you must
include that prefix in the id.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPull,
}

func init() {
	rootCmd.AddCommand(pullCmd)

	pullCmd.Flags().Bool("anon", false, "pull without passing credentials; only public files can be pulled anonymously")
	pullCmd.Flags().String("pw", "", "password the file was pushed with, if any")
}

func runPull(cmd *cobra.Command, args []string) error {
	anon, _ := cmd.Flags().GetBool("anon")
	pw, _ := cmd.Flags().GetString("pw")

	c, err := newClient(!anon, anon)
	if err != nil {
		return err
	}

	id := ""
	if len(args) == 1 {
		id = args[0]
	}
	return c.Pull(context.Background(), id, client.PullOptions{Anon: anon, Password: pw}, os.Stdout)
}
