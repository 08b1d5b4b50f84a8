package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kilobytetools/scratch/client"
	"github.com/kilobytetools/scratch/internal/config"
	"github.com/kilobytetools/scratch/internal/prompt"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Create a valid config file",
	Long: `Creates a minimal valid config file to use the service. Prompts for your
account handle and password, exchanges them for an API key and dataplane
endpoint, and writes the result to ~/.kilobytetools/config.toml.`,
	Args: cobra.NoArgs,
	RunE: runBootstrap,
}

func init() {
	rootCmd.AddCommand(bootstrapCmd)

	bootstrapCmd.Flags().Bool("stdout", false, "write the config to stdout instead of the default path")
}

func runBootstrap(cmd *cobra.Command, args []string) error {
	toStdout, _ := cmd.Flags().GetBool("stdout")

	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	if !toStdout && config.Exists(path) {
		return fmt.Errorf("existing config file found at %s", path)
	}

	reader := bufio.NewReader(os.Stdin)
	handle, err := prompt.Line(reader, "Enter your handle: ", os.Stderr)
	if err != nil {
		return err
	}
	password, err := prompt.Password("Enter your password: ", os.Stderr)
	if err != nil {
		return err
	}

	res, err := client.New().Bootstrap(context.Background(), handle, password)
	if err != nil {
		return err
	}

	starter := config.Starter(res.APIKey, res.Endpoint)
	if toStdout {
		fmt.Print(starter)
		return nil
	}
	if err := config.Write(path, []byte(starter)); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	return nil
}
