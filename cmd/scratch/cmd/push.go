package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kilobytetools/scratch/client"
	"github.com/kilobytetools/scratch/internal/config"
	"github.com/kilobytetools/scratch/internal/input"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the contents of a file",
	Long: `Upload a file. The key of the created file is printed as soon as it is
reserved, before the upload itself. When pushing from stdin, buffers the
entire input into memory.

EXAMPLES:
    scratch push --lifetime 2h < ~/.ssh/id_rsa.pub
    scratch push --burn --prefix creds.aws: --file ~/.aws/config`,
	Args: cobra.NoArgs,
	RunE: runPush,
}

func init() {
	rootCmd.AddCommand(pushCmd)

	pushCmd.Flags().Bool("stdin", false, "push data from stdin (default)")
	pushCmd.Flags().String("file", "", "push the named file")
	pushCmd.Flags().String("lifetime", "", `how long the file should live, e.g. 10m (format: \d+(h|m|s))`)
	pushCmd.Flags().Bool("private", false, "require credentials to read the file")
	pushCmd.Flags().Bool("no-private", false, "allow anonymous reads")
	pushCmd.Flags().String("pw", "", "password required to read the file")
	pushCmd.Flags().Bool("burn", false, "delete the file the first time it is read")
	pushCmd.Flags().Bool("no-burn", false, "keep the file after reads")
	pushCmd.Flags().String("prefix", "", "prefix for the random file key, useful for segmenting temporary files by use")
	pushCmd.Flags().Bool("url", false, "print the created id as a full URL")
}

func runPush(cmd *cobra.Command, args []string) error {
	cfg := config.FromViper(viper.GetViper())

	c, err := newClient(true, false)
	if err != nil {
		return err
	}

	opts := client.PushOptions{
		Private: boolOption(cmd, "private", "no-private", cfg.Push.Private),
		Burn:    boolOption(cmd, "burn", "no-burn", cfg.Push.Burn),
	}
	opts.Password, _ = cmd.Flags().GetString("pw")

	if lifetime := stringOption(cmd, "lifetime", cfg.Push.Lifetime); lifetime != "" {
		if opts.Lifetime, err = input.Lifetime(lifetime); err != nil {
			return err
		}
	}
	if prefix := stringOption(cmd, "prefix", cfg.Push.Prefix); prefix != "" {
		if opts.Prefix, err = input.Prefix(prefix); err != nil {
			return err
		}
	}

	payload, closer, err := pushPayload(cmd)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	renderPrefix := ""
	if asURL, _ := cmd.Flags().GetBool("url"); asURL {
		renderPrefix = strings.TrimSuffix(cfg.Endpoint, "/") + "/scratch/file/"
	}
	report := func(body string) {
		fmt.Println(renderPrefix + strings.TrimSpace(body))
	}

	resp, err := c.Push(context.Background(), payload, opts, report)
	if err != nil {
		return err
	}
	render(resp)
	return nil
}

func pushPayload(cmd *cobra.Command) (client.Payload, io.Closer, error) {
	name, _ := cmd.Flags().GetString("file")
	fromStdin, _ := cmd.Flags().GetBool("stdin")
	if name != "" && !fromStdin {
		return input.FromFile(name)
	}
	p, err := input.FromReader(os.Stdin)
	return p, nil, err
}

// boolOption resolves a tri-state push modifier: an explicit yes/no flag
// wins, otherwise the config file default applies, otherwise unset.
func boolOption(cmd *cobra.Command, yes, no string, fallback *bool) *bool {
	if cmd.Flags().Changed(yes) {
		v := true
		return &v
	}
	if cmd.Flags().Changed(no) {
		v := false
		return &v
	}
	return fallback
}

func stringOption(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}
