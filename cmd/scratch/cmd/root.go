package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kilobytetools/scratch/client"
	"github.com/kilobytetools/scratch/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "scratch",
	Short: "Easily transmit small bits of short-lived data",
	Long: `Easily transmit small bits of short-lived data.

Options can come from flags, SCRATCH_* environment variables, or the
config file at ~/.kilobytetools/config.toml; flags take precedence.
Run 'scratch bootstrap' once to create a config file for your account.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute runs the CLI. Errors are printed to stderr and exit non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.kilobytetools/config.toml)")
	rootCmd.PersistentFlags().String("api-key", "", "API key found in your account settings page")
	rootCmd.PersistentFlags().String("endpoint", "", "endpoint for dataplane operations, found in your account settings page")
	rootCmd.PersistentFlags().String("out-format", "", "response rendering, one of [text/plain, text/javascript, txt, js]")

	viper.BindPFlag(config.KeyAPIKey, rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag(config.KeyEndpoint, rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag(config.KeyFormat, rootCmd.PersistentFlags().Lookup("out-format"))
}

func initConfig() error {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}
	viper.SetConfigFile(path)
	viper.SetConfigType("toml")

	viper.SetEnvPrefix(config.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine; a broken one is not.
		var notFound viper.ConfigFileNotFoundError
		if errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("malformed config file at %s: %w", path, err)
	}
	return nil
}

// newClient builds a protocol client from the merged settings. anon skips
// the API key entirely; requireKey guards operations that cannot work
// without one.
func newClient(requireKey, anon bool) (*client.Client, error) {
	cfg := config.FromViper(viper.GetViper())
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("missing required option '--endpoint' or config setting '%s'", config.KeyEndpoint)
	}
	if requireKey && !anon && cfg.APIKey == "" {
		return nil, fmt.Errorf("missing required option '--api-key' or config setting '%s'", config.KeyAPIKey)
	}

	opts := []client.Option{client.WithEndpoint(cfg.Endpoint)}
	if !anon && cfg.APIKey != "" {
		opts = append(opts, client.WithAPIKey(cfg.APIKey))
	}
	if cfg.Format != "" {
		f, ok := client.ParseFormat(cfg.Format)
		if !ok {
			return nil, fmt.Errorf("response format was %s but must be one of text/plain, text/javascript", cfg.Format)
		}
		opts = append(opts, client.WithFormat(f))
	}
	return client.New(opts...), nil
}

// render prints a response body trimmed, skipping empty ones.
func render(resp string) {
	if s := strings.TrimSpace(resp); s != "" {
		fmt.Println(s)
	}
}
