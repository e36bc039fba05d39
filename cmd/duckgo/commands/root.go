// Package commands implements the CLI commands for duckgo.
package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmylchreest/duckgo/internal/logger"
	"github.com/jmylchreest/duckgo/internal/output"
	"github.com/jmylchreest/duckgo/pkg/duckgo"
)

var rootCmd = &cobra.Command{
	Use:   "duckgo",
	Short: "Search DuckDuckGo and talk to its AI chat from the command line",
	Long: `duckgo queries DuckDuckGo's web endpoints for text, image, video
and news results, and holds multi-turn conversations with duckchat.

Examples:
  # Text search, first page
  duckgo text "golang generics"

  # Collect up to 50 image results as JSONL
  duckgo images "rubber duck" -n 50 --format jsonl

  # News from the last week through a proxy
  duckgo news "space launch" --timelimit w --proxy socks5://127.0.0.1:9050

  # One chat turn, streamed to stdout
  duckgo chat "explain goroutines in one paragraph" -m claude-3-haiku`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{
			Debug: viper.GetBool("debug"),
			Quiet: viper.GetBool("quiet"),
		})
	},
}

var cfgFile string

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default $HOME/.duckgo.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress progress output")
	rootCmd.PersistentFlags().String("proxy", "", "proxy URL (http://, https://, socks5://, or 'tb')")
	rootCmd.PersistentFlags().Duration("timeout", 10*time.Second, "per-request timeout")
	rootCmd.PersistentFlags().Bool("verify", true, "verify TLS certificates")

	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("proxy", rootCmd.PersistentFlags().Lookup("proxy"))
	_ = viper.BindPFlag("timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("verify", rootCmd.PersistentFlags().Lookup("verify"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".duckgo")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("DUCKGO")
	viper.AutomaticEnv()

	// Read config file (ignore error if not found)
	_ = viper.ReadInConfig()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newClient builds a duckgo client from the resolved configuration.
func newClient() (*duckgo.Client, error) {
	return duckgo.New(
		duckgo.WithProxy(viper.GetString("proxy")),
		duckgo.WithTimeout(viper.GetDuration("timeout")),
		duckgo.WithVerify(viper.GetBool("verify")),
	)
}

// writeResults emits a result batch in the requested format.
func writeResults(cmd *cobra.Command, items []any) error {
	format, _ := cmd.Flags().GetString("format")
	pretty, _ := cmd.Flags().GetBool("pretty")

	w, err := output.NewWriter(os.Stdout, output.Format(format), pretty)
	if err != nil {
		return err
	}
	if err := w.WriteAll(items); err != nil {
		return err
	}
	return w.Flush()
}

// addOutputFlags registers the shared output flags on a search command.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().String("format", "json", "output format: json, jsonl, yaml")
	cmd.Flags().Bool("pretty", true, "pretty-print json output")
}

// logError prints an error message to stderr.
func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}
