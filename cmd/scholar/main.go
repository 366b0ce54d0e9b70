// Package main provides the scholar CLI entry point.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	semanticscholar "github.com/helixir/semanticscholar-go"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scholar",
	Short: "Query the Semantic Scholar Graph API",
	Long: `scholar is a CLI for the Semantic Scholar Graph API.

It searches papers and authors, fetches paper details, citations, and
references, and resolves papers from titles. All commands output JSON.

The API key is read from the --api-key flag, the SEMANTIC_SCHOLAR_API_KEY
environment variable, or a .env file in the working directory. Requests
without a key are allowed under the service's anonymous rate limits.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().String("api-key", "", "Semantic Scholar API key")
	rootCmd.PersistentFlags().String("base-url", semanticscholar.DefaultBaseURL, "API base URL")
	rootCmd.PersistentFlags().Int("retries", semanticscholar.DefaultMaxRetries, "Attempt budget per request")
	rootCmd.PersistentFlags().Duration("wait", semanticscholar.DefaultRetryWait, "Delay between attempts")
	rootCmd.PersistentFlags().Bool("verbose", false, "Log retry activity to stderr")

	viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("retries", rootCmd.PersistentFlags().Lookup("retries"))
	viper.BindPFlag("wait", rootCmd.PersistentFlags().Lookup("wait"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindEnv("api_key", semanticscholar.EnvAPIKey)
}

// newAPIClient builds a client from flags, environment, and an optional
// .env file. Flags win over the environment, which wins over .env.
func newAPIClient() (*semanticscholar.Client, error) {
	godotenv.Load()

	logger := zerolog.Nop()
	if viper.GetBool("verbose") {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}

	return semanticscholar.NewClient(semanticscholar.Config{
		APIKey:     viper.GetString("api_key"),
		BaseURL:    viper.GetString("base_url"),
		MaxRetries: viper.GetInt("retries"),
		RetryWait:  viper.GetDuration("wait"),
		Logger:     logger,
	})
}
