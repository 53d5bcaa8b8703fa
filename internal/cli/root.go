// Package cli implements the learnctl command tree. Every command talks
// to the Learn Together backend through the SDK client; what a command
// may do is gated on the caller's role and approval state.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	codegurus "github.com/lalitgarg2005/CodeGurus"
	"github.com/lalitgarg2005/CodeGurus/clerk"
	"github.com/lalitgarg2005/CodeGurus/signup"
)

var (
	cfg       *viper.Viper
	outFormat string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "learnctl",
	Short: "Learn Together platform CLI",
	Long: `learnctl is the command line client for the Learn Together
learning-coordination platform.

Sign up for a role, then manage what the role allows:

  learnctl signup parent --email you@example.com
  learnctl me
  learnctl skills list
  learnctl sessions create --skill 2 --title "Intro to Chess" --at 2025-04-12T15:00:00Z
  learnctl enroll --student 5 --session 9
  learnctl admin pending`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-url", "", "Learn Together API base URL")
	rootCmd.PersistentFlags().String("token", "", "bearer token (skips Clerk token acquisition)")
	rootCmd.PersistentFlags().StringVarP(&outFormat, "output", "o", "table", "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

func initConfig() {
	// .env is optional; real deployments use environment variables.
	_ = godotenv.Load(".env")

	cfg = viper.New()
	cfg.SetEnvPrefix("LEARN")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault("api_url", codegurus.DefaultBaseURL)

	_ = cfg.BindPFlag("api_url", rootCmd.PersistentFlags().Lookup("api-url"))
	_ = cfg.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))
}

// newLogger builds the CLI logger: quiet by default, human-readable
// debug output with -v.
func newLogger() *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// getClient returns an unauthenticated API client.
func getClient() *codegurus.Client {
	return codegurus.NewClient(codegurus.WithBaseURL(cfg.GetString("api_url")))
}

// getAuthedClient returns a client carrying a bearer token: the --token
// flag (or LEARN_TOKEN) when given, otherwise a token minted through
// Clerk using the signup package's acquisition policy.
func getAuthedClient(ctx context.Context) (*codegurus.Client, error) {
	client := getClient()

	if token := cfg.GetString("token"); token != "" {
		return client.WithBearerToken(token), nil
	}

	provider, err := clerkProvider()
	if err != nil {
		return nil, err
	}
	token, err := provider.AcquireToken(ctx)
	if err != nil {
		return nil, err
	}
	if token == "" {
		return nil, errors.New("no token available; pass --token or set LEARN_CLERK_SECRET_KEY and LEARN_CLERK_SESSION_ID")
	}
	return client.WithBearerToken(token), nil
}

func clerkProvider() (signup.TokenProvider, error) {
	secretKey := cfg.GetString("clerk_secret_key")
	if secretKey == "" {
		return nil, errors.New("not signed in; pass --token or set LEARN_CLERK_SECRET_KEY")
	}
	return clerk.New(clerk.Config{
		SecretKey: secretKey,
		SessionID: cfg.GetString("clerk_session_id"),
	})
}

// currentUser fetches the caller's user record with an authenticated
// client. Commands use it for role gating before issuing writes.
func currentUser(ctx context.Context) (*codegurus.User, *codegurus.Client, error) {
	client, err := getAuthedClient(ctx)
	if err != nil {
		return nil, nil, err
	}
	user, err := client.Users.Me(ctx)
	if err != nil {
		if codegurus.IsNotFound(err) {
			return nil, nil, errors.New("no account yet; run `learnctl signup` first")
		}
		return nil, nil, err
	}
	return user, client, nil
}
