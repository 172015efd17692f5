package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"karla-connector/config"
	"karla-connector/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	var configPath string
	rootCmd := &cobra.Command{
		Use:           "hooktoken",
		Short:         "Operator tooling for the Karla connector",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the config file")
	rootCmd.AddCommand(issueCmd(&configPath))
	rootCmd.AddCommand(verifyCmd(&configPath))
	rootCmd.AddCommand(signCmd(&configPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadTokens(configPath string) (*service.JWTTokenService, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cfg.Hooks.Secret == "" {
		return nil, fmt.Errorf("hooks.secret is not configured")
	}
	return service.NewJWTTokenService(cfg.Hooks.Secret, cfg.Hooks.Expiry, cfg.Hooks.Issuer), nil
}

func issueCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "issue <subject>",
		Short: "Mint a bearer token for the shop hooks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := loadTokens(*configPath)
			if err != nil {
				return err
			}

			token, expiresAt, err := tokens.Generate(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token:   %s\n", token)
			fmt.Fprintf(cmd.OutOrStdout(), "Expires: %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}
}

func verifyCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <token>",
		Short: "Check a bearer token against the configured secret",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := loadTokens(*configPath)
			if err != nil {
				return err
			}

			claims, err := tokens.Validate(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Subject: %s\n", claims.Subject)
			fmt.Fprintf(cmd.OutOrStdout(), "Expires: %s (in %s)\n",
				claims.ExpiresAt.Format(time.RFC3339), time.Until(claims.ExpiresAt).Round(time.Second))
			return nil
		},
	}
}

// signCmd prints a Karla-Signature header for a payload read from stdin, for
// replaying webhooks against a local receiver.
func signCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "sign",
		Short: "Sign a webhook payload from stdin with the webhook secret",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}
			if cfg.Webhook.Secret == "" {
				return fmt.Errorf("webhook.secret is not configured")
			}

			payload, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("reading payload: %w", err)
			}

			header := service.NewHMACSignatureService().BuildHeader(cfg.Webhook.Secret, time.Now().Unix(), payload)
			fmt.Fprintln(cmd.OutOrStdout(), header)
			return nil
		},
	}
}
