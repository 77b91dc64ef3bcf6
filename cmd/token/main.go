package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vanshika/finsight/backend/internal/config"
	"github.com/vanshika/finsight/backend/internal/session"
)

func main() {
	if err := newRootCommand(config.Load).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(load func() (config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue a bearer token for a user, signed with AUTH_JWT_SECRET",
		Args:  cobra.ExactArgs(1),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			auth := session.NewAuthenticator(cfg.Auth.JWTSecret, cfg.Auth.DemoUserID, cfg.Auth.TokenTTL)
			if auth.DemoMode() {
				return errors.New("AUTH_JWT_SECRET is not set, the server runs in demo mode and needs no token")
			}
			token, err := auth.IssueToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
}
