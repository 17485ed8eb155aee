package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dms-backend/internal/auth"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Access tokens for development and testing",
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue",
	Short: "Mint an access token for an existing identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			u, err := newUserService(e).Lookup(ctx, username)
			if err != nil {
				return err
			}

			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(u.ID, u.Role.String())
			if err != nil {
				return fmt.Errorf("sign token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		})
	},
}

func init() {
	tokenIssueCmd.Flags().StringVar(&username, "username", "", "token subject (required)")
	_ = tokenIssueCmd.MarkFlagRequired("username")

	tokenCmd.AddCommand(tokenIssueCmd)
}
