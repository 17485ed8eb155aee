package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/dms-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/dms-backend/internal/adapter/postgres/audit"
	userrepo "github.com/heartmarshall/dms-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/dms-backend/internal/domain"
	usersvc "github.com/heartmarshall/dms-backend/internal/service/user"
)

var (
	username string
	email    string
	role     string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage identities",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Provision a new identity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			u, err := newUserService(e).Provision(ctx, usersvc.ProvisionInput{
				Username: username,
				Email:    email,
				Role:     role,
			})
			if err != nil {
				return err
			}
			printUser(cmd, "created", u)
			return nil
		})
	},
}

var userPromoteCmd = &cobra.Command{
	Use:   "promote",
	Short: "Grant the ADMIN role to an identity",
	Long:  "Grant the ADMIN role to an identity. Used to bootstrap the first administrator.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withEnv(cmd, func(ctx context.Context, e *env) error {
			u, err := newUserService(e).Promote(ctx, username)
			if err != nil {
				return err
			}
			printUser(cmd, "promoted", u)
			return nil
		})
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&username, "username", "", "unique username (required)")
	userCreateCmd.Flags().StringVar(&email, "email", "", "contact email")
	userCreateCmd.Flags().StringVar(&role, "role", string(domain.UserRoleUser), "USER or ADMIN")
	_ = userCreateCmd.MarkFlagRequired("username")

	userPromoteCmd.Flags().StringVar(&username, "username", "", "username to promote (required)")
	_ = userPromoteCmd.MarkFlagRequired("username")

	userCmd.AddCommand(userCreateCmd)
	userCmd.AddCommand(userPromoteCmd)
}

func newUserService(e *env) *usersvc.Service {
	return usersvc.NewService(e.logger, userrepo.New(e.pool), auditrepo.New(e.pool), postgres.NewTxManager(e.pool))
}

func printUser(cmd *cobra.Command, verb string, u *domain.User) {
	fmt.Fprintf(cmd.OutOrStdout(), "User %q %s (id=%s, role=%s)\n", u.Username, verb, u.ID, u.Role)
}
