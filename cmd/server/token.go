package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	httpadapter "policydesk/internal/adapters/http"
	"policydesk/internal/domain"
)

var tokenFlags struct {
	sub   string
	email string
	role  string
	ttl   time.Duration
}

// tokenCmd mints bearer tokens for local use; production tokens come from the
// identity provider sharing the secret.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Sign a bearer token for a development actor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, log, err := setup(cmd)
		if err != nil {
			return err
		}
		if err := cfg.RequireSecret(); err != nil {
			return err
		}
		role := domain.Role(tokenFlags.role)
		if !role.Valid() {
			return fmt.Errorf("unknown role %q", tokenFlags.role)
		}
		token, err := httpadapter.NewAuthenticator(cfg.Auth.JWTSecret, log).Issue(
			domain.Actor{ID: tokenFlags.sub, Email: tokenFlags.email, Role: role}, tokenFlags.ttl)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	f := tokenCmd.Flags()
	f.StringVar(&tokenFlags.sub, "sub", "", "actor id")
	f.StringVar(&tokenFlags.email, "email", "", "actor email")
	f.StringVar(&tokenFlags.role, "role", string(domain.RoleCustomer), "customer, agent or admin")
	f.DurationVar(&tokenFlags.ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = tokenCmd.MarkFlagRequired("sub")
}
