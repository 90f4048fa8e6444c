package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"property-management/internal/auth"
)

func newTokenCommand(load configLoader) *cobra.Command {
	var (
		subject string
		role    string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the write endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if cfg.Auth.JWTSecret == "" {
				return errors.New("jwt secret is required (JWT_SECRET)")
			}
			auth.SetSecret(cfg.Auth.JWTSecret)

			token, err := auth.GenerateToken(subject, role, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "Token subject.")
	cmd.Flags().StringVar(&role, "role", "", "Role claim, admin grants the operational endpoints.")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime.")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
