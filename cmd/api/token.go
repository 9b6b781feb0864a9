package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/dental-clinic/internal/config"
	"github.com/BruksfildServices01/dental-clinic/internal/middleware"
)

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a development JWT signed with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			subject, _ := cmd.Flags().GetString("sub")
			email, _ := cmd.Flags().GetString("email")
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			token, err := middleware.GenerateToken(cfg.JWTSecret, cfg.JWTIssuer, subject, email, role, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().String("sub", "dev-user", "Subject (user id)")
	cmd.Flags().String("email", "dev@clinic.local", "Email claim")
	cmd.Flags().String("role", "admin", "Role claim")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token lifetime")

	return cmd
}
