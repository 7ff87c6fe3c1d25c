package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HotelQuoteService/pkg/jwt"
)

func newTokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token <login>",
		Short: "Issue an admin API token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ttl := time.Duration(cfg.Admin.TokenTTLMin) * time.Minute
			if override, _ := cmd.Flags().GetDuration("ttl"); override > 0 {
				ttl = override
			}

			token, err := jwt.New(cfg.Admin.JWTSecret, ttl, cfg.Admin.Issuer).GenerateToken(args[0], jwt.RoleAdmin)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().Duration("ttl", 0, "Token lifetime (defaults to admin.token_ttl_minutes)")

	return cmd
}
