package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aussiebroadwan/invyte/internal/invyte/app"
	"github.com/aussiebroadwan/invyte/internal/invyte/service"
	"github.com/aussiebroadwan/invyte/pkg/jwtx"
	"github.com/spf13/cobra"
)

var (
	tokenPhone string
	tokenName  string
	tokenTTL   time.Duration
)

// tokenCmd stands in for the OTP login flow during development and tests.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Find or create a user by phone number and print a bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenPhone == "" {
			return errors.New("--phone is required")
		}

		cfg := app.LoadConfig()
		if cfg.JWTSecret == "" {
			return errors.New("INVYTE_JWT_SECRET must be set to mint tokens the server accepts")
		}
		logger := app.NewLogger(cfg, cmd.ErrOrStderr())

		tokens, err := app.NewTokens(cfg, logger)
		if err != nil {
			return err
		}

		db, err := app.OpenStore(cfg, logger)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := context.Background()
		users := &service.UserService{Store: db}

		u, err := users.FindOrCreateByPhone(ctx, tokenPhone)
		if err != nil {
			return err
		}
		if tokenName != "" {
			if u, err = users.UpdateName(ctx, u.ID, tokenName); err != nil {
				return err
			}
		}

		ttl := cfg.TokenTTL
		if cmd.Flags().Changed("ttl") {
			ttl = tokenTTL
		}

		var name string
		if u.Name != nil {
			name = *u.Name
		}
		signed, err := tokens.Sign(jwtx.NewIdentityClaims(u.ID, u.PhoneNumber, name, ttl, cfg.JWTIssuer, time.Now()))
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), signed)
		return nil
	},
}

func init() {
	tokenCmd.Flags().StringVar(&tokenPhone, "phone", "", "phone number identifying the user")
	tokenCmd.Flags().StringVar(&tokenName, "name", "", "display name to set on the user")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "token lifetime (overrides INVYTE_TOKEN_TTL)")
}
