package main

import (
	"chargemap/internal/account"
	"chargemap/internal/config"
	"chargemap/pkg/domain"
	"chargemap/pkg/logger"
	"chargemap/pkg/password"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// userCommand constructs the 'user' subcommand group for account administration.
func userCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manages user accounts",
	}

	create := &cobra.Command{
		Use:   "create",
		Short: "Registers a new user",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			username, _ := cmd.Flags().GetString("username")
			email, _ := cmd.Flags().GetString("email")
			plain, _ := cmd.Flags().GetString("password")
			phone, _ := cmd.Flags().GetString("phone")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			// registering never issues tokens
			svc := account.New(strg, password.NewBcrypt(cfg.Password.BcryptCost), nil)

			id, err := svc.Register(ctx, domain.UserParams{
				Username:    username,
				Email:       email,
				Password:    plain,
				PhoneNumber: phone,
			})
			if err != nil {
				logger.Fatal(ctx, "could not register user", zap.Error(err))
			}

			logger.Info(ctx, "user registered", zap.Int64("user_id", int64(id)), zap.String("username", username))
		},
	}
	create.Flags().String("username", "", "Username")
	create.Flags().String("email", "", "Email address")
	create.Flags().String("password", "", "Password")
	create.Flags().String("phone", "", "Phone number in international format, optional")
	_ = create.MarkFlagRequired("username")
	_ = create.MarkFlagRequired("email")
	_ = create.MarkFlagRequired("password")

	cmd.AddCommand(create)

	return cmd
}
