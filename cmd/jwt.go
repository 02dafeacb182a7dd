package main

import (
	"chargemap/internal/config"
	"chargemap/pkg/logger"
	"chargemap/pkg/token"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand group. 'jwt sign' issues an RS256
// token for a username with the configured private key and 'jwt keys'
// generates a fresh PEM encoded key pair for the configuration.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Manages JWT keys and tokens",
	}

	sign := &cobra.Command{
		Use:   "sign",
		Short: "Generates JWT token for given username",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := cmd.Context()
			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")
			if ttl == 0 {
				ttl = cfg.JWT.TTL
			}

			issuer, err := token.NewIssuerFromPEM(cfg.JWT.PrivateKey, ttl)
			if err != nil {
				logger.Fatal(ctx, "could not parse RSA private key", zap.Error(err))
			}

			signed, err := issuer.Issue(subject)
			if err != nil {
				logger.Fatal(ctx, "could not sign JWT", zap.Error(err))
			}

			fmt.Fprintln(cmd.OutOrStdout(), signed)
		},
	}
	sign.Flags().String("subject", "", "JWT subject (username)")
	sign.Flags().Duration("ttl", 0, "Token TTL (e.g., 30s, 15m, 1h), defaults to the configured TTL")
	_ = sign.MarkFlagRequired("subject")

	keys := &cobra.Command{
		Use:   "keys",
		Short: "Generates an RSA key pair for signing tokens",
		Run: func(cmd *cobra.Command, args []string) {
			bits, _ := cmd.Flags().GetInt("bits")

			privatePEM, publicPEM, err := token.GenerateKeyPair(bits)
			if err != nil {
				logger.Fatal(cmd.Context(), "could not generate RSA key pair", zap.Error(err))
			}

			fmt.Fprint(cmd.OutOrStdout(), privatePEM, publicPEM)
		},
	}
	keys.Flags().Int("bits", ephemeralKeyBits, "RSA key size in bits")

	cmd.AddCommand(sign, keys)

	return cmd
}
