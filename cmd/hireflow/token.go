package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/hireflow/internal/config"
	"github.com/jonathan/hireflow/internal/server"
	"github.com/jonathan/hireflow/internal/types"
)

var (
	tokenUserID string
	tokenRole   string
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for local testing",
	Long:  `Sign a JWT for the given user and role with JWT_SECRET. The user does not need to exist.`,
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenUserID, "user-id", "", "User ID to place in the token (required)")
	tokenCmd.Flags().StringVar(&tokenRole, "role", string(types.RoleHRManager), "Role: admin, hr_manager, employer or job_seeker")
	_ = tokenCmd.MarkFlagRequired("user-id")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	role := types.UserRole(tokenRole)
	if !role.Valid() {
		return fmt.Errorf("unknown role %q", tokenRole)
	}

	jwtCfg, err := config.NewJWTConfig()
	if err != nil {
		return fmt.Errorf("failed to load JWT config: %w", err)
	}

	token, err := server.NewJWTService(jwtCfg).GenerateToken(tokenUserID, role)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
