package main

import (
	"fmt"
	"time"

	"lounge-billing/internal/domain/staff"
	"lounge-billing/internal/pkg/config"
	"lounge-billing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
)

type tokenOptions struct {
	tenant string
	staff  string
	role   string
	ttl    time.Duration
}

func newTokenCmd() *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a development access token",
		Long:  `Sign a staff token with JWT_SECRET. Intended for local development; production tokens come from the identity provider.`,
		Example: `  JWT_SECRET=dev billctl token --tenant 6f1c... --role admin`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runToken(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.tenant, "tenant", "", "tenant (lounge) UUID")
	f.StringVar(&opts.staff, "staff", "", "staff UUID (random when empty)")
	f.StringVar(&opts.role, "role", string(staff.RoleStaff), "staff | manager | admin")
	f.DurationVar(&opts.ttl, "ttl", 12*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("tenant")

	return cmd
}

func runToken(cmd *cobra.Command, opts *tokenOptions) error {
	var jwtCfg config.JWTConfig
	if err := envconfig.Process("", &jwtCfg); err != nil {
		return fmt.Errorf("failed to process env config: %w", err)
	}

	tenantID, err := uuid.Parse(opts.tenant)
	if err != nil || tenantID == uuid.Nil {
		return fmt.Errorf("invalid --tenant %q", opts.tenant)
	}
	staffID := uuid.New()
	if opts.staff != "" {
		if staffID, err = uuid.Parse(opts.staff); err != nil {
			return fmt.Errorf("invalid --staff %q", opts.staff)
		}
	}
	role, err := staff.NewRole(opts.role)
	if err != nil {
		return fmt.Errorf("invalid --role %q: %w", opts.role, err)
	}

	svc := jwt.NewService(jwtCfg.Secret, opts.ttl, jwtCfg.Issuer)
	token, err := svc.GenerateToken(tenantID, staffID, role.String())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
	return err
}
