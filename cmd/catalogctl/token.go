package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/mantenimiento/internal/app"
	"github.com/dropDatabas3/mantenimiento/internal/domain/model"
)

func newTokenCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Emitir y verificar access tokens con las claves configuradas",
	}

	var sub, role string
	issueCmd := &cobra.Command{
		Use:   "issue",
		Short: "Emite un access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(sub) == "" {
				return errors.New("--sub es requerido")
			}
			iss, err := app.BuildIssuer(c.cfg)
			if err != nil {
				return err
			}
			tok, exp, err := iss.IssueAccess(sub, role)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), tok, map[string]any{
				"token":      tok,
				"expires_at": exp.Format(time.RFC3339),
			})
		},
	}
	issueCmd.Flags().StringVar(&sub, "sub", "", "Subject (username)")
	issueCmd.Flags().StringVar(&role, "role", model.DefaultUserRole, "Rol (ROLE_<NOMBRE>)")

	verifyCmd := &cobra.Command{
		Use:   "verify <token>",
		Short: "Verifica un access token y muestra sus claims",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iss, err := app.BuildIssuer(c.cfg)
			if err != nil {
				return err
			}
			claims, err := iss.Verify(args[0])
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(),
				fmt.Sprintf("sub=%s role=%s exp=%s", claims.Subject, claims.Role, claims.ExpiresAt.Format(time.RFC3339)),
				map[string]any{
					"sub":  claims.Subject,
					"role": claims.Role,
					"iat":  claims.IssuedAt.Format(time.RFC3339),
					"exp":  claims.ExpiresAt.Format(time.RFC3339),
				})
		},
	}

	cmd.AddCommand(issueCmd, verifyCmd)
	return cmd
}
