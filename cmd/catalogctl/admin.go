package main

import (
	"bufio"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/mantenimiento/internal/app"
	"github.com/dropDatabas3/mantenimiento/internal/bootstrap"
	"github.com/dropDatabas3/mantenimiento/internal/http/services/auth"
	"github.com/dropDatabas3/mantenimiento/internal/security/password"
)

func newHashPasswordCmd(c *cli) *cobra.Command {
	var alg string
	cmd := &cobra.Command{
		Use:   "hash-password [plain]",
		Short: "Genera el digest de una contraseña (lee stdin si no se pasa)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plain := ""
			if len(args) == 1 {
				plain = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read stdin: %w", err)
				}
				plain = strings.TrimRight(line, "\r\n")
			}
			if plain == "" {
				return errors.New("contraseña vacía")
			}
			if alg == "" {
				alg = c.cfg.Security.Hasher
			}
			h, err := password.New(alg, c.cfg.Security.BcryptCost)
			if err != nil {
				return err
			}
			digest, err := h.Hash(plain)
			if err != nil {
				return err
			}
			return c.print(cmd.OutOrStdout(), digest, map[string]string{"digest": digest})
		},
	}
	cmd.Flags().StringVar(&alg, "alg", "", "bcrypt|argon2id; vacío = security.hasher")
	return cmd
}

func newSeedAdminCmd(c *cli) *cobra.Command {
	var username, pass string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Crea el usuario admin (ROLE_ADMIN) si no existe",
		RunE: func(cmd *cobra.Command, args []string) error {
			if username == "" {
				username = c.cfg.Bootstrap.AdminUsername
			}
			if pass == "" {
				pass = c.cfg.Bootstrap.AdminPassword
			}
			if pass == "" {
				return errors.New("--password es requerido (o bootstrap.admin_password)")
			}

			ctx := cmd.Context()
			conn, err := app.OpenStore(ctx, c.cfg)
			if err != nil {
				return err
			}
			defer conn.Close()

			hasher, err := app.BuildHasher(c.cfg)
			if err != nil {
				return err
			}
			created, err := bootstrap.EnsureAdmin(ctx, bootstrap.AdminBootstrapConfig{
				Users:    conn.Users(),
				Register: auth.NewRegisterService(conn.Users(), hasher, nil),
				Username: username,
				Password: pass,
			})
			if err != nil {
				return err
			}
			text := "admin already exists"
			if created {
				text = "admin created"
			}
			return c.print(cmd.OutOrStdout(), text, map[string]any{"username": username, "created": created})
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "Username; vacío = bootstrap.admin_username")
	cmd.Flags().StringVar(&pass, "password", "", "Contraseña; vacío = bootstrap.admin_password")
	return cmd
}

// gen-ed25519-seed imprime una seed nueva para jwt.ed25519_seed.
func newGenSeedCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "gen-ed25519-seed",
		Short: "Genera una seed Ed25519 (base64) para JWT_ED25519_SEED",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed := make([]byte, ed25519.SeedSize)
			if _, err := rand.Read(seed); err != nil {
				return err
			}
			s := base64.StdEncoding.EncodeToString(seed)
			return c.print(cmd.OutOrStdout(), s, map[string]string{"seed": s})
		},
	}
}
