package main

import (
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/dropDatabas3/mantenimiento/internal/app"
	"github.com/dropDatabas3/mantenimiento/internal/store"
	pgmigrations "github.com/dropDatabas3/mantenimiento/migrations/postgres"
)

func newMigrateCmd(c *cli) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migraciones del esquema SQL (storage.driver=postgres)",
	}
	cmd.PersistentFlags().StringVar(&dir, "dir", "", "Directorio de migraciones; vacío = las embebidas en el binario")

	// run abre el store, verifica que soporte migraciones y ejecuta fn.
	run := func(cmd *cobra.Command, fn func(m *store.Migrator, exec store.SQLExecutor) error) error {
		ctx := cmd.Context()
		conn, err := app.OpenStore(ctx, c.cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		mc, ok := conn.(store.MigratableConnection)
		if !ok {
			return fmt.Errorf("migrate: driver %q does not support migrations", conn.Name())
		}
		return fn(migrator(dir), mc.MigrationExecutor())
	}

	upCmd := &cobra.Command{
		Use:   "up",
		Short: "Aplica las migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(m *store.Migrator, exec store.SQLExecutor) error {
				res, err := m.Up(cmd.Context(), exec)
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(),
					fmt.Sprintf("applied=%v skipped=%v (%s)", res.Applied, res.Skipped, res.Duration), res)
			})
		},
	}

	var steps int
	downCmd := &cobra.Command{
		Use:   "down",
		Short: "Revierte las últimas N migraciones",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(m *store.Migrator, exec store.SQLExecutor) error {
				res, err := m.Down(cmd.Context(), exec, steps)
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(),
					fmt.Sprintf("reverted=%v (%s)", res.Applied, res.Duration), res)
			})
		},
	}
	downCmd.Flags().IntVar(&steps, "steps", 1, "Cantidad de migraciones a revertir")

	statusCmd := &cobra.Command{
		Use:   "status",
		Short: "Indica si hay migraciones pendientes",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, func(m *store.Migrator, exec store.SQLExecutor) error {
				pending, err := m.HasPending(cmd.Context(), exec)
				if err != nil {
					return err
				}
				return c.print(cmd.OutOrStdout(), fmt.Sprintf("pending=%t", pending), map[string]bool{"pending": pending})
			})
		},
	}

	cmd.AddCommand(upCmd, downCmd, statusCmd)
	return cmd
}

func migrator(dir string) *store.Migrator {
	var fsys fs.FS = pgmigrations.FS
	d := pgmigrations.Dir
	if dir != "" {
		fsys, d = os.DirFS(dir), "."
	}
	return store.NewMigrator(fsys, d)
}
