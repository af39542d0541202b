// catalogctl: herramientas de operación del servicio de catálogo
// (migraciones, tokens, contraseñas, admin inicial).
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/mantenimiento/internal/config"
	"github.com/dropDatabas3/mantenimiento/internal/observability/logger"

	_ "github.com/dropDatabas3/mantenimiento/internal/store/adapters/memory"
	_ "github.com/dropDatabas3/mantenimiento/internal/store/adapters/pg"
)

// cli guarda el estado compartido entre subcomandos.
type cli struct {
	configPath string
	envFile    string
	out        string // "json" | "text"

	cfg *config.Config
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "CLI de operación para el servicio de catálogo",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.envFile != "" {
				_ = godotenv.Load(c.envFile)
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "catalogctl"})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", envOr("CONFIG_PATH", "configs/config.yaml"), "Ruta al config YAML (env CONFIG_PATH)")
	root.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Ruta a .env (opcional)")
	root.PersistentFlags().StringVar(&c.out, "out", "text", "Formato de salida: json|text")

	root.AddCommand(
		newMigrateCmd(c),
		newTokenCmd(c),
		newHashPasswordCmd(c),
		newSeedAdminCmd(c),
		newGenSeedCmd(c),
	)
	return root
}

// print escribe v como JSON indentado o, en modo text, el texto dado.
func (c *cli) print(w io.Writer, text string, v any) error {
	if c.out == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(w, text)
	return err
}

func envOr(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
