// Command loader ingests a local .csv or .xlsx file for any entity type
// directly against the database, bypassing the HTTP layer. Useful for the
// office's historical spreadsheets, which are too large for the upload
// endpoint and often arrive as Excel workbooks.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/config"
	"upc-extension/vinculacion/internal/db"
	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/logging"
	"upc-extension/vinculacion/internal/services"
)

var configPath string

type ingestFunc func(context.Context, string, []byte) (*ingest.Resumen, error)

func ingestores(orm *gorm.DB) map[string]ingestFunc {
	return map[string]ingestFunc{
		"empresas":                   services.NewEmpresaService(orm).Ingerir,
		"egresados":                  services.NewEgresadoService(orm).Ingerir,
		"convenios":                  services.NewConvenioService(orm).Ingerir,
		"eventos":                    services.NewEventoService(orm).Ingerir,
		"proyectos":                  services.NewProyectoService(orm).Ingerir,
		"impacto_social":             services.NewImpactoSocialService(orm).Ingerir,
		"publicaciones":              services.NewPublicacionService(orm).Ingerir,
		"relaciones_internacionales": services.NewRelacionService(orm).Ingerir,
		"salidas_practicas":          services.NewSalidaService(orm).Ingerir,
		"estadisticas":               services.NewEstadisticaService(orm).Ingerir,
	}
}

func entidades(m map[string]ingestFunc) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func runIngest(cmd *cobra.Command, args []string) error {
	entidad, archivo := args[0], args[1]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.AppEnv); err != nil {
		return err
	}
	defer func() { _ = logging.Close() }()

	orm, err := db.InitPostgresORM(cfg.DSN())
	if err != nil {
		return fmt.Errorf("no se pudo conectar a la base de datos: %w", err)
	}
	if err := db.Migrate(orm); err != nil {
		return err
	}

	registry := ingestores(orm)
	ingerir, ok := registry[entidad]
	if !ok {
		return fmt.Errorf("entidad desconocida %q, opciones: %v", entidad, entidades(registry))
	}

	payload, err := os.ReadFile(archivo)
	if err != nil {
		return err
	}

	resumen, err := ingerir(cmd.Context(), archivo, payload)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(resumen, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "loader",
		Short: "Carga masiva de registros de vinculación desde archivos locales",
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "directorio del archivo config.yaml")

	ingestCmd := &cobra.Command{
		Use:   "ingest <entidad> <archivo.csv|archivo.xlsx>",
		Short: "Procesa un archivo local con el mismo pipeline del endpoint de subida",
		Args:  cobra.ExactArgs(2),
		RunE:  runIngest,
	}
	rootCmd.AddCommand(ingestCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
