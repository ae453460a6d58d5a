package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/patrones/internal/app"
	"github.com/dropDatabas3/patrones/internal/config"
)

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	// .env es best-effort: en dev pisa el entorno, en prod no suele existir.
	_ = godotenv.Load()

	var (
		cfgPath     = envOr("PATRONES_CONFIG", "")
		level       string
		logFile     string
		metricsAddr string
		parallel    int
	)

	var application *app.App

	root := &cobra.Command{
		Use:   "patrones",
		Short: "Catálogo ejecutable de patrones de diseño (GoF)",
		Long: "Catálogo ejecutable de demos de patrones de diseño. Cada demo es un\n" +
			"snippet independiente; el núcleo compartido es el logger singleton\n" +
			"thread-safe con emisión ordenada.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			// Flags pisan config + env.
			if level != "" {
				cfg.Log.Level = level
			}
			if logFile != "" {
				cfg.Log.File = logFile
			}
			if metricsAddr != "" {
				cfg.Log.MetricsAddr = metricsAddr
				cfg.Log.Metrics = true
			}
			if parallel > 0 {
				cfg.Run.Parallel = parallel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			application, err = app.New(cfg, os.Stdout)
			if err != nil {
				return err
			}

			if cfg.Log.MetricsAddr != "" {
				go serveMetrics(cfg.Log.MetricsAddr)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", cfgPath, "ruta del config YAML (env PATRONES_CONFIG)")
	root.PersistentFlags().StringVar(&level, "level", "", "umbral del logger: debug|info|warning|error (env LOG_LEVEL)")
	root.PersistentFlags().StringVar(&logFile, "log-file", "", "tee de los registros del logger a un archivo (env LOG_FILE)")
	root.PersistentFlags().StringVar(&metricsAddr, "metrics-addr", "", "expone /metrics Prometheus en esa dirección (env LOG_METRICS_ADDR)")
	root.PersistentFlags().IntVar(&parallel, "parallel", 0, "workers para run --all (env RUN_PARALLEL)")

	var category string
	list := &cobra.Command{
		Use:   "list",
		Short: "Lista los demos del catálogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, d := range application.List(category) {
				fmt.Fprintf(tw, "%s\t%s\n", d.Key, d.Doc)
			}
			return tw.Flush()
		},
	}
	list.Flags().StringVar(&category, "category", "", "filtra por categoría: creational|structural|behavioral")

	var all bool
	run := &cobra.Command{
		Use:   "run [category/name ...]",
		Short: "Ejecuta uno o más demos (o todos con --all)",
		Args: func(cmd *cobra.Command, args []string) error {
			if !all && len(args) == 0 {
				return fmt.Errorf("indicá al menos un demo o usá --all")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if all {
				return application.RunAll(cmd.Context())
			}
			return application.RunMany(cmd.Context(), args)
		},
	}
	run.Flags().BoolVar(&all, "all", false, "ejecuta el catálogo completo")

	root.AddCommand(list, run)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// serveMetrics expone /metrics; un fallo acá no debe voltear el CLI.
func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("metrics server: %v", err)
	}
}
