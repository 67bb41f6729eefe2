package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	httpadapter "github.com/arborui/arbor/internal/adapters/http"
	"github.com/arborui/arbor/internal/cli"
	"github.com/arborui/arbor/internal/metrics"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a live navigation tree for inspection",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := loggerFromFlags(cmd)
		if err != nil {
			return err
		}
		registry := prometheus.NewRegistry()
		collector := metrics.New(registry)
		engine, _, err := cli.BuildEngine(manifestPath(cmd), logger, collector)
		if err != nil {
			return err
		}
		handler := httpadapter.NewHandler(engine, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
		logger.Info("debug server listening", "addr", serveAddr)
		return http.ListenAndServe(serveAddr, handler)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8787", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
