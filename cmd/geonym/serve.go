package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/gogpu/geonym"
	"github.com/gogpu/geonym/internal/imagecache"
	"github.com/gogpu/geonym/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the playground over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); cmd.Flags().Changed("addr") {
			e.cfg.Server.Addr = addr
		}
		log := geonym.Logger()

		opts := []server.Option{server.WithLogger(log)}
		if e.cfg.Server.Metrics {
			opts = append(opts, server.WithMetrics(promhttp.HandlerFor(e.prom, promhttp.HandlerOpts{})))
		}
		if n := e.cfg.Server.ImageCache; n > 0 {
			opts = append(opts, server.WithCache(imagecache.New(n)))
		}
		if _, err := e.pg.Express(); err != nil {
			return err
		}

		srv := &http.Server{
			Addr:    e.cfg.Server.Addr,
			Handler: server.NewHandler(e.pg, opts...),
		}

		serverErrors := make(chan error, 1)
		go func() {
			log.Info("serving playground", "addr", srv.Addr, "spaces", e.reg.Len())
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case sig := <-shutdown:
			log.Info("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), e.cfg.Server.ShutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(ctx); err != nil {
				log.Warn("graceful shutdown incomplete", "timeout", e.cfg.Server.ShutdownTimeout, "err", err)
				return srv.Close()
			}
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}
