package root

import (
	"context"
	"log"
	"time"

	"github.com/spf13/cobra"

	"idealab/internal/catalog"
	"idealab/internal/engine"
	"idealab/internal/storage"
	"idealab/internal/web"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()

			var (
				plans engine.PlanStore
				diag  web.Diagnostics
			)
			if cfg.DatabaseURL != "" {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				m, err := storage.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
				if err != nil {
					return err
				}
				defer func() {
					_ = m.Close(context.Background())
				}()
				plans = m.Plans()
				diag = m
			} else {
				log.Println("DATABASE_URL not set; plan endpoints will report the store as unavailable")
			}

			svc := engine.NewService(catalog.NewStore(), plans)
			srv := web.NewServer(svc, diag, cfg.CORSOrigin)

			if addr == "" {
				addr = ":" + cfg.Port
			}
			log.Printf("Server starting on %s", addr)
			return srv.Run(addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides PORT)")
	return cmd
}
