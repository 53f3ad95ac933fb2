package root

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"idealab/internal/storage"
)

func newDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "db",
		Short: "Check document store connectivity",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			m, err := storage.Open(ctx, cfg.DatabaseURL, cfg.DatabaseName)
			if err != nil {
				return err
			}
			defer func() {
				_ = m.Close(context.Background())
			}()

			names, err := m.CollectionNames(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("connected to %s (%d collections)\n", m.Name(), len(names))
			for _, n := range names {
				fmt.Println("  " + n)
			}
			return nil
		},
	}
}
