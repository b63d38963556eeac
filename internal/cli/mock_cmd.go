package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/CZDX-WX/ai-interview-coach-cli/internal/config"
	"github.com/CZDX-WX/ai-interview-coach-cli/internal/mockapi"
)

func newServeMockCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve-mock",
		Short: "以独立进程运行内置 Mock 后端",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			server, err := mockapi.NewServer(cfg.Mock, dbPath, logger)
			if err != nil {
				return err
			}

			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				defer cancel()
				_ = server.Shutdown(ctx)
			}()
			return server.Start()
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "coach-mock.db", "Mock 后端数据库文件路径")
	return cmd
}
