package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"k8s.io/klog/v2"

	"github.com/algonotes/backend/config"
	"github.com/algonotes/backend/internal/pkg/database"
	"github.com/algonotes/backend/internal/router"
	"github.com/algonotes/backend/internal/service/seeder"
)

const shutdownTimeout = 10 * time.Second

var seedOnStart bool

// serveCmd 启动 HTTP 服务
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&seedOnStart, "seed", false, "rebuild study content before serving (overrides seed.on_start)")
}

// openDB 打开数据库，sqlite 时先创建数据目录
func openDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.Database.Type == "sqlite" || cfg.Database.Type == "" {
		if dir := filepath.Dir(cfg.Database.DSN); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create data directory: %w", err)
			}
		}
	}
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}
	return db, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	klog.V(6).Info("服务启动中...")
	cfg := config.GetConfig()

	db, err := openDB(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if seedOnStart || cfg.Seed.OnStart {
		if _, err := seeder.New(db).Run(ctx); err != nil {
			return fmt.Errorf("seed on start: %w", err)
		}
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router.NewEngine(cfg, db),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		klog.Infof("Server starting on port %s...", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		klog.Infof("[Server] 正在关闭...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
