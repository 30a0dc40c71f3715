package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	enginetooltip "github.com/hexbench/tooltip-api/internal/engine/tooltip"
	v1alpha1 "github.com/hexbench/tooltip-api/internal/handlers/api/v1alpha1"
	tooltiporch "github.com/hexbench/tooltip-api/internal/orchestrators/tooltip"
	"github.com/hexbench/tooltip-api/internal/pkg/idgen"
	redisclient "github.com/hexbench/tooltip-api/internal/redis"
	"github.com/hexbench/tooltip-api/internal/repositories/gamedata"
	"github.com/hexbench/tooltip-api/internal/repositories/tooltipcache"
)

var (
	httpPort          int
	dataPath          string
	redisAddress      string
	cacheTTL          time.Duration
	scalingConfigPath string
	labelsConfigPath  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server",
	Long:  `Start the tooltip API HTTP server with all configured services.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&httpPort, "port", 8080, "HTTP server port")
	serverCmd.Flags().StringVar(&dataPath, "data", "data/snapshot.json", "path to the game data snapshot")
	serverCmd.Flags().StringVar(&redisAddress, "redis-address", "", "redis address for the tooltip cache (empty disables caching)")
	serverCmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 15*time.Minute, "TTL for cached tooltips")
	serverCmd.Flags().StringVar(&scalingConfigPath, "scaling-config", "", "optional YAML file overriding the scaling tables")
	serverCmd.Flags().StringVar(&labelsConfigPath, "labels-config", "", "optional YAML file overriding the label dictionary")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("received shutdown signal, gracefully stopping")
		cancel()
	}()

	engineCfg := &enginetooltip.Config{}
	if scalingConfigPath != "" {
		scaling, err := enginetooltip.LoadScalingConfig(scalingConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load scaling config: %w", err)
		}
		engineCfg.Scaling = scaling
	}
	if labelsConfigPath != "" {
		labels, err := enginetooltip.LoadLabelConfig(labelsConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load labels config: %w", err)
		}
		engineCfg.Labels = labels
	}

	eng, err := enginetooltip.New(engineCfg)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	gameData, err := gamedata.NewFromFile(dataPath)
	if err != nil {
		return fmt.Errorf("failed to load game data: %w", err)
	}

	var cache tooltipcache.Repository
	if redisAddress != "" {
		client, err := redisclient.NewClient(redisAddress, nil)
		if err != nil {
			return fmt.Errorf("failed to create redis client: %w", err)
		}
		cache, err = tooltipcache.NewRedis(&tooltipcache.Config{
			Client: client,
			TTL:    cacheTTL,
		})
		if err != nil {
			return fmt.Errorf("failed to create tooltip cache: %w", err)
		}
		slog.Info("tooltip cache enabled", "redis_address", redisAddress, "ttl", cacheTTL)
	}

	service, err := tooltiporch.NewOrchestrator(&tooltiporch.Config{
		GameDataRepo: gameData,
		Engine:       eng,
		CacheRepo:    cache,
	})
	if err != nil {
		return fmt.Errorf("failed to create orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.Config{
		Service:     service,
		IDGenerator: idgen.NewUUID("req"),
	})
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", httpPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server starting", "port", httpPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutting down HTTP server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Warn("graceful shutdown failed, forcing close", "error", err)
			return srv.Close()
		}

		slog.Info("server stopped gracefully")
		return nil
	case err := <-errChan:
		return err
	}
}
