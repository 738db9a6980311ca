package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"

	authzgrpc "github.com/slms-platform/erp-server-go-authz/internal/adapter/grpc"
	"github.com/slms-platform/erp-server-go-authz/internal/adapter/handler"
	"github.com/slms-platform/erp-server-go-authz/internal/adapter/middleware"
	"github.com/slms-platform/erp-server-go-authz/internal/domain/menu"
	"github.com/slms-platform/erp-server-go-authz/internal/infra/config"
	"github.com/slms-platform/erp-server-go-authz/internal/infra/messaging"
	"github.com/slms-platform/erp-server-go-authz/internal/infra/persistence"
	"github.com/slms-platform/erp-server-go-authz/internal/infra/telemetry"
	"github.com/slms-platform/erp-server-go-authz/internal/usecase"
)

func main() {
	// --- Config ---
	cfg, err := config.Load("config/config.yaml")
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("config validation failed", "error", err)
		os.Exit(1)
	}

	// --- Telemetry ---
	telemetryCfg := telemetry.TelemetryConfig{
		ServiceName: cfg.App.Name,
		Version:     cfg.App.Version,
		Tier:        cfg.App.Tier,
		Environment: cfg.App.Environment,
		SampleRate:  1.0,
		LogLevel:    "info",
	}
	tp, err := telemetry.InitTelemetry(context.Background(), telemetryCfg)
	if err != nil {
		slog.Error("failed to init telemetry", "error", err)
		os.Exit(1)
	}
	defer tp.Shutdown(context.Background())
	slog.SetDefault(tp.Logger())

	// --- Metrics ---
	metrics := telemetry.NewMetrics(cfg.App.Name)

	// --- Navigation ---
	// カタログとツリーはプロセス起動時に固定され、以降は読み取り専用。
	// カタログ検証・Primary の参照キー検証に失敗した場合は起動しない。
	nav, err := menu.BuildNavigation(tp.Logger())
	if err != nil {
		slog.Error("failed to build navigation", "error", err)
		os.Exit(1)
	}

	// --- Database ---
	db, err := persistence.NewDB(cfg.Database)
	if err != nil {
		slog.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// --- Kafka ---
	producer := messaging.NewDenialEventProducer(cfg.Kafka)
	defer producer.Close()

	// --- DI ---
	grantRepo := persistence.NewGrantRepository(db)

	resolverUC := usecase.NewResolvePermissionsUseCase(grantRepo, tp.Logger())
	checkUC := usecase.NewCheckAccessUseCase(resolverUC)
	navUC := usecase.NewGetNavigationUseCase(nav, resolverUC)

	guard := middleware.NewPermissionGuard(checkUC, producer, metrics, tp.Logger())

	// --- REST Router ---
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Principal(cfg.Auth.PrincipalHeaderOrDefault()))

	// ヘルスチェック
	r.GET("/healthz", handler.HealthzHandler())
	r.GET("/readyz", handler.ReadyzHandler(db))

	// メトリクス
	r.GET("/metrics", gin.WrapH(telemetry.MetricsHandler()))

	// 認可ハンドラー
	authzHandler := handler.NewAuthzHandler(checkUC, resolverUC)
	authzHandler.RegisterRoutes(r)

	// ナビゲーションハンドラー
	navHandler := handler.NewNavigationHandler(navUC)
	navHandler.RegisterRoutes(r)

	// カタログハンドラー
	catalogHandler := handler.NewCatalogHandler(guard)
	catalogHandler.RegisterRoutes(r)

	// 全ルート登録後、ガードが参照したキーのカタログ登録を検証する。
	// 未登録キーを参照するガードがあれば起動しない。
	if err := guard.ValidateReferencedKeys(); err != nil {
		slog.Error("route guard validation failed", "error", err)
		os.Exit(1)
	}

	// --- gRPC Server ---
	authzGRPCSvc := authzgrpc.NewAuthzGRPCService(checkUC, resolverUC)

	grpcServer := grpc.NewServer()
	authzgrpc.RegisterAuthzServiceServer(grpcServer, authzGRPCSvc)

	grpcPort := cfg.GRPC.Port
	if grpcPort == 0 {
		grpcPort = 50051
	}
	go func() {
		lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
		if err != nil {
			slog.Error("failed to listen for gRPC", "error", err)
			os.Exit(1)
		}
		slog.Info("gRPC server starting", "port", grpcPort)
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC server failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- REST Server ---
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("REST server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("REST server failed", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("shutting down servers...")

	grpcServer.GracefulStop()
	slog.Info("gRPC server stopped")

	shutdownTimeout := cfg.Server.ShutdownTimeout
	if shutdownTimeout == 0 {
		shutdownTimeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("REST server forced to shutdown", "error", err)
	}
	slog.Info("servers exited")
}
