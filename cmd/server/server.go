package main

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	toolkitevents "github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rune-api/internal/clients/catalog"
	"github.com/KirkDiggler/rune-api/internal/engine/etching"
	eventhandler "github.com/KirkDiggler/rune-api/internal/handlers/events"
	"github.com/KirkDiggler/rune-api/internal/orchestrators/runes"
	"github.com/KirkDiggler/rune-api/internal/orchestrators/transfer"
	"github.com/KirkDiggler/rune-api/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rune-api/internal/redis"
	"github.com/KirkDiggler/rune-api/internal/repositories/actors"
	"github.com/KirkDiggler/rune-api/internal/ui"
)

var (
	grpcPort     int
	redisAddress string
	catalogPath  string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the rune manager",
	Long:  `Start the rune manager: event bus handlers for attach and transfer, plus a gRPC health endpoint.`,
	RunE:  runServer,
}

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 50051, "gRPC health server port")
	serverCmd.Flags().StringVar(&redisAddress, "redis-address", "", "Redis address; empty runs on in-memory storage")
	serverCmd.Flags().StringVar(&catalogPath, "catalog", "", "path to the JSON rune catalog; empty uses the built-in tables")
}

func runServer(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	actorRepo, err := buildActorRepo()
	if err != nil {
		return fmt.Errorf("failed to create actor repository: %w", err)
	}

	catalogClient, err := buildCatalogClient()
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	eng, err := etching.New(&etching.Config{
		CatalogClient: catalogClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create rules engine: %w", err)
	}

	notifier := ui.NewLogNotifier()
	prompter := ui.NewHeadlessPrompter()

	runeService, err := runes.NewOrchestrator(&runes.Config{
		ActorRepo:   actorRepo,
		Engine:      eng,
		Prompter:    prompter,
		Notifier:    notifier,
		IDGenerator: idgen.NewPrefixed("item"),
	})
	if err != nil {
		return fmt.Errorf("failed to create rune orchestrator: %w", err)
	}

	transferService, err := transfer.NewOrchestrator(&transfer.Config{
		ActorRepo:  actorRepo,
		Engine:     eng,
		Prompter:   prompter,
		Notifier:   notifier,
		ChatPoster: ui.NewLogChatPoster(),
	})
	if err != nil {
		return fmt.Errorf("failed to create transfer orchestrator: %w", err)
	}

	bus := toolkitevents.NewBus()
	handler, err := eventhandler.NewHandler(&eventhandler.Config{
		EventBus:        bus,
		RuneService:     runeService,
		TransferService: transferService,
		Notifier:        notifier,
	})
	if err != nil {
		return fmt.Errorf("failed to create event handler: %w", err)
	}
	handler.Register()
	defer handler.Unregister()

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", grpcPort))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.UnaryServerInterceptor(),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(grpc_logging.LoggerFunc(logFunc)),
			grpc_recovery.StreamServerInterceptor(),
		),
	)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("rune manager listening on port %d...", grpcPort)
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

func buildActorRepo() (actors.Repository, error) {
	if redisAddress == "" {
		log.Println("No Redis address configured, using in-memory storage")
		return actors.NewInMemory(), nil
	}

	client, err := redisclient.NewClient(redisAddress, nil)
	if err != nil {
		return nil, err
	}
	return actors.NewRedis(&actors.RedisConfig{Client: client})
}

func buildCatalogClient() (catalog.Client, error) {
	if catalogPath == "" {
		log.Println("No catalog configured, using built-in rune tables")
		return catalog.NewUnavailable(), nil
	}
	return catalog.NewFile(&catalog.FileConfig{Path: catalogPath})
}

func logFunc(ctx context.Context, level grpc_logging.Level, msg string, fields ...any) {
	log.Printf("[%v] %s %v", level, msg, fields)
}
