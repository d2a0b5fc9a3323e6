package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"lyft_client/internal/adapter/grpcserver"
	"lyft_client/internal/adapter/http/handlers"
	"lyft_client/internal/adapter/http/routes"
	"lyft_client/internal/adapter/persistence/repository"
	"lyft_client/internal/domain/entities"
	"lyft_client/internal/infrastructure/config"
	"lyft_client/internal/infrastructure/database"
	"lyft_client/internal/infrastructure/identity"
	"lyft_client/internal/infrastructure/lyft"
	"lyft_client/internal/infrastructure/messaging"
	"lyft_client/internal/infrastructure/registry"
	"lyft_client/internal/usecase"
	"lyft_client/internal/usecase/interfaces"
	"lyft_client/pkg/grpcjson"
	"lyft_client/pkg/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"google.golang.org/grpc"
)

const shutdownTimeout = 10 * time.Second

// @title           Lyft Client API
// @version         1.0
// @description     Estimate and ride lifecycle gateway between internal services and the Lyft API.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Session token forwarded to the Users service, e.g. "Bearer {token}".

func main() {
	cfg := config.Load()
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, cfg, log)
	stop()

	if err != nil {
		log.Error("[api][main] failed to startup the application", logger.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	_ = log.Sync()
}

func run(ctx context.Context, cfg config.Config, log logger.ILogger) error {
	repo, closeRepo, err := openEstimateRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeRepo(); err != nil {
			log.Warning("[api][main] closing estimate store", logger.Error(err))
		}
	}()

	usersConn, err := grpcjson.Dial(cfg.UsersServiceAddr)
	if err != nil {
		return fmt.Errorf("dial users service: %w", err)
	}
	defer usersConn.Close()

	catalog := entities.DefaultServiceCatalog()
	policy := entities.TTLPolicy{Absolute: cfg.EstimateAbsoluteTTL, Sliding: cfg.EstimateSlidingTTL}
	tokens := identity.NewUsersClient(usersConn, cfg.InternalCallTimeout, log)
	provider := lyft.NewClient(cfg.LyftBaseURL, cfg.LyftTimeout, log)

	// Left as a nil interface when Kafka is not configured.
	var publisher interfaces.IRideEventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := messaging.NewKafkaRideEventPublisher(cfg.KafkaBrokers, cfg.KafkaRideEventsTopic)
		defer func() {
			if err := kafkaPublisher.Close(); err != nil {
				log.Warning("[api][main] closing kafka writer", logger.Error(err))
			}
		}()
		publisher = kafkaPublisher
		log.Info("[api][main] publishing ride events", logger.String("topic", cfg.KafkaRideEventsTopic))
	}

	estimateUseCase := usecase.NewEstimateUseCase(repo, tokens, provider, catalog,
		usecase.EstimateUseCaseConfig{Policy: policy, Pacing: cfg.EstimatePacing}, log)
	rideUseCase := usecase.NewRideUseCase(repo, tokens, provider, publisher, catalog, policy, log)

	if cfg.RegisterServices {
		if err := registerServices(ctx, cfg, catalog, log); err != nil {
			log.Warning("[api][main] service registration incomplete", logger.Error(err))
		}
	}

	grpcServer := grpc.NewServer(grpc.ForceServerCodec(grpcjson.Codec{}))
	grpcserver.RegisterEstimatesServer(grpcServer, grpcserver.NewEstimatesService(estimateUseCase, log))
	grpcserver.RegisterRequestsServer(grpcServer, grpcserver.NewRequestsService(rideUseCase, log))

	lis, err := net.Listen("tcp", ":"+strconv.Itoa(cfg.GRPCPort))
	if err != nil {
		return fmt.Errorf("listen grpc: %w", err)
	}

	if !debugLevel(cfg.LoggerLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	httpServer := &http.Server{
		Addr: ":" + strconv.Itoa(cfg.HTTPPort),
		Handler: routes.NewRouter(routes.Handlers{
			Estimates: handlers.NewEstimateHandler(estimateUseCase, log),
			Rides:     handlers.NewRideHandler(rideUseCase, log),
		}, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("[api][main] grpc server listening", logger.Int("port", cfg.GRPCPort))
		errCh <- grpcServer.Serve(lis)
	}()
	go func() {
		log.Info("[api][main] http server listening", logger.Int("port", cfg.HTTPPort))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	var serveErr error
	select {
	case <-ctx.Done():
		log.Info("[api][main] shutting down")
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warning("[api][main] http shutdown", logger.Error(err))
	}
	grpcServer.GracefulStop()

	return serveErr
}

func openEstimateRepository(ctx context.Context, cfg config.Config, log logger.ILogger) (interfaces.IEstimateRepository, func() error, error) {
	switch cfg.CacheBackend {
	case config.CacheBackendPebble:
		db, err := database.OpenPebble(cfg.PebbleDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info("[api][main] estimate store: pebble", logger.String("dir", cfg.PebbleDir))
		return repository.NewEstimatePebbleRepository(db), db.Close, nil
	case config.CacheBackendDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Info("[api][main] estimate store: dynamodb", logger.String("table", cfg.EstimatesTable))
		return repository.NewEstimateDynamoRepository(ddb, cfg.EstimatesTable), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}

func registerServices(ctx context.Context, cfg config.Config, catalog entities.ServiceCatalog, log logger.ILogger) error {
	conn, err := grpcjson.Dial(cfg.ServicesServiceAddr)
	if err != nil {
		return fmt.Errorf("dial services service: %w", err)
	}
	defer conn.Close()

	services := registry.NewServicesClient(conn, cfg.InternalCallTimeout)
	return usecase.NewServiceRegistrationUseCase(services, catalog, log).RegisterAll(ctx)
}

func debugLevel(level string) bool {
	return level == "debug"
}
