package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/supplier-performance-api/infrastructure/database/postgres"
	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders"
	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders/ordersclient"
	"github.com/vfg2006/supplier-performance-api/infrastructure/repository"
	"github.com/vfg2006/supplier-performance-api/internal/api"
	"github.com/vfg2006/supplier-performance-api/internal/api/handler"
	"github.com/vfg2006/supplier-performance-api/internal/config"
	"github.com/vfg2006/supplier-performance-api/internal/domain"
	"github.com/vfg2006/supplier-performance-api/internal/scheduler"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/authenticating"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/incentivizing"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/revenue"
	"github.com/vfg2006/supplier-performance-api/internal/usecases/targeting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	validationMode, err := domain.ParseValidationMode(cfg.App.TargetValidationMode)
	if err != nil {
		logrus.WithError(err).Fatal("Modo de validação de metas inválido")
	}
	logrus.Infof("Modo de validação de metas: %s", validationMode)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	supplierRepo := repository.NewSupplierRepository(pgConn)
	targetRepo := repository.NewTargetRepository(pgConn)
	incentiveRepo := repository.NewIncentiveRepository(pgConn)
	orderRepo := repository.NewSupplierOrderRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)
	revenueService := revenue.NewService(supplierRepo, orderRepo)
	targetService := targeting.NewService(targetRepo, supplierRepo, domain.DefaultCategoryCatalog(), validationMode)
	incentiveService := incentivizing.NewService(incentiveRepo, supplierRepo, revenueService)

	ordersIntegrator := orders.New(ordersclient.NewClient(cfg.OrdersAPI))
	orderSyncService := scheduler.NewOrderSyncService(ordersIntegrator, orderRepo, cfg)

	if err := orderSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de pedidos")
	} else {
		logrus.Info("Agendador de sincronização de pedidos iniciado com sucesso")
	}

	server, err := api.New(cfg, api.Services{
		Authenticator: authenticator,
		Targets:       targetService,
		Revenue:       revenueService,
		Incentives:    incentiveService,
		CronJobs: handler.CronJobServices{
			handler.CronJobTypeOrders: orderSyncService,
		},
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	if err := conn.Ping(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
