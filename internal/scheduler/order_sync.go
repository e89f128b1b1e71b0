package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/supplier-performance-api/infrastructure/integrator/orders"
	"github.com/vfg2006/supplier-performance-api/infrastructure/repository"
	"github.com/vfg2006/supplier-performance-api/internal/config"
)

// OrderSyncConfig representa a configuração do agendador de sincronização de pedidos
type OrderSyncConfig struct {
	CronSchedule string
	LookbackDays int
	SyncEnabled  bool
}

// OrderSyncResult resume a última execução
type OrderSyncResult struct {
	From        time.Time `json:"from"`
	To          time.Time `json:"to"`
	Fetched     int       `json:"fetched"`
	Saved       int       `json:"saved"`
	Error       string    `json:"error,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// OrderSyncService mantém o cache local de pedidos (supplier_orders) alinhado com o backend de pedidos
type OrderSyncService struct {
	scheduler         *gocron.Scheduler
	config            OrderSyncConfig
	ordersIntegrator  orders.OrdersIntegrator
	orderRepo         repository.SupplierOrderRepository
	now               func() time.Time
	syncRunning       bool
	syncMutex         sync.Mutex
	lastSyncStartedAt time.Time
	lastResult        *OrderSyncResult
}

func NewOrderSyncService(
	ordersIntegrator orders.OrdersIntegrator,
	orderRepo repository.SupplierOrderRepository,
	appConfig *config.Config,
) *OrderSyncService {
	syncConfig := OrderSyncConfig{
		CronSchedule: appConfig.OrderSync.CronSchedule,
		LookbackDays: appConfig.OrderSync.LookbackDays,
		SyncEnabled:  appConfig.OrderSync.Enabled,
	}
	if syncConfig.LookbackDays < 1 {
		syncConfig.LookbackDays = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"lookback_days": syncConfig.LookbackDays,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de pedidos carregada")

	return &OrderSyncService{
		scheduler:        gocron.NewScheduler(time.UTC),
		config:           syncConfig,
		ordersIntegrator: ordersIntegrator,
		orderRepo:        orderRepo,
		now:              time.Now,
	}
}

// Start agenda a sincronização e para o agendador quando ctx é cancelado
func (s *OrderSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização de pedidos desabilitada por configuração")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncOrders(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de pedidos: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização de pedidos")
		s.scheduler.Stop()
	}()

	return nil
}

// syncWindow devolve [from, to) cobrindo os últimos LookbackDays dias e o dia corrente
func (s *OrderSyncService) syncWindow() (time.Time, time.Time) {
	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return today.AddDate(0, 0, -s.config.LookbackDays), today.AddDate(0, 0, 1)
}

func (s *OrderSyncService) syncOrders(ctx context.Context) *OrderSyncResult {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de pedidos já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	from, to := s.syncWindow()
	result := &OrderSyncResult{From: from, To: to}

	logger := logrus.WithFields(logrus.Fields{
		"start_date": from.Format(time.DateOnly),
		"end_date":   to.AddDate(0, 0, -1).Format(time.DateOnly),
	})
	logger.Info("Iniciando sincronização de pedidos")

	fetched, err := s.ordersIntegrator.FetchOrders(ctx, from, to.AddDate(0, 0, -1))
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar pedidos no backend de pedidos")
		return s.finish(result, err)
	}
	result.Fetched = len(fetched)

	saved, err := s.orderRepo.ReplaceWindow(ctx, from, to, fetched)
	if err != nil {
		logger.WithError(err).Error("Erro ao gravar pedidos sincronizados")
		return s.finish(result, err)
	}
	result.Saved = saved

	logger.WithFields(logrus.Fields{
		"fetched": result.Fetched,
		"saved":   result.Saved,
	}).Info("Sincronização de pedidos concluída")

	return s.finish(result, nil)
}

func (s *OrderSyncService) finish(result *OrderSyncResult, err error) *OrderSyncResult {
	if err != nil {
		result.Error = err.Error()
	}
	result.CompletedAt = s.now()

	s.syncMutex.Lock()
	s.lastResult = result
	s.syncMutex.Unlock()

	return result
}

// TriggerManualSync inicia uma sincronização fora do agendamento
func (s *OrderSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	running := s.syncRunning
	s.syncMutex.Unlock()

	if running {
		logrus.Info("Sincronização de pedidos já em andamento, ignorando solicitação manual")
		return
	}

	logrus.Info("Iniciando sincronização manual de pedidos")
	go s.syncOrders(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *OrderSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":         s.config.SyncEnabled,
		"sync_cron":            s.config.CronSchedule,
		"sync_lookback_days":   s.config.LookbackDays,
		"sync_running":         s.syncRunning,
		"last_sync_started_at": s.lastSyncStartedAt,
		"last_result":          s.lastResult,
	}
}
