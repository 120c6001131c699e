// Package scheduler contém os serviços de agendamento da aplicação
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/precifica/cost-manager-api/internal/config"
	"github.com/precifica/cost-manager-api/internal/usecases/insighting"
	"github.com/sirupsen/logrus"
)

type InsightSnapshotSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// InsightSnapshotSyncService recalcula os alertas de todos os produtos de
// madrugada, para a central de ações abrir instantânea durante o dia
type InsightSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	insighter           insighting.Insighter
	config              InsightSnapshotSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewInsightSnapshotSyncService(
	insighter insighting.Insighter,
	cfg *config.Config,
) *InsightSnapshotSyncService {
	syncConfig := InsightSnapshotSyncConfig{
		CronSchedule: cfg.InsightSnapshotSync.CronSchedule, // Default: 4h da manhã todos os dias
		SyncEnabled:  cfg.InsightSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de snapshot de alertas carregada")

	return &InsightSnapshotSyncService{
		scheduler: scheduler,
		insighter: insighter,
		config:    syncConfig,
	}
}

func (s *InsightSnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de snapshot de alertas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de snapshot de alertas")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro no snapshot de alertas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot de alertas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de snapshot de alertas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *InsightSnapshotSyncService) RunSnapshot() error {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Warn("Snapshot de alertas já está em execução")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	logrus.Info("Iniciando snapshot de alertas dos produtos")

	flagged, err := s.insighter.SnapshotAll(context.Background())
	if err != nil {
		return err
	}

	logrus.WithField("produtos_com_alertas", flagged).Info("Snapshot de alertas finalizado")
	return nil
}

// TriggerManualSync inicia manualmente o snapshot de alertas
func (s *InsightSnapshotSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Snapshot de alertas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando snapshot manual de alertas")
	go func() {
		if err := s.RunSnapshot(); err != nil {
			logrus.WithError(err).Error("Erro no snapshot manual de alertas")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *InsightSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
