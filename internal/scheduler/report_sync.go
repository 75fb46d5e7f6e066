// Package scheduler contém o serviço de agendamento do envio periódico de relatórios
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/kitvend/sales-monitor/infrastructure/integrator/telegram"
	"github.com/kitvend/sales-monitor/internal/config"
	"github.com/kitvend/sales-monitor/internal/usecases/reporting"
	"github.com/kitvend/sales-monitor/pkg/utils"
	"github.com/sirupsen/logrus"
)

type ReportSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// ReportSyncService monta e envia o relatório diário combinado no horário
// configurado. Uma execução manual pode ser disparada pela API.
type ReportSyncService struct {
	scheduler           *gocron.Scheduler
	controller          *reporting.Controller
	notifier            telegram.Notifier
	config              ReportSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewReportSyncService(
	controller *reporting.Controller,
	notifier telegram.Notifier,
	cfg *config.Config,
) *ReportSyncService {
	syncConfig := ReportSyncConfig{
		CronSchedule: cfg.ReportSync.CronSchedule, // Default: 9h da manhã todos os dias
		Enabled:      cfg.ReportSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de relatórios carregada")

	return &ReportSyncService{
		scheduler:  scheduler,
		controller: controller,
		notifier:   notifier,
		config:     syncConfig,
	}
}

func (s *ReportSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de envio de relatórios desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de envio de relatórios")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunReportSync(ctx); err != nil {
			logrus.WithError(err).Error("Erro no envio do relatório diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar envio de relatórios: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de envio de relatórios")
		s.scheduler.Stop()
	}()

	return nil
}

// RunReportSync executa um ciclo completo: monta o relatório diário e envia ao
// canal do operador. Execuções sobrepostas são descartadas.
func (s *ReportSyncService) RunReportSync(ctx context.Context) error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Envio de relatório já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	runID, err := utils.GenerateID()
	if err != nil {
		runID = "unknown"
	}

	logger := logrus.WithField("run_id", runID)
	logger.Info("Iniciando montagem do relatório diário")

	message, err := s.controller.BuildDailyReport(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao montar o relatório diário")
		return err
	}

	if message == "" {
		logger.Info("Nenhuma anomalia encontrada, relatório não será enviado")
		return nil
	}

	if err := s.notifier.SendReport(ctx, message); err != nil {
		// O texto já montado não se perde em caso de falha de entrega.
		logger.WithError(err).WithField("report", message).Error("Erro ao enviar o relatório")
		return err
	}

	logger.Info("Relatório diário enviado com sucesso")
	return nil
}

// TriggerManualSync dispara uma execução fora do agendamento, em background.
func (s *ReportSyncService) TriggerManualSync() {
	go func() {
		if err := s.RunReportSync(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do envio de relatório")
		}
	}()
}

// IsRunning indica se há um envio em andamento.
func (s *ReportSyncService) IsRunning() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.syncRunning
}

// LastSyncTimes retorna os horários de início e fim da última execução.
func (s *ReportSyncService) LastSyncTimes() (time.Time, time.Time) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}
