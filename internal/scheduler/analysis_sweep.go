package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-optimizer-api/infrastructure/repository"
	"github.com/vfg2006/ad-optimizer-api/internal/config"
	"github.com/vfg2006/ad-optimizer-api/internal/domain"
	"github.com/vfg2006/ad-optimizer-api/internal/usecases/analyzing"
)

// AnalysisSweepConfig representa a configuração do agendador da varredura de análise
type AnalysisSweepConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SweepEnabled      bool
}

// AnalysisSweepService gerencia o agendamento e execução da varredura de
// análise: roda o analisador para todas as entidades ativas e publica as
// sugestões encontradas
type AnalysisSweepService struct {
	scheduler            *gocron.Scheduler
	config               AnalysisSweepConfig
	entityRepo           repository.EntityRepository
	analyzer             analyzing.EntityAnalyzer
	sink                 analyzing.SuggestionSink
	sweepRunning         bool
	sweepMutex           sync.Mutex
	lastSweepStartedAt   time.Time
	lastSweepCompletedAt time.Time
}

// NewAnalysisSweepService cria uma nova instância do serviço de varredura de análise
func NewAnalysisSweepService(
	entityRepo repository.EntityRepository,
	analyzer analyzing.EntityAnalyzer,
	sink analyzing.SuggestionSink,
	appConfig *config.Config,
) *AnalysisSweepService {
	sweepConfig := AnalysisSweepConfig{
		CronSchedule:      appConfig.AnalysisSweep.CronSchedule,
		MaxConcurrentJobs: appConfig.AnalysisSweep.MaxConcurrentJobs,
		SweepEnabled:      appConfig.AnalysisSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       sweepConfig.CronSchedule,
		"max_concurrent_jobs": sweepConfig.MaxConcurrentJobs,
		"sweep_enabled":       sweepConfig.SweepEnabled,
	}).Info("Configuração do agendador da varredura de análise carregada")

	return &AnalysisSweepService{
		scheduler:    scheduler,
		config:       sweepConfig,
		entityRepo:   entityRepo,
		analyzer:     analyzer,
		sink:         sink,
		sweepRunning: false,
	}
}

// Start inicia o agendador
func (s *AnalysisSweepService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de análise desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de análise")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.sweepAllEntities(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de análise: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de análise")
		s.scheduler.Stop()
	}()

	return nil
}

// sweepAllEntities roda o analisador para todas as entidades ativas
func (s *AnalysisSweepService) sweepAllEntities(ctx context.Context) {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de análise já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	startTime := time.Now()
	s.lastSweepStartedAt = startTime

	// Identificador da execução, para correlacionar os logs de uma mesma varredura
	sweepID := uuid.NewString()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	logrus.WithField("sweep_id", sweepID).Info("Iniciando varredura de análise para todas as entidades ativas")

	entities, err := s.entityRepo.ListActiveEntities(ctx)
	if err != nil {
		logrus.WithError(err).WithField("sweep_id", sweepID).Error("Erro ao buscar lista de entidades para a varredura de análise")
		return
	}

	if len(entities) == 0 {
		logrus.WithField("sweep_id", sweepID).Info("Nenhuma entidade ativa encontrada para a varredura de análise")
		return
	}

	published := s.processEntities(ctx, entities)

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"sweep_id":    sweepID,
		"duration":    duration.String(),
		"entities":    len(entities),
		"suggestions": published,
	}).Info("Varredura de análise concluída")

	s.lastSweepCompletedAt = time.Now()
}

// processEntities analisa as entidades com concorrência limitada por semáforo
// e publica as sugestões de cada uma. Retorna o total de sugestões publicadas.
func (s *AnalysisSweepService) processEntities(ctx context.Context, entities []*domain.AdEntity) int {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var wg sync.WaitGroup

	var publishedMutex sync.Mutex
	published := 0

	for _, entity := range entities {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(entity *domain.AdEntity) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			count := s.processEntity(ctx, entity)

			publishedMutex.Lock()
			published += count
			publishedMutex.Unlock()
		}(entity)
	}

	wg.Wait()

	return published
}

// processEntity analisa uma entidade e publica as sugestões encontradas.
// Falha de uma entidade não interrompe a varredura das demais; falha de
// autenticação interrompe apenas o log, já que as irmãs vão falhar igual.
func (s *AnalysisSweepService) processEntity(ctx context.Context, entity *domain.AdEntity) int {
	logrus.WithFields(logrus.Fields{
		"entity_id":   entity.ID,
		"entity_name": entity.Name,
	}).Info("Analisando entidade na varredura")

	suggestions, err := s.analyzer.AnalyzeEntity(ctx, entity)
	if err != nil {
		if errors.Is(err, analyzing.ErrUpstreamAuth) {
			logrus.WithField("entity_id", entity.ID).Error("Falha de autenticação na fonte de dados durante a varredura")
		} else {
			logrus.WithError(err).WithField("entity_id", entity.ID).Error("Erro ao analisar entidade na varredura")
		}
		return 0
	}

	if len(suggestions) == 0 {
		logrus.WithField("entity_id", entity.ID).Debug("Nenhuma sugestão para a entidade")
		return 0
	}

	if err := s.sink.Publish(ctx, suggestions); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"entity_id":   entity.ID,
			"suggestions": len(suggestions),
		}).Error("Erro ao publicar sugestões da entidade")
		return 0
	}

	logrus.WithFields(logrus.Fields{
		"entity_id":   entity.ID,
		"suggestions": len(suggestions),
	}).Info("Sugestões da entidade publicadas")

	return len(suggestions)
}

// TriggerManualSweep inicia manualmente uma varredura de análise
func (s *AnalysisSweepService) TriggerManualSweep() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de análise já em andamento, ignorando solicitação manual")
		return
	}
	s.sweepMutex.Unlock()

	logrus.Info("Iniciando varredura manual de análise")
	go s.sweepAllEntities(context.Background())
}

// GetStatus retorna o status atual do agendador
func (s *AnalysisSweepService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled":           s.config.SweepEnabled,
		"sweep_cron":              s.config.CronSchedule,
		"sweep_max_concurrent":    s.config.MaxConcurrentJobs,
		"last_sweep_started_at":   s.lastSweepStartedAt,
		"last_sweep_completed_at": s.lastSweepCompletedAt,
	}
}
