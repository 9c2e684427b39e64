// Package scheduler ejecuta tareas periódicas (por ahora, el barrido de
// alertas de stock bajo y vencimiento).
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/tu-usuario/rice-stock-api/internal/application/alerts"
	"github.com/tu-usuario/rice-stock-api/pkg/config"
	"github.com/tu-usuario/rice-stock-api/pkg/logger"
)

// Scheduler corre el escáner de alertas según la expresión cron configurada.
type Scheduler struct {
	cron     *cron.Cron
	alertsUC *alerts.UseCase
	cfg      config.AlertsConfig
	log      *logger.Logger
}

// New construye el scheduler. No arranca nada hasta Start.
func New(cfg config.AlertsConfig, alertsUC *alerts.UseCase, log *logger.Logger) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		alertsUC: alertsUC,
		cfg:      cfg,
		log:      log,
	}
}

// Start registra las tareas y arranca el cron.
func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.Schedule, s.runAlerts); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("schedule", s.cfg.Schedule).Msg("scheduler iniciado")
	return nil
}

// Stop detiene el cron y espera a que terminen las tareas en curso.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("scheduler detenido")
}

func (s *Scheduler) runAlerts() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	lowStock, expiring, err := s.alertsUC.Run(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("barrido de alertas falló")
		return
	}
	s.log.Info().
		Int("low_stock", lowStock).
		Int("expiring", expiring).
		Msg("barrido de alertas completado")
}
