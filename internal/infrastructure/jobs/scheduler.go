// Package jobs tareas programadas con robfig/cron.
package jobs

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jhoicas/mistica-api/internal/application/report"
	"github.com/jhoicas/mistica-api/pkg/logger"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// DigestSource fuente del resumen de stock.
type DigestSource interface {
	Digest(now time.Time) report.Digest
}

// Scheduler ejecuta el resumen periódico de stock.
type Scheduler struct {
	sched  *cron.Cron
	digest DigestSource
	log    *logger.Logger
	now    func() time.Time
}

// NewScheduler registra el resumen de stock con la expresión cron expr.
// expr vacío devuelve (nil, nil): sin tareas programadas.
func NewScheduler(expr string, digest DigestSource, log *logger.Logger) (*Scheduler, error) {
	if expr == "" {
		return nil, nil
	}
	if log == nil {
		log = logger.Nop()
	}
	s := &Scheduler{
		sched:  cron.New(cron.WithParser(cronParser)),
		digest: digest,
		log:    log,
		now:    time.Now,
	}
	if _, err := s.sched.AddFunc(expr, s.RunStockDigest); err != nil {
		return nil, fmt.Errorf("jobs: expresión cron %q: %w", expr, err)
	}
	return s, nil
}

// Start inicia el planificador en segundo plano.
func (s *Scheduler) Start() {
	if s != nil {
		s.sched.Start()
	}
}

// Stop detiene el planificador y espera las tareas en curso.
func (s *Scheduler) Stop() {
	if s != nil {
		<-s.sched.Stop().Done()
	}
}

// RunStockDigest registra en el log el resumen de stock actual.
func (s *Scheduler) RunStockDigest() {
	defer func() {
		if err := recover(); err != nil {
			s.log.Error().Interface("panic", err).Msg("resumen de stock falló")
		}
	}()

	d := s.digest.Digest(s.now())
	ev := s.log.Warn()
	if d.Report.ActiveAlerts == 0 {
		ev = s.log.Info()
	}
	ev.
		Int("total_products", d.Report.TotalProducts).
		Str("total_stock_value", d.Report.TotalStockValue.StringFixed(2)).
		Int("recent_movements", d.Report.RecentMovements).
		Int("active_alerts", d.Report.ActiveAlerts).
		Int("low_stock", d.Summary.LowStockProducts).
		Int("critical_stock", d.Summary.CriticalStockProducts).
		Int("out_of_stock", d.Summary.OutOfStock).
		Msg("resumen de stock")
}
