package alert

import (
	"context"
	"sync"
	"time"

	"github.com/MananBhanushali/Odoo-Hackathon-25-Online/pkg/logger"
)

// Sweeper lo que el scheduler ejecuta en cada tick.
type Sweeper interface {
	Sweep(ctx context.Context) (SweepResult, error)
}

// Scheduler dispara el barrido al arrancar y luego cada interval.
// Un barrido fallido (error o panic) se registra y el ciclo continúa en el siguiente tick.
type Scheduler struct {
	sweeper  Sweeper
	interval time.Duration
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewScheduler construye el scheduler; no arranca hasta Start.
func NewScheduler(sweeper Sweeper, interval time.Duration, log *logger.Logger) *Scheduler {
	if log == nil {
		log = logger.Nop()
	}
	return &Scheduler{sweeper: sweeper, interval: interval, log: log.Component("alert-scheduler")}
}

// Start lanza el ciclo en segundo plano. Llamarlo dos veces no tiene efecto.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.loop(ctx, s.done)
	s.log.Info().Dur("interval", s.interval).Msg("scheduler de alertas iniciado")
}

// Stop detiene el ciclo y espera a que termine el barrido en curso.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	s.log.Info().Msg("scheduler de alertas detenido")
}

func (s *Scheduler) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.tick(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().Interface("panic", r).Msg("barrido de alertas abortado")
		}
	}()
	start := time.Now()
	res, err := s.sweeper.Sweep(ctx)
	if err != nil {
		if ctx.Err() == nil {
			s.log.Error().Err(err).Msg("barrido de alertas fallido; se reintenta en el siguiente ciclo")
		}
		return
	}
	s.log.Debug().Int("checked", res.Checked).Int("created", res.Created).Bool("skipped", res.Skipped).
		Dur("elapsed", time.Since(start)).Msg("barrido de alertas")
}
