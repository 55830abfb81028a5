package jobs

import (
	"log/slog"
	"time"

	"agendly-backend/internal/services"
	"github.com/robfig/cron/v3"
)

// Completer periodically marks past confirmed appointments as completed.
type Completer struct {
	appointments *services.AppointmentService
	cron         *cron.Cron
}

func NewCompleter(appointments *services.AppointmentService) *Completer {
	return &Completer{
		appointments: appointments,
		cron:         cron.New(),
	}
}

// Start runs the completer hourly. The first pass runs immediately so a
// restart does not leave stale confirmed appointments behind.
func (c *Completer) Start() error {
	c.run()
	if _, err := c.cron.AddFunc("@hourly", c.run); err != nil {
		return err
	}
	c.cron.Start()
	slog.Info("appointment completer started")
	return nil
}

func (c *Completer) Stop() {
	c.cron.Stop()
}

func (c *Completer) run() {
	n, err := c.appointments.CompletePast(time.Now())
	if err != nil {
		slog.Error("appointment completion pass failed",
			"action", "appointment.complete", "error", err)
		return
	}
	if n > 0 {
		slog.Info("appointments completed", "count", n)
	}
}
