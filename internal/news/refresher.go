package news

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// CityRefresher пересчитывает зоны города
type CityRefresher interface {
	Refresh(ctx context.Context, city string) error
}

// Refresher периодически прогревает кэш зон для заданных городов
type Refresher struct {
	cron     *cron.Cron
	target   CityRefresher
	cities   []string
	interval time.Duration
	timeout  time.Duration
	logger   *logrus.Logger
}

func NewRefresher(target CityRefresher, cities []string, interval time.Duration, logger *logrus.Logger) *Refresher {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &Refresher{
		cron:     cron.New(),
		target:   target,
		cities:   cities,
		interval: interval,
		timeout:  time.Minute,
		logger:   logger,
	}
}

// RunOnce пересчитывает все города последовательно
func (r *Refresher) RunOnce(ctx context.Context) {
	for _, city := range r.cities {
		cctx, cancel := context.WithTimeout(ctx, r.timeout)
		err := r.target.Refresh(cctx, city)
		cancel()
		if err != nil {
			r.logger.WithFields(logrus.Fields{
				"component": "news_refresher",
				"city":      city,
			}).WithError(err).Error("scheduled zone refresh failed")
		}
	}
}

// Start запускает расписание "@every <interval>"
func (r *Refresher) Start(ctx context.Context) error {
	schedule := fmt.Sprintf("@every %s", r.interval)
	if _, err := r.cron.AddFunc(schedule, func() { r.RunOnce(ctx) }); err != nil {
		return fmt.Errorf("news: schedule refresher: %w", err)
	}
	r.cron.Start()
	r.logger.WithFields(logrus.Fields{
		"component": "news_refresher",
		"schedule":  schedule,
		"cities":    r.cities,
	}).Info("danger zone refresher started")
	return nil
}

// Stop останавливает расписание и ждет завершения текущего запуска
func (r *Refresher) Stop() {
	<-r.cron.Stop().Done()
}
