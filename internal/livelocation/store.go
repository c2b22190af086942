package livelocation

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/models"
)

// Store реестр живых геолокаций с ограниченным временем жизни.
// Просроченные записи не отдаются и удаляются фоновой очисткой.
type Store struct {
	mu     sync.RWMutex
	shares map[string]models.LocationShare
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time
}

func NewStore(ttl time.Duration, logger *logrus.Logger) *Store {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Store{
		shares: make(map[string]models.LocationShare),
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Put сохраняет или обновляет запись и продлевает ее срок жизни
func (s *Store) Put(share models.LocationShare) models.LocationShare {
	now := s.now()
	share.UpdatedAt = now
	share.ExpiresAt = now.Add(s.ttl)

	s.mu.Lock()
	s.shares[share.ID] = share
	s.mu.Unlock()
	return share
}

// PutIfOwner сохраняет запись, если под ее ID нет действующей записи другого
// пользователя. Проверка и запись выполняются под одной блокировкой.
func (s *Store) PutIfOwner(share models.LocationShare) (models.LocationShare, bool) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.shares[share.ID]; ok && now.Before(existing.ExpiresAt) && existing.UserID != share.UserID {
		return models.LocationShare{}, false
	}
	share.UpdatedAt = now
	share.ExpiresAt = now.Add(s.ttl)
	s.shares[share.ID] = share
	return share, true
}

func (s *Store) Get(id string) (models.LocationShare, bool) {
	s.mu.RLock()
	share, ok := s.shares[id]
	s.mu.RUnlock()

	if !ok || !s.now().Before(share.ExpiresAt) {
		return models.LocationShare{}, false
	}
	return share, true
}

func (s *Store) Delete(id string) {
	s.mu.Lock()
	delete(s.shares, id)
	s.mu.Unlock()
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.shares)
}

// Sweep удаляет просроченные записи, возвращает их количество
func (s *Store) Sweep() int {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, share := range s.shares {
		if !now.Before(share.ExpiresAt) {
			delete(s.shares, id)
			removed++
		}
	}
	return removed
}

// Run запускает периодическую очистку до отмены контекста
func (s *Store) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	s.logger.WithField("interval", interval.String()).Info("live location sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("live location sweeper stopped")
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.WithField("removed", n).Debug("expired location shares removed")
			}
		}
	}
}
