package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/geo_safety_system/internal/geo"
	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/service"
)

// MemoryIncidentStore хранилище инцидентов в памяти процесса (STORAGE_BACKEND=memory)
type MemoryIncidentStore struct {
	mu        sync.RWMutex
	incidents []models.Incident
	now       func() time.Time
}

func NewMemoryIncidentStore() *MemoryIncidentStore {
	return &MemoryIncidentStore{now: time.Now}
}

var _ service.IncidentStore = (*MemoryIncidentStore)(nil)

func (s *MemoryIncidentStore) Create(_ context.Context, incident *models.Incident) error {
	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}
	incident.CreatedAt = s.now()

	s.mu.Lock()
	s.incidents = append(s.incidents, *incident)
	s.mu.Unlock()
	return nil
}

func (s *MemoryIncidentStore) Find(ctx context.Context, q models.IncidentQuery) ([]models.Incident, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	out := make([]models.Incident, 0)
	for _, inc := range s.incidents {
		if q.Box.Contains(inc.Latitude, inc.Longitude) && !inc.OccurredAt.Before(q.Since) {
			out = append(out, inc)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out, nil
}

// MemoryRatingStore хранилище оценок в памяти процесса
type MemoryRatingStore struct {
	mu      sync.RWMutex
	ratings []models.Rating
	now     func() time.Time
}

func NewMemoryRatingStore() *MemoryRatingStore {
	return &MemoryRatingStore{now: time.Now}
}

var _ service.RatingStore = (*MemoryRatingStore)(nil)

func (s *MemoryRatingStore) Create(_ context.Context, rating *models.Rating) error {
	if rating.ID == uuid.Nil {
		rating.ID = uuid.New()
	}
	if rating.CreatedAt.IsZero() {
		rating.CreatedAt = s.now()
	}

	s.mu.Lock()
	s.ratings = append(s.ratings, *rating)
	s.mu.Unlock()
	return nil
}

func (s *MemoryRatingStore) Find(ctx context.Context, box geo.BoundingBox, since time.Time) ([]models.Rating, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Rating, 0)
	for i := len(s.ratings) - 1; i >= 0; i-- {
		r := s.ratings[i]
		if box.Contains(r.Latitude, r.Longitude) && !r.CreatedAt.Before(since) {
			out = append(out, r)
		}
	}
	return out, nil
}
