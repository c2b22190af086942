package news

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/geo_safety_system/internal/models"
)

// DefaultRefreshInterval как часто пересчитываются зоны города
const DefaultRefreshInterval = 30 * time.Minute

// ZoneLoader пересчитывает зоны города
type ZoneLoader func(ctx context.Context) ([]models.DangerZone, error)

type zoneEntry struct {
	zones       []models.DangerZone
	refreshedAt time.Time
	// attemptedAt время последней попытки пересчета, в том числе неудачной
	attemptedAt time.Time
	lastErr     error
}

// ZoneCache кэш опасных зон по городам. Пересчет выполняется не чаще interval;
// параллельные запросы могут пересчитать один город дважды, запись атомарна.
type ZoneCache struct {
	mu       sync.RWMutex
	entries  map[string]zoneEntry
	interval time.Duration
	now      func() time.Time
}

func NewZoneCache(interval time.Duration) *ZoneCache {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}
	return &ZoneCache{
		entries:  make(map[string]zoneEntry),
		interval: interval,
		now:      time.Now,
	}
}

// Get отдает зоны из кэша или пересчитывает их через load. Пересчет города,
// удачный или нет, выполняется не чаще interval: после неудачной попытки до конца
// интервала отдаются устаревшие зоны (если есть) вместе с ошибкой этой попытки.
func (c *ZoneCache) Get(ctx context.Context, city string, load ZoneLoader) ([]models.DangerZone, error) {
	c.mu.RLock()
	entry, ok := c.entries[city]
	c.mu.RUnlock()

	if ok && c.now().Sub(entry.attemptedAt) < c.interval {
		return entry.zones, entry.lastErr
	}
	return c.refresh(ctx, city, load)
}

// Refresh принудительно пересчитывает зоны города
func (c *ZoneCache) Refresh(ctx context.Context, city string, load ZoneLoader) ([]models.DangerZone, error) {
	return c.refresh(ctx, city, load)
}

func (c *ZoneCache) refresh(ctx context.Context, city string, load ZoneLoader) ([]models.DangerZone, error) {
	zones, err := load(ctx)
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()
	entry := c.entries[city]
	entry.attemptedAt = now
	entry.lastErr = err
	if err == nil {
		entry.zones = zones
		entry.refreshedAt = now
	}
	c.entries[city] = entry
	return entry.zones, err
}

// RefreshedAt время последнего успешного пересчета
func (c *ZoneCache) RefreshedAt(city string) (time.Time, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[city]
	if !ok || e.refreshedAt.IsZero() {
		return time.Time{}, false
	}
	return e.refreshedAt, true
}
