package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/shenikar/geo_safety_system/internal/models"
	"github.com/shenikar/geo_safety_system/internal/scoring"
)

// PoliceFeed адаптер открытого API полиции (data.police.uk)
type PoliceFeed struct {
	name       string
	baseURL    string
	httpClient *http.Client
}

func NewPoliceFeed(name, baseURL string, timeout time.Duration) *PoliceFeed {
	return &PoliceFeed{
		name:       name,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// StreetCrime запись crimes-street в формате внешнего API
type StreetCrime struct {
	ID           int64  `json:"id"`
	PersistentID string `json:"persistent_id"`
	Category     string `json:"category"`
	Month        string `json:"month"`
	Location     struct {
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
		Street    struct {
			Name string `json:"name"`
		} `json:"street"`
	} `json:"location"`
}

func (f *PoliceFeed) Name() string {
	return f.name
}

// Incidents запрашивает преступления вокруг центра запроса и оставляет
// только попавшие в его ограничивающий прямоугольник и окно q.Since.
// Записи датированы месяцем, поэтому месяц берется, если он пересекает окно.
func (f *PoliceFeed) Incidents(ctx context.Context, q models.IncidentQuery) ([]models.Incident, error) {
	records, err := f.fetch(ctx, q.Center.Lat, q.Center.Lng)
	if err != nil {
		return nil, err
	}

	incidents := make([]models.Incident, 0, len(records))
	for _, r := range records {
		inc, ok := f.toIncident(r)
		if !ok || !q.Box.Contains(inc.Latitude, inc.Longitude) {
			continue
		}
		if !q.Since.IsZero() && !inc.OccurredAt.AddDate(0, 1, 0).After(q.Since) {
			continue
		}
		incidents = append(incidents, inc)
		if q.Limit > 0 && len(incidents) >= q.Limit {
			break
		}
	}
	return incidents, nil
}

func (f *PoliceFeed) fetch(ctx context.Context, lat, lng float64) ([]StreetCrime, error) {
	reqURL, err := url.Parse(f.baseURL + "/crimes-street/all-crime")
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	q := reqURL.Query()
	q.Set("lat", strconv.FormatFloat(lat, 'f', 6, 64))
	q.Set("lng", strconv.FormatFloat(lng, 'f', 6, 64))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var records []StreetCrime
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return records, nil
}

func (f *PoliceFeed) toIncident(r StreetCrime) (models.Incident, bool) {
	lat, err := strconv.ParseFloat(r.Location.Latitude, 64)
	if err != nil {
		return models.Incident{}, false
	}
	lng, err := strconv.ParseFloat(r.Location.Longitude, 64)
	if err != nil {
		return models.Incident{}, false
	}
	// month приходит как "2024-05"; без даты берем начало месяца
	occurred, err := time.Parse("2006-01", r.Month)
	if err != nil {
		return models.Incident{}, false
	}

	externalID := strconv.FormatInt(r.ID, 10)
	return models.Incident{
		ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(f.name+":"+externalID)),
		ExternalID:  externalID,
		Latitude:    lat,
		Longitude:   lng,
		Category:    scoring.MapExternalCategory(r.Category),
		Severity:    scoring.MapExternalSeverity(r.Category),
		Description: r.Location.Street.Name,
		OccurredAt:  occurred,
		Source:      f.name,
		CreatedAt:   occurred,
	}, true
}
