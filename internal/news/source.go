package news

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/geo_safety_system/internal/models"
)

// ArticleSource источник статей по городу
type ArticleSource interface {
	FetchArticles(ctx context.Context, city City) ([]models.Article, error)
}

// ArticleCache хранилище результатов по городу и временному окну
type ArticleCache interface {
	GetArticles(ctx context.Context, key string) ([]models.Article, bool, error)
	SetArticles(ctx context.Context, key string, articles []models.Article, ttl time.Duration) error
}

const newsPageSize = 50

// NewsAPISource клиент newsapi.org-совместимого API
type NewsAPISource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewNewsAPISource(baseURL, apiKey string, timeout time.Duration) *NewsAPISource {
	return &NewsAPISource{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type newsAPIResponse struct {
	Status   string `json:"status"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	Articles []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Content     string    `json:"content"`
		URL         string    `json:"url"`
		PublishedAt time.Time `json:"publishedAt"`
	} `json:"articles"`
}

func (s *NewsAPISource) FetchArticles(ctx context.Context, city City) ([]models.Article, error) {
	reqURL, err := url.Parse(s.baseURL + "/everything")
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	q := reqURL.Query()
	q.Set("q", fmt.Sprintf("%q AND (crime OR police OR attack OR robbery)", city.Name))
	q.Set("language", "en")
	q.Set("sortBy", "publishedAt")
	q.Set("pageSize", strconv.Itoa(newsPageSize))
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	var body newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK || body.Status != "ok" {
		return nil, fmt.Errorf("news api: status %d: %s %s", resp.StatusCode, body.Code, body.Message)
	}

	articles := make([]models.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, models.Article{
			ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(a.URL)).String(),
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
		})
	}
	return articles, nil
}

// SyntheticSourceName статьи демо-генератора, не являются достоверными данными
const SyntheticSourceName = "synthetic"

var syntheticHeadlines = []struct {
	title string
	body  string
}{
	{"Robbery reported near %s", "Police are investigating a robbery near %s late last night."},
	{"Theft on the rise around %s", "Residents around %s report a series of phone theft incidents."},
	{"Assault outside bar in %s", "A man was injured in an assault outside a bar in %s."},
	{"Traffic accident in %s", "An accident involving two cars closed roads in %s."},
	{"Community festival in %s", "Families gathered for a weekend festival in %s."},
	{"Shooting investigated in %s", "Police cordoned off streets in %s after a shooting."},
}

// SyntheticSource генерирует детерминированные демо-статьи для города
// в пределах временного окна. Используется только без ключа News API.
type SyntheticSource struct {
	bucket time.Duration
	now    func() time.Time
}

func NewSyntheticSource(bucket time.Duration) *SyntheticSource {
	if bucket <= 0 {
		bucket = 15 * time.Minute
	}
	return &SyntheticSource{bucket: bucket, now: time.Now}
}

func (s *SyntheticSource) FetchArticles(_ context.Context, city City) ([]models.Article, error) {
	if len(city.Places) == 0 {
		return nil, nil
	}
	window := s.now().Truncate(s.bucket)

	h := fnv.New64a()
	h.Write([]byte(city.Key))
	h.Write([]byte(strconv.FormatInt(window.Unix(), 10)))
	rng := rand.New(rand.NewSource(int64(h.Sum64())))

	n := 3 + rng.Intn(4)
	articles := make([]models.Article, 0, n)
	for i := 0; i < n; i++ {
		place := city.Places[rng.Intn(len(city.Places))]
		tpl := syntheticHeadlines[rng.Intn(len(syntheticHeadlines))]
		u := fmt.Sprintf("synthetic://%s/%d/%d", city.Key, window.Unix(), i)
		articles = append(articles, models.Article{
			ID:          uuid.NewSHA1(uuid.NameSpaceURL, []byte(u)).String(),
			Title:       fmt.Sprintf(tpl.title, place.Name),
			Description: fmt.Sprintf(tpl.body, place.Name),
			URL:         u,
			Source:      SyntheticSourceName,
			PublishedAt: window.Add(-time.Duration(rng.Intn(48)) * time.Hour),
		})
	}
	return articles, nil
}

// CachedSource кэширует ответы источника по городу и временному окну
type CachedSource struct {
	source ArticleSource
	cache  ArticleCache
	bucket time.Duration
	logger *logrus.Logger
	now    func() time.Time
}

func NewCachedSource(source ArticleSource, cache ArticleCache, bucket time.Duration, logger *logrus.Logger) *CachedSource {
	if bucket <= 0 {
		bucket = 15 * time.Minute
	}
	return &CachedSource{
		source: source,
		cache:  cache,
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// CacheKey ключ вида news:<город>:<начало окна>
func (s *CachedSource) CacheKey(city string) string {
	return fmt.Sprintf("news:%s:%d", city, s.now().Truncate(s.bucket).Unix())
}

func (s *CachedSource) FetchArticles(ctx context.Context, city City) ([]models.Article, error) {
	log := s.logger.WithFields(logrus.Fields{
		"component": "news",
		"method":    "FetchArticles",
		"city":      city.Key,
	})
	key := s.CacheKey(city.Key)

	cached, ok, err := s.cache.GetArticles(ctx, key)
	if err != nil {
		log.WithError(err).Warn("article cache read failed")
	} else if ok {
		return cached, nil
	}

	articles, err := s.source.FetchArticles(ctx, city)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetArticles(ctx, key, articles, s.bucket); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Warn("article cache write failed")
	}
	return articles, nil
}
