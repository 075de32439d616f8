// Package stats — клиент внешнего сервиса статистики обращений.
// Счетчики просмотров используются только для отображения.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/wb-go/wbf/logger"
)

const (
	dateTimeLayout = "2006-01-02 15:04:05"

	// Просмотры считаются за последние 60 дней по уникальным IP.
	viewWindow = 60 * 24 * time.Hour
)

type hitDto struct {
	App       string `json:"app"`
	URI       string `json:"uri"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

type viewStatsDto struct {
	App  string `json:"app"`
	URI  string `json:"uri"`
	Hits int64  `json:"hits"`
}

type Client struct {
	baseURL string
	app     string
	http    *http.Client
	logger  logger.Logger
}

// New возвращает клиент статистики. При пустом baseURL клиент работает
// как заглушка: обращения не записываются, счетчики пустые.
func New(baseURL, app string, log logger.Logger) *Client {
	if baseURL == "" {
		log.Warn("stats service url is empty, view counters disabled")
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		app:     app,
		http:    &http.Client{Timeout: 5 * time.Second},
		logger:  log,
	}
}

// RecordHit отправляет факт обращения. Ответ сервиса статистики ни на что
// не влияет, поэтому ошибки только логируются.
func (c *Client) RecordHit(ctx context.Context, uri, ip string) {
	if c.baseURL == "" {
		return
	}

	body, err := json.Marshal(hitDto{
		App:       c.app,
		URI:       uri,
		IP:        ip,
		Timestamp: time.Now().UTC().Format(dateTimeLayout),
	})
	if err != nil {
		c.logger.Error("failed to marshal hit", logger.String("error", err.Error()))
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/hit", bytes.NewReader(body))
	if err != nil {
		c.logger.Error("failed to build hit request", logger.String("error", err.Error()))
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("failed to record hit",
			logger.String("uri", uri),
			logger.String("error", err.Error()),
		)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		c.logger.Error("stats service rejected hit",
			logger.String("uri", uri),
			logger.Int("status", resp.StatusCode),
		)
	}
}

// ViewCounts возвращает счетчики уникальных просмотров страниц событий.
// События без просмотров в результате отсутствуют.
func (c *Client) ViewCounts(ctx context.Context, eventIDs []int64) (map[int64]int64, error) {
	if c.baseURL == "" || len(eventIDs) == 0 {
		return map[int64]int64{}, nil
	}

	uris := make([]string, len(eventIDs))
	for i, id := range eventIDs {
		uris[i] = "/events/" + strconv.FormatInt(id, 10)
	}

	now := time.Now().UTC()
	params := url.Values{}
	params.Set("start", now.Add(-viewWindow).Format(dateTimeLayout))
	params.Set("end", now.Format(dateTimeLayout))
	params.Set("uris", strings.Join(uris, ","))
	params.Set("unique", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build stats request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("stats service returned status %d", resp.StatusCode)
	}

	var stats []viewStatsDto
	if err = json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("decode stats: %w", err)
	}

	res := make(map[int64]int64, len(stats))
	for _, s := range stats {
		id, err := strconv.ParseInt(strings.TrimPrefix(s.URI, "/events/"), 10, 64)
		if err != nil {
			continue
		}
		res[id] = s.Hits
	}

	return res, nil
}
