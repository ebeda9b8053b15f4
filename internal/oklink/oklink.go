package oklink

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/ratelimit"

	"github.com/dwarvesf/unisat-ctc-exporter/internal/consts"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/config"
	"github.com/dwarvesf/unisat-ctc-exporter/internal/utils/logger"
)

type okLink struct {
	baseURL        string
	apiKey         string
	pageLimit      int
	maxRetries     int
	retryDelay     time.Duration
	rateLimitDelay time.Duration
	client         *http.Client
	limiter        ratelimit.Limiter
	logger         *logger.Logger
}

func New(cfg *config.AppConfig, apiKey string, logger *logger.Logger) IOkLink {
	return &okLink{
		baseURL:        cfg.OkLink.APIBaseURL,
		apiKey:         apiKey,
		pageLimit:      cfg.OkLink.PageLimit,
		maxRetries:     cfg.OkLink.MaxRetries,
		retryDelay:     cfg.OkLink.RetryDelay,
		rateLimitDelay: cfg.OkLink.RateLimitDelay,
		client:         &http.Client{},
		limiter:        ratelimit.New(cfg.OkLink.RequestsPerSecond),
		logger:         logger,
	}
}

func (c *okLink) GetInscriptionsByAddress(address string, page int) (*Page, error) {
	reqURL := fmt.Sprintf("%s%s?page=%d&limit=%d&address=%s",
		c.baseURL, consts.OKLINK_BTC_TX_LIST_PATH, page, c.pageLimit, url.QueryEscape(address))

	var lastErr error

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		c.limiter.Take()

		req, err := http.NewRequest("GET", reqURL, nil)
		if err != nil {
			return nil, &NetworkError{Op: "create request", Err: err}
		}
		req.Header.Add(consts.OKLINK_ACCESS_KEY_HEADER, c.apiKey)
		req.Header.Add("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = &NetworkError{Op: "get inscriptions", Err: err}
			c.logger.Error("[GetInscriptionsByAddress][client.Do]", map[string]string{
				"error":   err.Error(),
				"attempt": strconv.Itoa(attempt),
			})
			time.Sleep(time.Duration(attempt) * c.retryDelay)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = &NetworkError{Op: "read response body", Err: err}
			c.logger.Error("[GetInscriptionsByAddress][io.ReadAll]", map[string]string{
				"error":   err.Error(),
				"attempt": strconv.Itoa(attempt),
			})
			continue
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
			return nil, &AuthError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = &RateLimitError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(body))}
			c.logger.Warn("[GetInscriptionsByAddress] rate limited", map[string]string{
				"attempt": strconv.Itoa(attempt),
			})
			time.Sleep(c.rateLimitDelay)
			continue
		case resp.StatusCode != http.StatusOK:
			lastErr = &NetworkError{Op: "get inscriptions", Err: fmt.Errorf("unexpected status code: %d", resp.StatusCode)}
			c.logger.Error("[GetInscriptionsByAddress][client.Do]", map[string]string{
				"error":      lastErr.Error(),
				"statusCode": strconv.Itoa(resp.StatusCode),
				"attempt":    strconv.Itoa(attempt),
			})
			time.Sleep(time.Duration(attempt) * c.retryDelay)
			continue
		}

		var raw rawResponse
		if err := json.Unmarshal(body, &raw); err != nil {
			lastErr = &NetworkError{Op: "parse response", Err: err}
			c.logger.Error("[GetInscriptionsByAddress][json.Unmarshal]", map[string]string{
				"error":   err.Error(),
				"attempt": strconv.Itoa(attempt),
				"body":    string(body),
			})
			continue
		}

		if raw.Code != "0" {
			// 501xx codes are key problems (missing, invalid, expired).
			if strings.HasPrefix(raw.Code, "501") {
				return nil, &AuthError{StatusCode: resp.StatusCode, Code: raw.Code, Message: raw.Msg}
			}
			return nil, fmt.Errorf("oklink API error (code %s): %s", raw.Code, raw.Msg)
		}

		if len(raw.Data) == 0 {
			return nil, fmt.Errorf("no pagination data in response")
		}

		return raw.Data[0].toPage()
	}

	return nil, lastErr
}
