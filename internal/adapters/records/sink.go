package records

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
)

const maxResponseBytes = 1 << 20

var ErrNotFound = errors.New("record not found")

// HTTPSink talks to the record-keeping service over plain HTTP.
type HTTPSink struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.RecordSink = (*HTTPSink)(nil)

// UserRecord is the service's view of one counterparty.
type UserRecord struct {
	ID            string `json:"_id"`
	IsBlacklisted bool   `json:"isBlacklisted"`
	LastAddedTime string `json:"lastAddedTime,omitempty"`
}

// DailyTrades summarises one counterparty's trades for the current day.
type DailyTrades struct {
	Day             string `json:"day"`
	NumItemsClaimed int    `json:"numItemsClaimed"`
	NumItemsDonated int    `json:"numItemsDonated"`
}

type itemBody struct {
	Name string `json:"name,omitempty"`
}

func NewHTTPSink(baseURL string, timeout time.Duration) *HTTPSink {
	return &HTTPSink{BaseURL: baseURL, RequestTimeout: timeout}
}

func (s *HTTPSink) UserAdded(ctx context.Context, id domain.UserID) error {
	return s.post(ctx, userPath(id, "added"), nil)
}

func (s *HTTPSink) UserRemoved(ctx context.Context, id domain.UserID) error {
	return s.post(ctx, userPath(id, "removed"), nil)
}

func (s *HTTPSink) TradeAccepted(ctx context.Context, id domain.UserID) error {
	return s.post(ctx, userPath(id, "trade-accepted"), nil)
}

func (s *HTTPSink) TradeDeclined(ctx context.Context, id domain.UserID) error {
	return s.post(ctx, userPath(id, "trade-declined"), nil)
}

func (s *HTTPSink) PostTradeItem(ctx context.Context, record domain.TradeItemRecord) error {
	path := "/trade/" + url.PathEscape(string(record.User)) +
		"/" + url.PathEscape(record.TradeID) +
		"/" + url.PathEscape(record.Item.CompositeID()) +
		"/" + strconv.FormatBool(record.Claimed)

	return s.post(ctx, path, itemBody{Name: record.Item.Name})
}

func (s *HTTPSink) User(ctx context.Context, id domain.UserID) (UserRecord, error) {
	var record UserRecord
	err := s.get(ctx, "/user/"+url.PathEscape(string(id)), &record)
	return record, err
}

func (s *HTTPSink) Friends(ctx context.Context) ([]UserRecord, error) {
	var records []UserRecord
	err := s.get(ctx, "/users/friends", &records)
	return records, err
}

// DailyTrades returns nil when the user has not traded today.
func (s *HTTPSink) DailyTrades(ctx context.Context, id domain.UserID) (*DailyTrades, error) {
	var trades *DailyTrades
	err := s.get(ctx, "/daily-trades/"+url.PathEscape(string(id)), &trades)
	return trades, err
}

func userPath(id domain.UserID, action string) string {
	return "/user/" + url.PathEscape(string(id)) + "/" + action
}

func (s *HTTPSink) post(ctx context.Context, path string, body any) error {
	endpoint, err := s.endpoint(path)
	if err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode record body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	requestCtx, cancel := s.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create record request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("post %s: status %d", path, resp.StatusCode)
	}

	return nil
}

func (s *HTTPSink) get(ctx context.Context, path string, out any) error {
	endpoint, err := s.endpoint(path)
	if err != nil {
		return err
	}

	requestCtx, cancel := s.requestContext(ctx)
	defer cancel()
	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create record request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("get %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("get %s: %w", path, ErrNotFound)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("get %s: status %d", path, resp.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}

	return nil
}

func (s *HTTPSink) endpoint(path string) (string, error) {
	if s.BaseURL == "" {
		return "", errors.New("record service url is required")
	}

	parsed, err := url.Parse(s.BaseURL)
	if err != nil {
		return "", fmt.Errorf("parse record service url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("record service url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("record service url host is required")
	}

	return strings.TrimRight(parsed.String(), "/") + path, nil
}

func (s *HTTPSink) httpClient() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return http.DefaultClient
}

func (s *HTTPSink) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := s.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}
