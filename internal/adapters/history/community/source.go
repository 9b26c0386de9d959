package community

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
)

const maxPageBytes = 8 << 20

// Source scrapes the profile's inventory history pages with the bot's web session cookies.
type Source struct {
	historyURL     string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.HistorySource = (*Source)(nil)

func NewSource(communityURL, profileID string, session domain.WebSession, timeout time.Duration) (*Source, error) {
	if profileID == "" {
		return nil, errors.New("profile id is required")
	}

	base, err := url.Parse(strings.TrimRight(communityURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse community url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, errors.New("community url must use http or https")
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}
	jar.SetCookies(base, parseCookies(session.Cookies))

	return &Source{
		historyURL:     base.String() + "/id/" + url.PathEscape(profileID) + "/inventoryhistory/",
		HTTPClient:     &http.Client{Jar: jar},
		RequestTimeout: timeout,
	}, nil
}

func (s *Source) PageURL(number int) string {
	return s.historyURL + "?p=" + strconv.Itoa(number)
}

func (s *Source) Page(ctx context.Context, number int) (domain.HistoryPage, error) {
	requestCtx, cancel := s.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, s.PageURL(number), nil)
	if err != nil {
		return domain.HistoryPage{}, fmt.Errorf("create history request: %w", err)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return domain.HistoryPage{}, fmt.Errorf("request history page %d: %w", number, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.HistoryPage{}, fmt.Errorf("request history page %d: status %d", number, resp.StatusCode)
	}

	return ParsePage(io.LimitReader(resp.Body, maxPageBytes))
}

// ParsePage extracts the trade groups of one history page and whether a next page exists.
func ParsePage(r io.Reader) (domain.HistoryPage, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return domain.HistoryPage{}, fmt.Errorf("parse history page: %w", err)
	}

	var page domain.HistoryPage
	doc.Find(".pagebtn").Each(func(_ int, btn *goquery.Selection) {
		if strings.TrimSpace(btn.Text()) == ">" && !btn.HasClass("disabled") {
			page.HasNext = true
		}
	})

	doc.Find(".tradehistoryrow").Each(func(_ int, row *goquery.Selection) {
		user, _ := row.Find(".tradehistory_event_description a").Attr("href")
		page.Groups = append(page.Groups, domain.HistoryGroup{
			Date:     strings.TrimSpace(row.Find(".tradehistory_date").Text()),
			Time:     strings.TrimSpace(row.Find(".tradehistory_timestamp").Text()),
			User:     user,
			Received: itemNames(row.Find(".tradehistory_items_received .history_item .history_item_name")),
			Given:    itemNames(row.Find(".tradehistory_items_given .history_item .history_item_name")),
		})
	})

	return page, nil
}

func itemNames(sel *goquery.Selection) []string {
	return sel.Map(func(_ int, item *goquery.Selection) string {
		return strings.TrimSpace(item.Text())
	})
}

// parseCookies turns "name=value" strings into cookies, splitting on the first '='.
func parseCookies(raw []string) []*http.Cookie {
	cookies := make([]*http.Cookie, 0, len(raw))
	for _, entry := range raw {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || name == "" {
			continue
		}
		if i := strings.Index(value, ";"); i >= 0 {
			value = value[:i]
		}
		cookies = append(cookies, &http.Cookie{Name: strings.TrimSpace(name), Value: value})
	}
	return cookies
}

func (s *Source) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := s.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return context.WithTimeout(ctx, timeout)
}
