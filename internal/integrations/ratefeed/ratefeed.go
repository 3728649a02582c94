// Package ratefeed reads the central bank reference rate from a SOAP/XML feed.
package ratefeed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
)

// ErrNotConfigured is returned when no feed URL is set
var ErrNotConfigured = errors.New("reference rate feed is not configured, set RATE_FEED_URL")

// DefaultCacheTTL bounds how often the feed is actually queried
const DefaultCacheTTL = time.Hour

// Rate is the latest published reference rate plus the bank margin
type Rate struct {
	PolicyRate    float64   `json:"policy_rate"`
	Margin        float64   `json:"margin"`
	EffectiveRate float64   `json:"effective_rate"`
	EffectiveDate time.Time `json:"effective_date"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// MarketContext renders the rate as one line for prompts
func (r Rate) MarketContext() string {
	return fmt.Sprintf("Overnight policy rate %.2f%% effective %s; bank lending reference %.2f%% including %.2f%% margin.",
		r.PolicyRate, r.EffectiveDate.Format("2006-01-02"), r.EffectiveRate, r.Margin)
}

// Client handles integration with the reference rate feed
type Client struct {
	url    string
	margin float64
	ttl    time.Duration
	client *http.Client
	log    *logrus.Logger

	mu     sync.Mutex
	cached *Rate
}

// NewClient initializes a new rate feed client
func NewClient(url string, margin float64, log *logrus.Logger) *Client {
	return &Client{
		url:    url,
		margin: margin,
		ttl:    DefaultCacheTTL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// buildSOAPRequest creates a SOAP request for the rate history of the last 30 days
func (c *Client) buildSOAPRequest(now time.Time) string {
	fromDate := now.AddDate(0, 0, -30).Format("2006-01-02")
	toDate := now.Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<PolicyRate>
					<fromDate>%s</fromDate>
					<toDate>%s</toDate>
				</PolicyRate>
			</soap12:Body>
		</soap12:Envelope>`, fromDate, toDate)
}

// sendRequest posts the SOAP envelope to the feed
func (c *Client) sendRequest(ctx context.Context, soapRequest string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBufferString(soapRequest))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "PolicyRate")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("Rate feed XML response: %s", string(body))
	return body, nil
}

// parseXMLResponse picks the entry with the latest date
func parseXMLResponse(rawBody []byte) (float64, time.Time, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, time.Time{}, fmt.Errorf("failed to parse XML: %w", err)
	}

	entries := doc.FindElements("//PolicyRates/Rate")
	if len(entries) == 0 {
		return 0, time.Time{}, fmt.Errorf("no policy rate data found in XML")
	}

	var (
		latest float64
		date   time.Time
		found  bool
	)
	for _, entry := range entries {
		dateEl := entry.FindElement("./Date")
		valueEl := entry.FindElement("./Value")
		if dateEl == nil || valueEl == nil {
			continue
		}
		d, err := time.Parse("2006-01-02", strings.TrimSpace(dateEl.Text()))
		if err != nil {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(valueEl.Text()), 64)
		if err != nil {
			continue
		}
		if !found || d.After(date) {
			latest, date, found = v, d, true
		}
	}
	if !found {
		return 0, time.Time{}, fmt.Errorf("rate element not found in XML")
	}
	return latest, date, nil
}

// GetRate returns the latest reference rate with the bank margin added. Results are cached for the TTL.
func (c *Client) GetRate(ctx context.Context) (*Rate, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cached != nil && time.Since(c.cached.FetchedAt) < c.ttl {
		r := *c.cached
		return &r, nil
	}

	now := time.Now()
	body, err := c.sendRequest(ctx, c.buildSOAPRequest(now))
	if err != nil {
		return nil, err
	}

	policy, date, err := parseXMLResponse(body)
	if err != nil {
		return nil, err
	}

	rate := &Rate{
		PolicyRate:    policy,
		Margin:        c.margin,
		EffectiveRate: policy + c.margin,
		EffectiveDate: date,
		FetchedAt:     now,
	}
	c.cached = rate

	c.log.Infof("Retrieved policy rate: %.2f%% (%.2f%% including %.2f%% bank margin)", policy, rate.EffectiveRate, c.margin)
	r := *rate
	return &r, nil
}
