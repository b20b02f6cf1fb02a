// Package intake pulls citizen-reported issues from the external intake
// service and feeds them into the local store. The import is best-effort:
// if the service is down the dashboard keeps running on local data.
package intake

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"civicadmin-be/store"
)

// Client talks to the external citizen intake service.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds an intake client for the given base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// FetchReports retrieves the pending citizen reports.
func (c *Client) FetchReports(ctx context.Context) ([]store.ExternalReport, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/core/issue/", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("intake service returned status %d", resp.StatusCode)
	}

	var reports []store.ExternalReport
	if err := json.NewDecoder(resp.Body).Decode(&reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// Import runs the one-shot startup import into the issue store. Failures are
// logged and swallowed; the local issue set stays usable either way.
func Import(issues *store.IssueStore, baseURL string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := NewClient(baseURL)
	reports, err := client.FetchReports(ctx)
	if err != nil {
		log.Println("Intake import skipped:", err)
		return
	}

	added := issues.Ingest(reports)
	log.Printf("Imported %d issues from intake service", added)
}
