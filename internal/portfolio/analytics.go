package portfolio

import (
	"context"
	"net/http"
)

// Snapshot is the server-computed visitor analytics aggregate. All numbers
// come precomputed; the gateway only renders them.
type Snapshot struct {
	Total     int            `json:"total"`
	Today     int            `json:"today"`
	ByCountry []CountryCount `json:"byCountry"`
	ByBrowser []BrowserCount `json:"byBrowser"`
	ByOS      []OSCount      `json:"byOs"`
	Recent    []Visitor      `json:"recent"`
	Daily     []DailyCount   `json:"daily"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int    `json:"count"`
}

type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int    `json:"count"`
}

type OSCount struct {
	OS    string `json:"os"`
	Count int    `json:"count"`
}

type Visitor struct {
	ID        int64  `json:"id"`
	IPAddress string `json:"ipAddress"`
	Country   string `json:"country"`
	City      string `json:"city"`
	Browser   string `json:"browser"`
	OS        string `json:"os"`
	VisitedAt string `json:"visitedAt"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Analytics fetches the visitor snapshot.
func (c *Client) Analytics(ctx context.Context, token string) (*Snapshot, error) {
	var snap Snapshot
	if err := c.doJSON(ctx, token, http.MethodGet, "/api/admin/analytics", nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}
