package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"digital-menu/internal/domain"
)

// sheetRange skips the header row; columns A..N map to the MenuItem fields in
// order.
const sheetRange = "Sheet1!A2:N"

// SheetsCatalog fetches the menu from a Google Sheet via the values endpoint.
// Missing credentials are a configuration error at construction time, not
// recoverable without operator intervention.
type SheetsCatalog struct {
	client  *http.Client
	baseURL string
	sheetID string
	apiKey  string
}

func NewSheetsCatalog(sheetID, apiKey string, client *http.Client) (*SheetsCatalog, error) {
	if sheetID == "" || apiKey == "" {
		return nil, fmt.Errorf("missing GOOGLE_SHEET_ID or GOOGLE_API_KEY")
	}
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &SheetsCatalog{
		client:  client,
		baseURL: "https://sheets.googleapis.com",
		sheetID: sheetID,
		apiKey:  apiKey,
	}, nil
}

func (s *SheetsCatalog) FetchCatalog(ctx context.Context) ([]domain.MenuItem, error) {
	endpoint := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?key=%s",
		s.baseURL, url.PathEscape(s.sheetID), url.PathEscape(sheetRange), url.QueryEscape(s.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets API returned status %d", resp.StatusCode)
	}

	var payload struct {
		Values [][]string `json:"values"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode sheet response: %w", err)
	}

	items := make([]domain.MenuItem, 0, len(payload.Values))
	for _, row := range payload.Values {
		items = append(items, rowToMenuItem(row))
	}
	return items, nil
}

func rowToMenuItem(row []string) domain.MenuItem {
	price, _ := domain.ParseCents(cell(row, 3))
	lastUpdated := cell(row, 13)
	if lastUpdated == "" {
		lastUpdated = time.Now().Format(time.RFC3339)
	}
	return domain.MenuItem{
		ID:              cell(row, 0),
		Name:            cell(row, 1),
		Description:     cell(row, 2),
		Price:           price,
		Photo:           cell(row, 4),
		Category:        cell(row, 5),
		Available:       cell(row, 6) == "yes",
		PreparationTime: atoi(cell(row, 7)),
		Ingredients:     cell(row, 8),
		Allergens:       cell(row, 9),
		PopularityScore: atoi(cell(row, 10)),
		Views:           atoi(cell(row, 11)),
		Orders:          atoi(cell(row, 12)),
		LastUpdated:     lastUpdated,
	}
}

func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
