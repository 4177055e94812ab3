package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"inventario-activos/utils"
)

// DefaultSheetsBaseURL is the Google Sheets values endpoint root.
const DefaultSheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// ErrRowNotFound is returned when no data row matches the requested
// identifier.
var ErrRowNotFound = errors.New("row not found for identifier")

// ValueRange is the wire format for sheet reads and writes: the first row
// is the header, data starts at row 2, and every cell is a string.
type ValueRange struct {
	Range          string     `json:"range,omitempty"`
	MajorDimension string     `json:"majorDimension,omitempty"`
	Values         [][]string `json:"values"`
}

// SheetsConfig identifies the backing spreadsheet and its sheet names.
type SheetsConfig struct {
	BaseURL       string
	SpreadsheetID string
	ItemSheet     string
	SaleSheet     string
	HistorySheet  string
	RoomSheet     string
}

// SheetsConfigFromEnv builds the sheet configuration from environment
// variables. SPREADSHEET_ID is required; sheet names have defaults.
func SheetsConfigFromEnv() (SheetsConfig, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return SheetsConfig{}, fmt.Errorf("SPREADSHEET_ID environment variable is not set")
	}

	baseURL := strings.TrimSpace(os.Getenv("SHEETS_BASE_URL"))
	if baseURL == "" {
		baseURL = DefaultSheetsBaseURL
	}

	envOrDefault := func(key, fallback string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	return SheetsConfig{
		BaseURL:       strings.TrimRight(baseURL, "/"),
		SpreadsheetID: spreadsheetID,
		ItemSheet:     envOrDefault("ITEM_SHEET_NAME", "Items"),
		SaleSheet:     envOrDefault("SALE_SHEET_NAME", "Sales"),
		HistorySheet:  envOrDefault("HISTORY_SHEET_NAME", "History"),
		RoomSheet:     envOrDefault("ROOM_SHEET_NAME", "Rooms"),
	}, nil
}

// SheetsService reads and writes value ranges of the backing spreadsheet.
// Writes always use USER_ENTERED value interpretation.
type SheetsService struct {
	client *Client
	cfg    SheetsConfig
}

// NewSheetsService creates a SheetsService over the shared transport.
func NewSheetsService(client *Client, cfg SheetsConfig) *SheetsService {
	return &SheetsService{client: client, cfg: cfg}
}

// Config returns the sheet configuration.
func (s *SheetsService) Config() SheetsConfig {
	return s.cfg
}

func (s *SheetsService) valuesURL(rangeA1 string, params url.Values) string {
	u := fmt.Sprintf("%s/%s/values/%s",
		s.cfg.BaseURL, url.PathEscape(s.cfg.SpreadsheetID), url.PathEscape(rangeA1))
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	return u
}

// GetValues fetches the full snapshot of one sheet.
func (s *SheetsService) GetValues(ctx context.Context, sheetName string) (ValueRange, error) {
	var out ValueRange
	if err := s.client.FetchAuthorized(ctx, s.valuesURL(sheetName, nil), &out); err != nil {
		return ValueRange{}, fmt.Errorf("failed to fetch sheet %q: %w", sheetName, err)
	}
	return out, nil
}

// UpdateRange issues a targeted update restricted to the given A1 range.
func (s *SheetsService) UpdateRange(ctx context.Context, rangeA1 string, values [][]string) error {
	params := url.Values{"valueInputOption": {"USER_ENTERED"}}
	payload := ValueRange{Range: rangeA1, MajorDimension: "ROWS", Values: values}

	req, err := s.client.AuthorizedRequest(ctx, http.MethodPut, s.valuesURL(rangeA1, params), payload)
	if err != nil {
		return err
	}
	if err := s.client.Send(req); err != nil {
		return fmt.Errorf("failed to update range %q: %w", rangeA1, err)
	}
	return nil
}

// AppendRow appends one row after the last data row of the sheet.
func (s *SheetsService) AppendRow(ctx context.Context, sheetName string, row []string) error {
	params := url.Values{"valueInputOption": {"USER_ENTERED"}}
	u := fmt.Sprintf("%s/%s/values/%s:append?%s",
		s.cfg.BaseURL, url.PathEscape(s.cfg.SpreadsheetID), url.PathEscape(sheetName), params.Encode())
	payload := ValueRange{MajorDimension: "ROWS", Values: [][]string{row}}

	req, err := s.client.AuthorizedRequest(ctx, http.MethodPost, u, payload)
	if err != nil {
		return err
	}
	if err := s.client.Send(req); err != nil {
		return fmt.Errorf("failed to append row to %q: %w", sheetName, err)
	}
	return nil
}

// SaveRow persists a keyed record row: fetch the sheet, locate the row by
// identifier, patch the covering range when found, append otherwise.
// If the locating fetch fails the operation fails fast; appending without
// locating would duplicate rows with the same identifier.
func (s *SheetsService) SaveRow(ctx context.Context, sheetName, id string, row []string) (bool, error) {
	vr, err := s.GetValues(ctx, sheetName)
	if err != nil {
		return false, fmt.Errorf("failed to locate row for %q: %w", id, err)
	}

	idx := utils.LocateRow(id, vr.Values)
	if idx >= 0 {
		rangeA1 := utils.RowRange(sheetName, idx, len(row))
		if err := s.UpdateRange(ctx, rangeA1, [][]string{row}); err != nil {
			return false, err
		}
		return true, nil
	}

	if err := s.AppendRow(ctx, sheetName, row); err != nil {
		return false, err
	}
	return false, nil
}
