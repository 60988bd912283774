package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Spreadsheet column headers. Rows are keyed by the header row, so column
// order in the sheet does not matter.
const (
	headerPostID      = "Post ID"
	headerProductName = "Product Name"
	headerPrice       = "Price"
)

// ErrUnavailable indicates the catalog store could not be reached. Callers
// must map it to the same user-facing apology as a missing row.
var ErrUnavailable = errors.New("catalog unavailable")

// ErrNotFound indicates no usable catalog row exists for the post.
var ErrNotFound = errors.New("product not found")

const catalogReadTimeout = 10 * time.Second

// CatalogRow is one product entry from the spreadsheet. All cells are kept as
// strings; the sheet is edited by hand and prices may carry units or text.
type CatalogRow struct {
	PostID      string
	ProductName string
	Price       string
}

// CatalogClient reads the product catalog from a Google Sheet. It re-reads
// the full range on every lookup so edits take effect on the next request.
type CatalogClient struct {
	svc           *sheets.Service
	spreadsheetID string
	readRange     string
}

// NewCatalogClient authorizes against the Sheets API with service-account
// credentials. Built once at startup and injected into handlers.
func NewCatalogClient(ctx context.Context, credentialsJSON, spreadsheetID, readRange string) (*CatalogClient, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON([]byte(credentialsJSON)),
		option.WithScopes(sheets.SpreadsheetsReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &CatalogClient{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
	}, nil
}

// Rows fetches all catalog rows, keyed by the header row. Rows shorter than
// the header are padded with empty cells.
func (c *CatalogClient) Rows(ctx context.Context) ([]CatalogRow, error) {
	ctx, cancel := context.WithTimeout(ctx, catalogReadTimeout)
	defer cancel()

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, c.readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}

	columns := map[string]int{}
	for i, cell := range resp.Values[0] {
		columns[strings.TrimSpace(fmt.Sprint(cell))] = i
	}

	cellAt := func(row []interface{}, header string) string {
		idx, ok := columns[header]
		if !ok || idx >= len(row) {
			return ""
		}
		return fmt.Sprint(row[idx])
	}

	rows := make([]CatalogRow, 0, len(resp.Values)-1)
	for _, raw := range resp.Values[1:] {
		rows = append(rows, CatalogRow{
			PostID:      cellAt(raw, headerPostID),
			ProductName: cellAt(raw, headerProductName),
			Price:       cellAt(raw, headerPrice),
		})
	}
	return rows, nil
}

// FindByPostID returns the first row whose post ID matches postID, comparing
// both sides trimmed. The sheet does not guarantee unique post IDs; on
// duplicates the earliest row wins. A matching row with an empty product name
// or price is treated as not found, since it cannot produce a priced reply.
func FindByPostID(rows []CatalogRow, postID string) (CatalogRow, error) {
	want := strings.TrimSpace(postID)
	if want == "" {
		return CatalogRow{}, ErrNotFound
	}

	for _, row := range rows {
		if strings.TrimSpace(row.PostID) != want {
			continue
		}
		if strings.TrimSpace(row.ProductName) == "" || strings.TrimSpace(row.Price) == "" {
			return CatalogRow{}, ErrNotFound
		}
		return row, nil
	}
	return CatalogRow{}, ErrNotFound
}

// Lookup reads the catalog and finds the row for postID. It returns
// ErrUnavailable when the sheet cannot be read and ErrNotFound when no usable
// row matches.
func (c *CatalogClient) Lookup(ctx context.Context, postID string) (CatalogRow, error) {
	if strings.TrimSpace(postID) == "" {
		return CatalogRow{}, ErrNotFound
	}

	rows, err := c.Rows(ctx)
	if err != nil {
		return CatalogRow{}, err
	}
	return FindByPostID(rows, postID)
}
