package infra

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsClient is the production implementation of store.SheetsAPI on top of
// the Google Sheets v4 API. Every call goes through the circuit breaker so a
// broken upstream fails fast instead of hanging the request pipeline.
type SheetsClient struct {
	svc           *sheets.Service
	spreadsheetID string
	cb            *CircuitBreaker

	mu       sync.Mutex
	sheetIDs map[string]int64 // tab title → numeric sheetId, for row deletes
}

// NewSheetsClient authenticates with a service-account credentials file and
// binds to one spreadsheet.
func NewSheetsClient(ctx context.Context, credentialsFile, spreadsheetID string) (*SheetsClient, error) {
	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("sheets: new service: %w", err)
	}
	return &SheetsClient{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		cb:            NewCircuitBreaker(DefaultCBConfig()),
		sheetIDs:      make(map[string]int64),
	}, nil
}

// BreakerState exposes the circuit breaker state for the health endpoint.
func (c *SheetsClient) BreakerState() CBState { return c.cb.State() }

func (c *SheetsClient) SheetTitles(ctx context.Context) ([]string, error) {
	var titles []string
	err := c.cb.Execute(func() error {
		resp, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
			Fields("sheets.properties").Context(ctx).Do()
		if err != nil {
			return err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, sh := range resp.Sheets {
			titles = append(titles, sh.Properties.Title)
			c.sheetIDs[sh.Properties.Title] = sh.Properties.SheetId
		}
		return nil
	})
	return titles, err
}

func (c *SheetsClient) AddSheets(ctx context.Context, titles []string) error {
	reqs := make([]*sheets.Request, len(titles))
	for i, t := range titles {
		reqs[i] = &sheets.Request{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: t},
			},
		}
	}
	return c.cb.Execute(func() error {
		resp, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID,
			&sheets.BatchUpdateSpreadsheetRequest{Requests: reqs}).
			Context(ctx).Do()
		if err != nil {
			return err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		for _, r := range resp.Replies {
			if r.AddSheet != nil && r.AddSheet.Properties != nil {
				c.sheetIDs[r.AddSheet.Properties.Title] = r.AddSheet.Properties.SheetId
			}
		}
		return nil
	})
}

func (c *SheetsClient) GetValues(ctx context.Context, rangeA1 string) ([][]any, error) {
	var values [][]any
	err := c.cb.Execute(func() error {
		resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeA1).
			Context(ctx).Do()
		if err != nil {
			return err
		}
		values = resp.Values
		return nil
	})
	return values, err
}

func (c *SheetsClient) UpdateValues(ctx context.Context, rangeA1 string, values [][]any) error {
	return c.cb.Execute(func() error {
		_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, rangeA1,
			&sheets.ValueRange{Values: values}).
			ValueInputOption("RAW").Context(ctx).Do()
		return err
	})
}

func (c *SheetsClient) AppendValues(ctx context.Context, rangeA1 string, values [][]any) error {
	return c.cb.Execute(func() error {
		_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rangeA1,
			&sheets.ValueRange{Values: values}).
			ValueInputOption("RAW").InsertDataOption("INSERT_ROWS").
			Context(ctx).Do()
		return err
	})
}

// DeleteRow removes one row (1-based, header is row 1) from a tab. The API
// addresses rows by numeric sheetId, resolved lazily and cached.
func (c *SheetsClient) DeleteRow(ctx context.Context, sheetTitle string, rowIndex int) error {
	sheetID, err := c.sheetID(ctx, sheetTitle)
	if err != nil {
		return err
	}
	return c.cb.Execute(func() error {
		_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID,
			&sheets.BatchUpdateSpreadsheetRequest{
				Requests: []*sheets.Request{{
					DeleteDimension: &sheets.DeleteDimensionRequest{
						Range: &sheets.DimensionRange{
							SheetId:    sheetID,
							Dimension:  "ROWS",
							StartIndex: int64(rowIndex - 1),
							EndIndex:   int64(rowIndex),
						},
					},
				}},
			}).Context(ctx).Do()
		return err
	})
}

func (c *SheetsClient) sheetID(ctx context.Context, title string) (int64, error) {
	c.mu.Lock()
	id, ok := c.sheetIDs[title]
	c.mu.Unlock()
	if ok {
		return id, nil
	}
	if _, err := c.SheetTitles(ctx); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	id, ok = c.sheetIDs[title]
	if !ok {
		return 0, fmt.Errorf("sheets: tab %q not found", title)
	}
	return id, nil
}
