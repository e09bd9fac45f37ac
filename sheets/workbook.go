package sheets

import (
	"context"
	"fmt"
	"sort"
	"strings"

	gsheets "google.golang.org/api/sheets/v4"
)

// Workbook is a handle to one remote spreadsheet document.
type Workbook struct {
	client *Client
	id     string
	name   string
}

// ID returns the spreadsheet ID.
func (w *Workbook) ID() string {
	return w.id
}

// Name returns the title the workbook was opened with, when known.
func (w *Workbook) Name() string {
	return w.name
}

// Worksheets returns a mapping of worksheet title to sheet ID. It is
// fetched fresh on every call; titles and IDs can change remotely.
func (w *Workbook) Worksheets(ctx context.Context) (map[string]int64, error) {
	ss, err := Call(w.client.retrier, func() (*gsheets.Spreadsheet, error) {
		return w.client.api.spreadsheet(ctx, w.id)
	})
	if err != nil {
		return nil, err
	}

	titles := make(map[string]int64, len(ss.Sheets))
	for _, sh := range ss.Sheets {
		if sh.Properties != nil {
			titles[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	return titles, nil
}

// WorksheetByName resolves a worksheet by title, case-insensitively.
// An unknown name yields a *NameNotFoundError listing the valid
// (lowercased) names.
func (w *Workbook) WorksheetByName(ctx context.Context, name string) (*Worksheet, error) {
	titles, err := w.Worksheets(ctx)
	if err != nil {
		return nil, err
	}

	byLower := make(map[string]*Worksheet, len(titles))
	valid := make([]string, 0, len(titles))
	for title, id := range titles {
		lower := strings.ToLower(title)
		byLower[lower] = &Worksheet{wb: w, title: title, id: id}
		valid = append(valid, lower)
	}

	ws, ok := byLower[strings.ToLower(name)]
	if !ok {
		sort.Strings(valid)
		return nil, &NameNotFoundError{Name: name, Valid: valid}
	}
	return ws, nil
}

// WorksheetByID resolves a worksheet by its sheet ID.
func (w *Workbook) WorksheetByID(ctx context.Context, sheetID int64) (*Worksheet, error) {
	ss, err := Call(w.client.retrier, func() (*gsheets.Spreadsheet, error) {
		return w.client.api.spreadsheet(ctx, w.id)
	})
	if err != nil {
		return nil, err
	}

	for _, sh := range ss.Sheets {
		if sh.Properties != nil && sh.Properties.SheetId == sheetID {
			return &Worksheet{wb: w, title: sh.Properties.Title, id: sheetID}, nil
		}
	}
	return nil, fmt.Errorf("no worksheet with ID %d in workbook %q", sheetID, w.name)
}

// Resolve normalizes a sheet reference to a worksheet handle. It
// accepts a title (string), a sheet ID (int or int64), or a
// *Worksheet, which passes through untouched.
func (w *Workbook) Resolve(ctx context.Context, ref any) (*Worksheet, error) {
	switch v := ref.(type) {
	case *Worksheet:
		return v, nil
	case string:
		return w.WorksheetByName(ctx, v)
	case int64:
		return w.WorksheetByID(ctx, v)
	case int:
		return w.WorksheetByID(ctx, int64(v))
	default:
		return nil, &InvalidSheetRefError{Ref: ref}
	}
}
