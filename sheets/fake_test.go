package sheets

import (
	"context"
	"io"
	"time"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/gaborage/go-sheets/logger"
)

// fakeAPI is a test double for remoteAPI. Each method records its
// invocation and either delegates to the corresponding Fn field or
// falls back to a canned default.
type fakeAPI struct {
	calls []string

	spreadsheetIDByTitleFn func(title string) (string, error)
	spreadsheetFn          func() (*gsheets.Spreadsheet, error)
	valuesFn               func(rangeRef string) ([][]any, error)

	updateErr      error
	appendErr      error
	clearErr       error
	batchClearErr  error
	batchUpdateErr error

	updates       []updateCall
	appendedRows  []appendCall
	clearedRanges []string
	batchCleared  [][]string
	batchUpdates  [][]*gsheets.Request
}

type updateCall struct {
	rangeRef string
	values   [][]any
}

type appendCall struct {
	rangeRef string
	row      []any
}

func defaultSpreadsheet() *gsheets.Spreadsheet {
	return &gsheets.Spreadsheet{
		SpreadsheetId: "ssid-1",
		Properties:    &gsheets.SpreadsheetProperties{Title: "Budget"},
		Sheets: []*gsheets.Sheet{
			{Properties: &gsheets.SheetProperties{Title: "sheet1", SheetId: 101}},
			{Properties: &gsheets.SheetProperties{Title: "Sheet2", SheetId: 202}},
		},
	}
}

func (f *fakeAPI) spreadsheetIDByTitle(_ context.Context, title string) (string, error) {
	f.calls = append(f.calls, "spreadsheetIDByTitle")
	if f.spreadsheetIDByTitleFn != nil {
		return f.spreadsheetIDByTitleFn(title)
	}
	return "", &WorkbookNotFoundError{Name: title}
}

func (f *fakeAPI) spreadsheet(_ context.Context, _ string) (*gsheets.Spreadsheet, error) {
	f.calls = append(f.calls, "spreadsheet")
	if f.spreadsheetFn != nil {
		return f.spreadsheetFn()
	}
	return defaultSpreadsheet(), nil
}

func (f *fakeAPI) values(_ context.Context, _, rangeRef string) ([][]any, error) {
	f.calls = append(f.calls, "values")
	if f.valuesFn != nil {
		return f.valuesFn(rangeRef)
	}
	return nil, nil
}

func (f *fakeAPI) updateValues(_ context.Context, _, rangeRef string, values [][]any) error {
	f.calls = append(f.calls, "updateValues")
	f.updates = append(f.updates, updateCall{rangeRef: rangeRef, values: values})
	return f.updateErr
}

func (f *fakeAPI) appendRow(_ context.Context, _, rangeRef string, row []any) error {
	f.calls = append(f.calls, "appendRow")
	f.appendedRows = append(f.appendedRows, appendCall{rangeRef: rangeRef, row: row})
	return f.appendErr
}

func (f *fakeAPI) clearValues(_ context.Context, _, rangeRef string) error {
	f.calls = append(f.calls, "clearValues")
	f.clearedRanges = append(f.clearedRanges, rangeRef)
	return f.clearErr
}

func (f *fakeAPI) batchClearValues(_ context.Context, _ string, rangeRefs []string) error {
	f.calls = append(f.calls, "batchClearValues")
	f.batchCleared = append(f.batchCleared, rangeRefs)
	return f.batchClearErr
}

func (f *fakeAPI) batchUpdate(_ context.Context, _ string, requests []*gsheets.Request) error {
	f.calls = append(f.calls, "batchUpdate")
	f.batchUpdates = append(f.batchUpdates, requests)
	return f.batchUpdateErr
}

var _ remoteAPI = (*fakeAPI)(nil)

func nopLogger() logger.Logger {
	return logger.NewWithOutput("disabled", false, io.Discard)
}

func newTestClient(api remoteAPI) *Client {
	log := nopLogger()
	r := NewRetrier(log, DefaultMaxRetries, DefaultBackoff)
	r.sleep = func(time.Duration) {}
	return &Client{api: api, retrier: r, log: log}
}

func testWorkbook(api remoteAPI) *Workbook {
	return &Workbook{client: newTestClient(api), id: "ssid-1", name: "Budget"}
}

func testWorksheet(api remoteAPI) *Worksheet {
	return &Worksheet{wb: testWorkbook(api), title: "sheet1", id: 101}
}
