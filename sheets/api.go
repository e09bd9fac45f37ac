package sheets

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/drive/v3"
	gsheets "google.golang.org/api/sheets/v4"
)

// valueInputOption controls how written cell values are interpreted by
// the remote service. RAW stores values as-is without parsing.
const valueInputOption = "RAW"

// remoteAPI is the narrow surface of the remote spreadsheet service the
// client depends on. Every method maps to exactly one remote call; the
// client wraps each invocation in the retrier. Tests substitute a fake.
type remoteAPI interface {
	spreadsheetIDByTitle(ctx context.Context, title string) (string, error)
	spreadsheet(ctx context.Context, spreadsheetID string) (*gsheets.Spreadsheet, error)
	values(ctx context.Context, spreadsheetID, rangeRef string) ([][]any, error)
	updateValues(ctx context.Context, spreadsheetID, rangeRef string, values [][]any) error
	appendRow(ctx context.Context, spreadsheetID, rangeRef string, row []any) error
	clearValues(ctx context.Context, spreadsheetID, rangeRef string) error
	batchClearValues(ctx context.Context, spreadsheetID string, rangeRefs []string) error
	batchUpdate(ctx context.Context, spreadsheetID string, requests []*gsheets.Request) error
}

// googleAPI implements remoteAPI over the Sheets v4 and Drive v3
// services. Drive is only used to resolve workbook titles to
// spreadsheet IDs, mirroring how the web UI opens documents by name.
type googleAPI struct {
	sheets *gsheets.Service
	drive  *drive.Service
}

var _ remoteAPI = (*googleAPI)(nil)

func (g *googleAPI) spreadsheetIDByTitle(ctx context.Context, title string) (string, error) {
	escaped := strings.ReplaceAll(strings.ReplaceAll(title, `\`, `\\`), `'`, `\'`)
	query := fmt.Sprintf("mimeType = 'application/vnd.google-apps.spreadsheet' and name = '%s' and trashed = false", escaped)

	list, err := g.drive.Files.List().
		Q(query).
		Fields("files(id, name)").
		PageSize(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}
	if len(list.Files) == 0 {
		return "", &WorkbookNotFoundError{Name: title}
	}
	return list.Files[0].Id, nil
}

func (g *googleAPI) spreadsheet(ctx context.Context, spreadsheetID string) (*gsheets.Spreadsheet, error) {
	return g.sheets.Spreadsheets.Get(spreadsheetID).
		Fields("spreadsheetId", "properties.title", "sheets.properties").
		Context(ctx).
		Do()
}

func (g *googleAPI) values(ctx context.Context, spreadsheetID, rangeRef string) ([][]any, error) {
	resp, err := g.sheets.Spreadsheets.Values.Get(spreadsheetID, rangeRef).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

func (g *googleAPI) updateValues(ctx context.Context, spreadsheetID, rangeRef string, values [][]any) error {
	_, err := g.sheets.Spreadsheets.Values.Update(spreadsheetID, rangeRef, &gsheets.ValueRange{
		Values: values,
	}).ValueInputOption(valueInputOption).Context(ctx).Do()
	return err
}

func (g *googleAPI) appendRow(ctx context.Context, spreadsheetID, rangeRef string, row []any) error {
	_, err := g.sheets.Spreadsheets.Values.Append(spreadsheetID, rangeRef, &gsheets.ValueRange{
		Values: [][]any{row},
	}).ValueInputOption(valueInputOption).InsertDataOption("INSERT_ROWS").Context(ctx).Do()
	return err
}

func (g *googleAPI) clearValues(ctx context.Context, spreadsheetID, rangeRef string) error {
	_, err := g.sheets.Spreadsheets.Values.Clear(spreadsheetID, rangeRef, &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	return err
}

func (g *googleAPI) batchClearValues(ctx context.Context, spreadsheetID string, rangeRefs []string) error {
	_, err := g.sheets.Spreadsheets.Values.BatchClear(spreadsheetID, &gsheets.BatchClearValuesRequest{
		Ranges: rangeRefs,
	}).Context(ctx).Do()
	return err
}

func (g *googleAPI) batchUpdate(ctx context.Context, spreadsheetID string, requests []*gsheets.Request) error {
	_, err := g.sheets.Spreadsheets.BatchUpdate(spreadsheetID, &gsheets.BatchUpdateSpreadsheetRequest{
		Requests: requests,
	}).Context(ctx).Do()
	return err
}
