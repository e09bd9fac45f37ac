package sheets

import (
	"context"
	"fmt"

	gsheets "google.golang.org/api/sheets/v4"

	"github.com/gaborage/go-sheets/table"
)

// Worksheet is a handle to one named, ID-addressed grid inside a
// workbook. Every operation issues exactly one remote call through the
// client's retrier; composites like ReplaceWithTable document their
// call sequence.
type Worksheet struct {
	wb    *Workbook
	title string
	id    int64
}

// Title returns the worksheet title.
func (ws *Worksheet) Title() string {
	return ws.title
}

// ID returns the sheet ID within the workbook.
func (ws *Worksheet) ID() int64 {
	return ws.id
}

// URL returns the browser URL of the worksheet.
func (ws *Worksheet) URL() string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit#gid=%d", ws.wb.id, ws.id)
}

// rangeRef qualifies an A1 range with the worksheet title. An empty
// range addresses the whole sheet.
func (ws *Worksheet) rangeRef(rangeA1 string) string {
	if rangeA1 == "" {
		return quoteTitle(ws.title)
	}
	return quoteTitle(ws.title) + "!" + rangeA1
}

func (ws *Worksheet) batch(ctx context.Context, requests ...*gsheets.Request) error {
	return ws.wb.client.retrier.Do(func() error {
		return ws.wb.client.api.batchUpdate(ctx, ws.wb.id, requests)
	})
}

// Values returns the used grid of the worksheet as raw records.
func (ws *Worksheet) Values(ctx context.Context) ([][]any, error) {
	return Call(ws.wb.client.retrier, func() ([][]any, error) {
		return ws.wb.client.api.values(ctx, ws.wb.id, ws.rangeRef(""))
	})
}

// Table reads the worksheet and converts it to a table using the first
// row as headers. The conversion itself runs outside the retry
// boundary.
func (ws *Worksheet) Table(ctx context.Context) (*table.Table, error) {
	records, err := ws.Values(ctx)
	if err != nil {
		return nil, err
	}
	return table.FromRecords(records), nil
}

// Update writes values into the given "A1:C3"-style range.
func (ws *Worksheet) Update(ctx context.Context, rangeA1 string, values [][]any) error {
	return ws.wb.client.retrier.Do(func() error {
		return ws.wb.client.api.updateValues(ctx, ws.wb.id, ws.rangeRef(rangeA1), values)
	})
}

// AppendRow appends a single row after the worksheet's used range.
func (ws *Worksheet) AppendRow(ctx context.Context, row []any) error {
	return ws.wb.client.retrier.Do(func() error {
		return ws.wb.client.api.appendRow(ctx, ws.wb.id, ws.rangeRef("A1"), row)
	})
}

// ColumnValues returns all values of the 1-based column index as
// strings. Blank cells above the last used row come back as empty
// strings.
func (ws *Worksheet) ColumnValues(ctx context.Context, index int) ([]string, error) {
	if index < 1 {
		return nil, fmt.Errorf("column index must be >= 1, got %d", index)
	}

	col := ColumnLetter(index)
	records, err := Call(ws.wb.client.retrier, func() ([][]any, error) {
		return ws.wb.client.api.values(ctx, ws.wb.id, ws.rangeRef(col+":"+col))
	})
	if err != nil {
		return nil, err
	}

	values := make([]string, len(records))
	for i, rec := range records {
		if len(rec) > 0 {
			values[i] = fmt.Sprint(rec[0])
		}
	}
	return values, nil
}

// Clear removes all values from the worksheet. Formatting is kept.
func (ws *Worksheet) Clear(ctx context.Context) error {
	return ws.wb.client.retrier.Do(func() error {
		return ws.wb.client.api.clearValues(ctx, ws.wb.id, ws.rangeRef(""))
	})
}

// BatchClear removes values from the given ranges in one call.
func (ws *Worksheet) BatchClear(ctx context.Context, rangesA1 ...string) error {
	refs := make([]string, len(rangesA1))
	for i, r := range rangesA1 {
		refs[i] = ws.rangeRef(r)
	}
	return ws.wb.client.retrier.Do(func() error {
		return ws.wb.client.api.batchClearValues(ctx, ws.wb.id, refs)
	})
}

// DeleteRows deletes the rows from start to end, 1-based and
// inclusive.
func (ws *Worksheet) DeleteRows(ctx context.Context, start, end int) error {
	if start < 1 || end < start {
		return fmt.Errorf("invalid row span %d..%d", start, end)
	}
	return ws.batch(ctx, &gsheets.Request{
		DeleteDimension: &gsheets.DeleteDimensionRequest{
			Range: &gsheets.DimensionRange{
				SheetId:    ws.id,
				Dimension:  "ROWS",
				StartIndex: int64(start - 1),
				EndIndex:   int64(end),
			},
		},
	})
}

// Freeze pins the given number of leading rows and columns. Zeros
// unfreeze.
func (ws *Worksheet) Freeze(ctx context.Context, rows, cols int) error {
	return ws.batch(ctx, &gsheets.Request{
		UpdateSheetProperties: &gsheets.UpdateSheetPropertiesRequest{
			Properties: &gsheets.SheetProperties{
				SheetId: ws.id,
				GridProperties: &gsheets.GridProperties{
					FrozenRowCount:    int64(rows),
					FrozenColumnCount: int64(cols),
					ForceSendFields:   []string{"FrozenRowCount", "FrozenColumnCount"},
				},
			},
			Fields: "gridProperties.frozenRowCount,gridProperties.frozenColumnCount",
		},
	})
}

// ClearBasicFilter removes the basic filter from the worksheet, if
// one is applied.
func (ws *Worksheet) ClearBasicFilter(ctx context.Context) error {
	return ws.batch(ctx, &gsheets.Request{
		ClearBasicFilter: &gsheets.ClearBasicFilterRequest{SheetId: ws.id},
	})
}

// Format applies a cell format to the given "A1:C3"-style range.
func (ws *Worksheet) Format(ctx context.Context, rangeA1 string, format *gsheets.CellFormat) error {
	gridRange, err := parseA1Range(ws.id, rangeA1)
	if err != nil {
		return err
	}
	return ws.batch(ctx, &gsheets.Request{
		RepeatCell: &gsheets.RepeatCellRequest{
			Range:  gridRange,
			Cell:   &gsheets.CellData{UserEnteredFormat: format},
			Fields: "userEnteredFormat(backgroundColor,horizontalAlignment,textFormat)",
		},
	})
}

// DefaultTableFormat is the cell format ReplaceWithTable applies to
// data rows: white background, centered, 10 pt regular black text.
func DefaultTableFormat() *gsheets.CellFormat {
	return &gsheets.CellFormat{
		BackgroundColor:     &gsheets.Color{Red: 1, Green: 1, Blue: 1},
		HorizontalAlignment: "CENTER",
		TextFormat: &gsheets.TextFormat{
			ForegroundColor: &gsheets.Color{Red: 0, Green: 0, Blue: 0},
			FontSize:        10,
			Bold:            false,
			ForceSendFields: []string{"Bold"},
		},
	}
}

// ReplaceWithTable replaces the worksheet contents with the table:
// clears the basic filter, unfreezes, clears all values, writes the
// header and data rows (plus extraRows blank buffer rows) in a single
// range update, formats the data block, and freezes the header row.
func (ws *Worksheet) ReplaceWithTable(ctx context.Context, tbl *table.Table, extraRows int) error {
	if err := ws.ClearBasicFilter(ctx); err != nil {
		return err
	}
	if err := ws.Freeze(ctx, 0, 0); err != nil {
		return err
	}
	if err := ws.Clear(ctx); err != nil {
		return err
	}

	records := tbl.Records()
	usedRows := len(records)
	for i := 0; i < extraRows; i++ {
		blank := make([]any, tbl.NumCols())
		for j := range blank {
			blank[j] = ""
		}
		records = append(records, blank)
	}

	if err := ws.Update(ctx, A1Range(len(records), tbl.NumCols()), records); err != nil {
		return err
	}

	if tbl.NumRows() > 0 {
		dataRange := fmt.Sprintf("A2:%s%d", ColumnLetter(tbl.NumCols()), usedRows)
		if err := ws.Format(ctx, dataRange, DefaultTableFormat()); err != nil {
			return err
		}
	}

	return ws.Freeze(ctx, 1, 0)
}
