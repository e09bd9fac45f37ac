package sheets

import "fmt"

// NameNotFoundError is returned by worksheet-name resolution when no
// worksheet matches the requested name. Valid lists the known names in
// the lowercased form the lookup matches against.
type NameNotFoundError struct {
	Name  string
	Valid []string
}

func (e *NameNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found, name must be one of %v", e.Name, e.Valid)
}

// WorkbookNotFoundError is returned when no spreadsheet with the
// requested title is visible to the authenticated account.
type WorkbookNotFoundError struct {
	Name string
}

func (e *WorkbookNotFoundError) Error() string {
	return fmt.Sprintf("no workbook named %q", e.Name)
}

// InvalidSheetRefError is returned by Resolve for a reference that is
// neither a name, an ID, nor a worksheet.
type InvalidSheetRefError struct {
	Ref any
}

func (e *InvalidSheetRefError) Error() string {
	return fmt.Sprintf("invalid sheet reference of type %T: use a name (string), an ID (int64), or a *Worksheet", e.Ref)
}
