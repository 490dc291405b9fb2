// Package leads loads the business lead list from CSV or XLSX exports.
package leads

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/brandkit-cli/internal/model"
)

// Load reads a lead list, dispatching on file extension. Rows without a
// "Company Name" value are dropped.
func Load(path string) ([]model.BusinessRecord, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path)
	default:
		return LoadCSV(path)
	}
}

// recordFromRow maps a header-keyed row onto a BusinessRecord.
func recordFromRow(row map[string]string) model.BusinessRecord {
	count, _ := strconv.Atoi(row["Reviews"])
	return model.BusinessRecord{
		Name:        row["Company Name"],
		City:        row["City"],
		Website:     row["Website"],
		Phone:       row["Phone"],
		Email:       row["Email"],
		Address:     row["Address"],
		Facebook:    row["Facebook"],
		LinkedIn:    row["LinkedIn"],
		Instagram:   row["Instagram"],
		Rating:      row["Google Rating"],
		ReviewCount: count,
	}
}

// zipRow pairs a header with a data row, trimming values. Short rows
// yield empty strings for the missing columns.
func zipRow(header, fields []string) map[string]string {
	row := make(map[string]string, len(header))
	for i, h := range header {
		if i < len(fields) {
			row[h] = strings.TrimSpace(fields[i])
		} else {
			row[h] = ""
		}
	}
	return row
}

// FindByName returns the first record whose name contains the query,
// case-insensitively.
func FindByName(records []model.BusinessRecord, query string) (model.BusinessRecord, error) {
	q := strings.ToLower(query)
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) {
			return r, nil
		}
	}
	return model.BusinessRecord{}, eris.Errorf("leads: company %q not found", query)
}
