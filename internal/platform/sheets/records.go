package sheets

import (
	"fmt"
	"strings"

	"taskboard/internal/domain/ledger"
)

// Records converts a raw worksheet value grid into header-keyed row
// maps. The first row is the header; short rows are padded with empty
// cells, extra cells beyond the header are dropped. A grid with no
// usable header is the one structurally impossible input.
func Records(values [][]interface{}) ([]map[string]string, error) {
	if len(values) == 0 {
		return nil, ledger.ErrInvalidSnapshot
	}
	header := make([]string, len(values[0]))
	usable := false
	for i, cell := range values[0] {
		header[i] = strings.TrimSpace(cellString(cell))
		if header[i] != "" {
			usable = true
		}
	}
	if !usable {
		return nil, ledger.ErrInvalidSnapshot
	}

	rows := make([]map[string]string, 0, len(values)-1)
	for _, raw := range values[1:] {
		row := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(raw) {
				row[name] = cellString(raw[i])
			} else {
				row[name] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func cellString(cell interface{}) string {
	if cell == nil {
		return ""
	}
	return fmt.Sprint(cell)
}
