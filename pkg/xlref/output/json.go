// Package output serializes scan results.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlref-go/pkg/xlref/models"
)

// ToJSON encodes a workbook scan result.
func ToJSON(wb *models.WorkbookRefs, pretty bool) ([]byte, error) {
	return marshal(wb, pretty)
}

// SheetToJSON encodes the references of a single sheet.
func SheetToJSON(sheet *models.SheetRefs, pretty bool) ([]byte, error) {
	return marshal(sheet, pretty)
}

func marshal(v interface{}, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}
