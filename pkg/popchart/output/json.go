// Package output provides serialization of rendered chart documents.
package output

import (
	"encoding/json"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// ToJSON serializes a Document to JSON.
func ToJSON(doc *models.Document, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(doc, "", "  ")
	}
	return json.Marshal(doc)
}
