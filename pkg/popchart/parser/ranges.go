package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
	"github.com/xuri/excelize/v2"
)

// ParseRange parses a range string like A1:C200 or $A$1:$C$200.
// A sheet prefix ('Sheet 1'!A1:C200) is accepted and returned separately.
func ParseRange(ref string) (sheet string, r *models.CellRange, err error) {
	ref = strings.TrimSpace(ref)
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = strings.Trim(ref[:idx], "'")
		ref = ref[idx+1:]
	}

	// Remove $ signs
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return "", nil, fmt.Errorf("invalid range %q: expected <start>:<end>", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", nil, fmt.Errorf("invalid range %q: %w", ref, err)
	}

	if endRow < startRow {
		startRow, endRow = endRow, startRow
	}
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}

	return sheet, &models.CellRange{
		R1: startRow,
		C1: startCol,
		R2: endRow,
		C2: endCol,
	}, nil
}
