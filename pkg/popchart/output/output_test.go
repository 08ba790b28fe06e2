package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/ukaji3/popchart-go/pkg/popchart"
	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

func scenarioDataset() *models.Dataset {
	return &models.Dataset{
		Source: "scenario.csv",
		Records: []models.Record{
			{Category: "estimate", Year: 1950, Population: 37000},
			{Category: "estimate", Year: 2020, Population: 41000},
			{Category: "medium variant", Year: 2020, Population: 41000},
			{Category: "medium variant", Year: 2100, Population: 35000},
		},
	}
}

func renderScenario(t *testing.T) *models.Document {
	t.Helper()

	doc, err := popchart.RenderChart(scenarioDataset(), popchart.DefaultConfig())
	if err != nil {
		t.Fatalf("RenderChart failed: %v", err)
	}
	return doc
}

func TestToJSON(t *testing.T) {
	doc := renderScenario(t)

	compact, err := ToJSON(doc, false)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	pretty, err := ToJSON(doc, true)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}
	if bytes.Contains(compact, []byte("\n")) {
		t.Error("compact output must be a single line")
	}
	if !bytes.Contains(pretty, []byte("\n  \"width\": 1300")) {
		t.Errorf("unexpected pretty output:\n%s", pretty)
	}

	var decoded struct {
		Labels []struct {
			Category struct {
				Name string `json:"name"`
			} `json:"category"`
			Y float64 `json:"y"`
		} `json:"labels"`
	}
	if err := json.Unmarshal(compact, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(decoded.Labels) != 1 || decoded.Labels[0].Category.Name != "medium variant" || decoded.Labels[0].Y != 672 {
		t.Errorf("unexpected labels %+v", decoded.Labels)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		expected Format
		wantErr  bool
	}{
		{"", FormatSVG, false},
		{"svg", FormatSVG, false},
		{"PNG", FormatPNG, false},
		{" json ", FormatJSON, false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFormat(%q) = %q, expected %q", tt.name, got, tt.expected)
			}
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]Format{
		"chart.svg":     FormatSVG,
		"out/chart.PNG": FormatPNG,
		"chart.json":    FormatJSON,
		"chart":         FormatSVG,
	}
	for path, expected := range tests {
		if got := FormatFromPath(path); got != expected {
			t.Errorf("FormatFromPath(%q) = %q, expected %q", path, got, expected)
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, renderScenario(t), FormatJSON, false); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if !strings.HasSuffix(buf.String(), "}\n") {
		t.Error("JSON output must end with a newline")
	}
}
