package popchart

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const scenarioCSV = `type,year,population
estimate,1950,37000
estimate,2020,41000
medium variant,2020,41000
medium variant,2100,35000
`

func TestGenerateFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ukraine.csv")
	if err := os.WriteFile(path, []byte(scenarioCSV), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	doc, err := Generate(context.Background(), path, DefaultConfig())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if len(doc.Series) != 2 || len(doc.Labels) != 1 {
		t.Errorf("Expected 2 series and 1 label, got %d and %d", len(doc.Series), len(doc.Labels))
	}
}

func TestLoadDatasetWithClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(scenarioCSV))
	}))
	defer srv.Close()

	ds, err := LoadDatasetWithClient(context.Background(), srv.URL+"/ukraine.csv", DefaultConfig(), srv.Client())
	if err != nil {
		t.Fatalf("LoadDatasetWithClient failed: %v", err)
	}
	if ds.Len() != 4 {
		t.Errorf("Expected 4 records, got %d", ds.Len())
	}
}

func TestLoadDatasetErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadDataset(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), DefaultConfig())
		if !errors.Is(err, ErrDataLoad) {
			t.Errorf("Expected ErrDataLoad, got %v", err)
		}
		var re *RenderError
		if !errors.As(err, &re) || re.Stage != "load" {
			t.Errorf("Expected load RenderError, got %v", err)
		}
	})

	t.Run("bad range", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Source.Range = "not a range"
		_, err := LoadDataset(context.Background(), "ukraine.xlsx", cfg)
		if !errors.Is(err, ErrDataParse) {
			t.Errorf("Expected ErrDataParse, got %v", err)
		}
	})

	t.Run("bad number", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.csv")
		os.WriteFile(path, []byte("type,year,population\nestimate,1950,lots\n"), 0644)
		_, err := LoadDataset(context.Background(), path, DefaultConfig())
		if !errors.Is(err, ErrDataParse) {
			t.Errorf("Expected ErrDataParse, got %v", err)
		}
	})

	t.Run("header only", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		os.WriteFile(path, []byte("type,year,population\n"), 0644)
		_, err := Generate(context.Background(), path, DefaultConfig())
		if !errors.Is(err, ErrEmptyDataset) {
			t.Errorf("Expected ErrEmptyDataset, got %v", err)
		}
	})
}
