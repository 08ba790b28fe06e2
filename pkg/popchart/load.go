package popchart

import (
	"context"
	"fmt"
	"net/http"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
	"github.com/ukaji3/popchart-go/pkg/popchart/parser"
)

// LoadDataset reads the dataset named by source (path or http(s) URL)
// using the Source section of cfg.
func LoadDataset(ctx context.Context, source string, cfg Config) (*models.Dataset, error) {
	return LoadDatasetWithClient(ctx, source, cfg, nil)
}

// LoadDatasetWithClient is LoadDataset with an explicit HTTP client for
// remote sources.
func LoadDatasetWithClient(ctx context.Context, source string, cfg Config, client *http.Client) (*models.Dataset, error) {
	opts := parser.Options{
		Format:  parser.Format(cfg.Source.Format),
		Sheet:   cfg.Source.Sheet,
		Timeout: cfg.Source.FetchTimeout,
		Client:  client,
	}

	if cfg.Source.Range != "" {
		sheet, rng, err := parser.ParseRange(cfg.Source.Range)
		if err != nil {
			return nil, NewRenderError("load", fmt.Errorf("%w: %v", ErrDataParse, err))
		}
		if sheet != "" && opts.Sheet == "" {
			opts.Sheet = sheet
		}
		opts.Range = rng
	}

	ds, err := parser.Load(ctx, source, opts)
	if err != nil {
		return nil, NewRenderError("load", err)
	}
	return ds, nil
}

// Generate loads source and renders it in one call.
func Generate(ctx context.Context, source string, cfg Config) (*models.Document, error) {
	ds, err := LoadDataset(ctx, source, cfg)
	if err != nil {
		return nil, err
	}
	return RenderChart(ds, cfg)
}
