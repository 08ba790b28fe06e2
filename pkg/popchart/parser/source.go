package parser

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/ukaji3/popchart-go/pkg/popchart/models"
)

// Format identifies the encoding of a source.
type Format string

const (
	FormatAuto Format = ""
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatXLS  Format = "xls"
)

// DefaultTimeout bounds a remote fetch when Options.Timeout is zero.
const DefaultTimeout = 30 * time.Second

// Options configures dataset loading.
type Options struct {
	// Format forces the decoder; FormatAuto picks it from the file extension.
	Format Format
	// Sheet selects the worksheet of an XLSX source (first sheet if empty).
	Sheet string
	// Range restricts a workbook source to a cell range.
	Range *models.CellRange
	// Timeout bounds remote fetches.
	Timeout time.Duration
	// Client performs remote fetches (http.DefaultClient if nil).
	Client *http.Client
}

// Load reads a dataset from a local path or an http(s) URL.
func Load(ctx context.Context, source string, opts Options) (*models.Dataset, error) {
	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = fetch(ctx, source, opts)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = newLoadError(source, err)
		}
	}
	if err != nil {
		return nil, err
	}

	return Decode(bytes.NewReader(data), source, opts)
}

// Decode parses an in-memory source according to opts.
func Decode(r io.ReadSeeker, source string, opts Options) (*models.Dataset, error) {
	format := opts.Format
	if format == FormatAuto {
		format = DetectFormat(source)
	}

	switch format {
	case FormatXLSX:
		return ParseXLSX(r, source, opts.Sheet, opts.Range)
	case FormatXLS:
		return ParseXLS(r, source, opts.Range)
	case FormatCSV:
		return ParseCSV(r, source)
	default:
		return nil, newLoadError(source, fmt.Errorf("unsupported format %q", format))
	}
}

// DetectFormat guesses the format from the extension of a path or URL.
// Unknown extensions are read as CSV.
func DetectFormat(source string) Format {
	p := source
	if u, err := url.Parse(source); err == nil && u.Scheme != "" && u.Path != "" {
		p = u.Path
	}
	switch strings.ToLower(path.Ext(p)) {
	case ".xlsx", ".xlsm":
		return FormatXLSX
	case ".xls":
		return FormatXLS
	default:
		return FormatCSV
	}
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// fetch downloads a remote source within opts.Timeout.
func fetch(ctx context.Context, source string, opts Options) ([]byte, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, newLoadError(source, err)
	}

	client := opts.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, newLoadError(source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newLoadError(source, fmt.Errorf("unexpected status %s", resp.Status))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newLoadError(source, err)
	}
	return data, nil
}
