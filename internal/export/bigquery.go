package export

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	"github.com/rs/zerolog/log"
)

// Exporter streams spreadsheet range values into a BigQuery table.
type Exporter struct {
	client *bigquery.Client
}

// NewExporter creates a BigQuery exporter for the given project
func NewExporter(ctx context.Context, projectID string) (*Exporter, error) {
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigquery client: %w", err)
	}

	return &Exporter{client: client}, nil
}

// Close releases the underlying BigQuery client
func (e *Exporter) Close() error {
	return e.client.Close()
}

// rangeRow adapts one row of spreadsheet values to the BigQuery streaming
// insert interface.
type rangeRow struct {
	values map[string]bigquery.Value
}

func (r rangeRow) Save() (map[string]bigquery.Value, string, error) {
	// Empty insert ID: rows from a spreadsheet read carry no natural
	// dedup key, so best-effort dedup is disabled.
	return r.values, "", nil
}

// ExportRange streams rows (as returned by a range read, rows-major) into
// dataset.table. Column names come from header; when header is shorter than
// a row, the extra cells land in generated col_N columns. The destination
// table must already exist with a compatible schema.
func (e *Exporter) ExportRange(ctx context.Context, dataset, table string, header []string, rows [][]interface{}) error {
	if len(rows) == 0 {
		log.Debug().
			Str("dataset", dataset).
			Str("table", table).
			Msg("No rows to export")
		return nil
	}

	savers := make([]rangeRow, 0, len(rows))
	for _, row := range rows {
		values := make(map[string]bigquery.Value, len(row))
		for i, cell := range row {
			values[columnName(header, i)] = bigquery.Value(cell)
		}
		savers = append(savers, rangeRow{values: values})
	}

	inserter := e.client.Dataset(dataset).Table(table).Inserter()
	if err := inserter.Put(ctx, savers); err != nil {
		return fmt.Errorf("failed to insert rows into %s.%s: %w", dataset, table, err)
	}

	log.Info().
		Str("dataset", dataset).
		Str("table", table).
		Int("rows", len(rows)).
		Msg("Exported range to BigQuery")

	return nil
}

func columnName(header []string, i int) string {
	if i < len(header) && header[i] != "" {
		return header[i]
	}
	return fmt.Sprintf("col_%d", i+1)
}
