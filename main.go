package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"strings"

	"gsheet_ranges/internal/app"
	"gsheet_ranges/internal/deployment"
	"gsheet_ranges/internal/export"
	"gsheet_ranges/internal/gsheet"

	"github.com/rs/zerolog/log"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	list := flag.Bool("list", false, "List the sheets of the spreadsheet")
	read := flag.String("read", "", "Read one range, e.g. 'Sheet1!A1:C10'")
	batch := flag.String("batch", "", "Read several ranges, comma-separated")
	write := flag.String("write", "", "Write one range (requires -values)")
	values := flag.String("values", "", "JSON array of arrays of cell values for -write")
	clear := flag.String("clear", "", "Clear a sheet by name (100x100 box from the origin)")
	clearAll := flag.Bool("all", false, "With -clear: clear the whole sheet instead of the fixed box")
	dimension := flag.String("dimension", "columns", "Orientation of value arrays: rows or columns")
	exportTable := flag.String("export", "", "With -read: stream the result into a BigQuery dataset.table")
	deploy := flag.String("deploy", "", "Deploy a binary to user@host:path and exit")
	binary := flag.String("binary", "./gsheet_ranges", "Binary to upload with -deploy")
	flag.Parse()

	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if *deploy != "" {
		deployer := deployment.NewDeployer(*deploy, config.DeployKeyFile)
		if err := deployer.Deploy(*binary); err != nil {
			log.Fatal().Err(err).Msg("Deployment failed")
		}
		return
	}

	ctx := context.Background()
	dim := gsheet.Dimension(*dimension).Normalize()

	// Initialize the sheets client and bind a handle to the spreadsheet
	var client *gsheet.Client
	if config.CredentialsJSON != "" {
		client, err = gsheet.NewClientFromJSON(ctx, []byte(config.CredentialsJSON), config.Scopes...)
	} else {
		client, err = gsheet.NewClient(ctx, config.CredentialsFile, config.Scopes...)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create sheets client")
	}

	handle, err := gsheet.NewSpreadsheetHandle(ctx, client, config.SpreadsheetID)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open spreadsheet")
	}

	enc := json.NewEncoder(os.Stdout)

	switch {
	case *list:
		if err := enc.Encode(handle.ListSheetRefs()); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode sheet list")
		}

	case *read != "":
		rows, err := handle.ReadRange(ctx, *read, dim)
		if err != nil {
			log.Fatal().Err(err).Str("range", *read).Msg("Failed to read range")
		}
		if *exportTable != "" {
			exportRows(ctx, config, *exportTable, rows)
			return
		}
		if err := enc.Encode(rows); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode values")
		}

	case *batch != "":
		ranges := strings.Split(*batch, ",")
		results, err := handle.ReadRangesBatch(ctx, ranges, dim)
		if err != nil {
			log.Fatal().Err(err).Str("ranges", *batch).Msg("Failed to batch read ranges")
		}
		if err := enc.Encode(results); err != nil {
			log.Fatal().Err(err).Msg("Failed to encode values")
		}

	case *write != "":
		var rows [][]interface{}
		if err := json.Unmarshal([]byte(*values), &rows); err != nil {
			log.Fatal().Err(err).Msg("Failed to parse -values JSON")
		}
		if err := handle.WriteRange(ctx, *write, rows, dim); err != nil {
			log.Fatal().Err(err).Str("range", *write).Msg("Failed to write range")
		}

	case *clear != "":
		if *clearAll {
			err = handle.ClearSheetAll(ctx, *clear)
		} else {
			err = handle.ClearSheet(ctx, *clear)
		}
		if err != nil {
			log.Fatal().Err(err).Str("sheet", *clear).Msg("Failed to clear sheet")
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

// exportRows streams a rows-major range read into BigQuery, taking the first
// row as the column header.
func exportRows(ctx context.Context, config *app.Config, table string, rows [][]interface{}) {
	parts := strings.SplitN(table, ".", 2)
	if len(parts) != 2 {
		log.Fatal().Str("table", table).Msg("Expected -export in dataset.table form")
	}

	exporter, err := export.NewExporter(ctx, config.BigQueryProject)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create BigQuery exporter")
	}
	defer exporter.Close()

	var header []string
	if len(rows) > 0 {
		for _, cell := range rows[0] {
			header = append(header, gsheet.NewCell(cell).String())
		}
		rows = rows[1:]
	}

	if err := exporter.ExportRange(ctx, parts[0], parts[1], header, rows); err != nil {
		log.Fatal().Err(err).Msg("Failed to export range")
	}
}
