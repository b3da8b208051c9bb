package mcmaster

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/parquet-go/parquet-go"
	_ "modernc.org/sqlite"
)

// Load reads a vendor catalog file, detecting the format from the extension.
// A missing file is an empty catalog, not an error; the resolver will simply
// not find matches.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return EmptyCatalog(), nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		slog.Warn("vendor catalog file not found, starting with empty catalog", "path", path)
		return EmptyCatalog(), nil
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".csv":
		return loadCSV(path)
	case ".parquet":
		return loadParquet(path)
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLite(path)
	default:
		return nil, fmt.Errorf("unsupported catalog format: %s (supported: .csv, .parquet, .sqlite)", ext)
	}
}

// loadCSV reads a header-mapped CSV with spec_key, mcmaster_pn, description
// and pack_qty columns. Rows missing required columns are skipped.
func loadCSV(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return EmptyCatalog(), nil
		}
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"spec_key", "mcmaster_pn"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("catalog is missing required column %q", required)
		}
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []Match
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			slog.Warn("skipping malformed catalog row", "path", path, "line", line, "err", err)
			continue
		}
		row := Match{
			SpecKey:     field(record, "spec_key"),
			PN:          field(record, "mcmaster_pn"),
			Description: field(record, "description"),
		}
		if packStr := field(record, "pack_qty"); packStr != "" {
			pack, err := strconv.Atoi(packStr)
			if err != nil {
				slog.Warn("skipping unparseable pack_qty", "path", path, "line", line, "pack_qty", packStr)
			} else {
				row.PackQty = &pack
			}
		}
		rows = append(rows, row)
	}

	slog.Debug("loaded catalog CSV", "path", path, "rows", len(rows))
	return NewCatalog(rows), nil
}

// catalogRow is the Parquet row shape, matching the CSV column names.
type catalogRow struct {
	SpecKey     string `parquet:"spec_key"`
	McMasterPN  string `parquet:"mcmaster_pn"`
	Description string `parquet:"description"`
	PackQty     *int64 `parquet:"pack_qty,optional"`
}

func loadParquet(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat catalog file: %w", err)
	}

	pf, err := parquet.OpenFile(file, info.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet: %w", err)
	}

	reader := parquet.NewGenericReader[catalogRow](pf)
	defer reader.Close()

	var rows []Match
	batch := make([]catalogRow, 128)
	for {
		n, err := reader.Read(batch)
		for _, r := range batch[:n] {
			row := Match{SpecKey: r.SpecKey, PN: r.McMasterPN, Description: r.Description}
			if r.PackQty != nil {
				pack := int(*r.PackQty)
				row.PackQty = &pack
			}
			rows = append(rows, row)
		}
		if err != nil {
			break
		}
	}

	slog.Debug("loaded catalog parquet", "path", path, "rows", len(rows))
	return NewCatalog(rows), nil
}

func loadSQLite(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	defer db.Close()

	result, err := db.Query("SELECT spec_key, mcmaster_pn, COALESCE(description, ''), pack_qty FROM mcmaster_parts")
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog database: %w", err)
	}
	defer result.Close()

	var rows []Match
	for result.Next() {
		var row Match
		var pack sql.NullInt64
		if err := result.Scan(&row.SpecKey, &row.PN, &row.Description, &pack); err != nil {
			slog.Warn("skipping unreadable catalog row", "path", path, "err", err)
			continue
		}
		if pack.Valid {
			p := int(pack.Int64)
			row.PackQty = &p
		}
		rows = append(rows, row)
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog rows: %w", err)
	}

	slog.Debug("loaded catalog sqlite", "path", path, "rows", len(rows))
	return NewCatalog(rows), nil
}
