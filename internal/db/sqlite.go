package db

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	_ "github.com/mattn/go-sqlite3"

	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

// SQLiteSource reads metadata and samples from a SQLite database file
type SQLiteSource struct {
	db   *sql.DB
	opts SourceOptions
}

// NewSQLiteSource opens the SQLite database at path
func NewSQLiteSource(ctx context.Context, path string, opts SourceOptions) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return newSQLiteSource(db, opts), nil
}

func newSQLiteSource(db *sql.DB, opts SourceOptions) *SQLiteSource {
	return &SQLiteSource{db: db, opts: opts.withDefaults("main")}
}

// Close closes the database connection
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// GetTableNames returns the user tables in name order
func (s *SQLiteSource) GetTableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tableList []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tableList = append(tableList, tableName)
	}

	return tableList, rows.Err()
}

type sqliteColumn struct {
	name     string
	declared string
	notNull  bool
	pkOrder  int
}

func (s *SQLiteSource) tableInfo(ctx context.Context, table string) ([]sqliteColumn, error) {
	query := fmt.Sprintf("PRAGMA table_info(%s)", quoteIdentifier('"', table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []sqliteColumn
	for rows.Next() {
		var cid, notNull, pk int
		var name, colType string
		var defaultValue sql.NullString

		if err := rows.Scan(&cid, &name, &colType, &notNull, &defaultValue, &pk); err != nil {
			return nil, err
		}

		columns = append(columns, sqliteColumn{name: name, declared: colType, notNull: notNull != 0, pkOrder: pk})
	}

	return columns, rows.Err()
}

// GetColumnInfos returns the columns of table. The maximum length comes from
// the declared type, e.g. VARCHAR(20).
func (s *SQLiteSource) GetColumnInfos(ctx context.Context, table string) ([]schema.ColumnInfo, error) {
	info, err := s.tableInfo(ctx, table)
	if err != nil {
		return nil, err
	}

	columns := make([]schema.ColumnInfo, 0, len(info))
	for _, c := range info {
		columns = append(columns, schema.ColumnInfo{
			Name:                   c.name,
			DataType:               c.declared,
			Nullable:               !c.notNull,
			CharacterMaximumLength: charLengthFromType(c.declared),
		})
	}
	return columns, nil
}

// GetPrimaryKeys returns the primary key columns of table in key order
func (s *SQLiteSource) GetPrimaryKeys(ctx context.Context, table string) ([]schema.PrimaryKey, error) {
	info, err := s.tableInfo(ctx, table)
	if err != nil {
		return nil, err
	}

	var pkColumns []sqliteColumn
	for _, c := range info {
		if c.pkOrder > 0 {
			pkColumns = append(pkColumns, c)
		}
	}
	sort.Slice(pkColumns, func(i, j int) bool { return pkColumns[i].pkOrder < pkColumns[j].pkOrder })

	var pk []schema.PrimaryKey
	for _, c := range pkColumns {
		pk = append(pk, schema.PrimaryKey{ColumnName: c.name, DataType: c.declared})
	}
	return pk, nil
}

// GetForeignKeys returns the foreign key edges of every table. A reference
// without a target column points at the target's primary key.
func (s *SQLiteSource) GetForeignKeys(ctx context.Context) ([]schema.ForeignKey, error) {
	tables, err := s.GetTableNames(ctx)
	if err != nil {
		return nil, err
	}

	var fks []schema.ForeignKey
	for _, table := range tables {
		tableFKs, err := s.foreignKeyList(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to list foreign keys of %s: %w", table, err)
		}
		fks = append(fks, tableFKs...)
	}
	return fks, nil
}

func (s *SQLiteSource) foreignKeyList(ctx context.Context, table string) ([]schema.ForeignKey, error) {
	query := fmt.Sprintf("PRAGMA foreign_key_list(%s)", quoteIdentifier('"', table))

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	var fks []schema.ForeignKey
	for rows.Next() {
		var id, seq int
		var targetTable, fromCol, onUpdate, onDelete, match string
		var toCol sql.NullString

		if err := rows.Scan(&id, &seq, &targetTable, &fromCol, &toCol, &onUpdate, &onDelete, &match); err != nil {
			rows.Close()
			return nil, err
		}

		fks = append(fks, schema.ForeignKey{
			FromTable:  table,
			FromColumn: fromCol,
			ToTable:    targetTable,
			ToColumn:   toCol.String,
		})
	}
	err = rows.Err()
	rows.Close()
	if err != nil {
		return nil, err
	}

	// Resolved after the cursor is closed; a single connection database would
	// otherwise deadlock on the nested query.
	for i := range fks {
		if fks[i].ToColumn != "" {
			continue
		}
		pk, err := s.GetPrimaryKeys(ctx, fks[i].ToTable)
		if err != nil {
			return nil, err
		}
		if len(pk) != 1 {
			return nil, fmt.Errorf("foreign key %s.%s references %s without a single-column primary key",
				table, fks[i].FromColumn, fks[i].ToTable)
		}
		fks[i].ToColumn = pk[0].ColumnName
	}

	return fks, nil
}

// DecodeToContent maps a declared column type to content
func (s *SQLiteSource) DecodeToContent(dataType string, charMaxLength *int) (namespace.Content, error) {
	return decodeSQLite(dataType, charMaxLength)
}

// SetSeed is a no-op; SQLite samples in rowid order
func (s *SQLiteSource) SetSeed(ctx context.Context) error {
	return nil
}

// GetDeterministicSamples returns the first SampleSize rows of table by rowid
func (s *SQLiteSource) GetDeterministicSamples(ctx context.Context, table string) ([]schema.Row, error) {
	query, args, err := sqliteSampleQuery(table, s.opts.SampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build sample query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get table data: %w", err)
	}
	defer rows.Close()

	return scanRows(rows, normalizeValue)
}
