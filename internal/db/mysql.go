package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

// MySQLSource reads metadata and samples from MySQL
type MySQLSource struct {
	db   *sql.DB
	opts SourceOptions
}

// NewMySQLSource connects to MySQL using a driver DSN. Temporal columns are
// always parsed into time values, and the DSN's database is the default schema.
func NewMySQLSource(ctx context.Context, dsn string, opts SourceOptions) (*MySQLSource, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid MySQL DSN: %w", err)
	}
	cfg.ParseTime = true

	connector, err := mysql.NewConnector(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db := sql.OpenDB(connector)

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &MySQLSource{db: db, opts: opts.withDefaults(cfg.DBName)}, nil
}

// Close closes the database connection
func (s *MySQLSource) Close() error {
	return s.db.Close()
}

// GetTableNames returns the base tables of the schema in name order
func (s *MySQLSource) GetTableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = ? AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := s.db.QueryContext(ctx, query, s.opts.SchemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tableName string
		if err := rows.Scan(&tableName); err != nil {
			return nil, err
		}
		tables = append(tables, tableName)
	}

	return tables, rows.Err()
}

// GetColumnInfos returns the columns of table. DataType is the full
// column_type so unsigned integers and enum members survive.
func (s *MySQLSource) GetColumnInfos(ctx context.Context, table string) ([]schema.ColumnInfo, error) {
	query := `
		SELECT
			c.column_name,
			c.column_type,
			c.is_nullable,
			c.character_maximum_length
		FROM information_schema.columns c
		WHERE c.table_schema = ? AND c.table_name = ?
		ORDER BY c.ordinal_position
	`

	rows, err := s.db.QueryContext(ctx, query, s.opts.SchemaName, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.ColumnInfo
	for rows.Next() {
		var col schema.ColumnInfo
		var nullable string
		var charMaxLength sql.NullInt64

		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &charMaxLength); err != nil {
			return nil, err
		}

		col.Nullable = nullable == "YES"
		col.CharacterMaximumLength = clampLength(charMaxLength)

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// GetPrimaryKeys returns the primary key columns of table
func (s *MySQLSource) GetPrimaryKeys(ctx context.Context, table string) ([]schema.PrimaryKey, error) {
	query := `
		SELECT kcu.column_name, c.column_type
		FROM information_schema.key_column_usage kcu
		JOIN information_schema.columns c
			ON c.table_schema = kcu.table_schema
			AND c.table_name = kcu.table_name
			AND c.column_name = kcu.column_name
		WHERE kcu.table_schema = ?
			AND kcu.table_name = ?
			AND kcu.constraint_name = 'PRIMARY'
		ORDER BY kcu.ordinal_position
	`

	rows, err := s.db.QueryContext(ctx, query, s.opts.SchemaName, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pk []schema.PrimaryKey
	for rows.Next() {
		var key schema.PrimaryKey
		if err := rows.Scan(&key.ColumnName, &key.DataType); err != nil {
			return nil, err
		}
		pk = append(pk, key)
	}

	return pk, rows.Err()
}

// GetForeignKeys returns every foreign key edge of the schema
func (s *MySQLSource) GetForeignKeys(ctx context.Context) ([]schema.ForeignKey, error) {
	query := `
		SELECT
			kcu.table_name,
			kcu.column_name,
			kcu.referenced_table_name,
			kcu.referenced_column_name
		FROM information_schema.key_column_usage kcu
		WHERE kcu.table_schema = ?
			AND kcu.referenced_table_name IS NOT NULL
		ORDER BY kcu.table_name, kcu.constraint_name, kcu.ordinal_position
	`

	rows, err := s.db.QueryContext(ctx, query, s.opts.SchemaName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fks []schema.ForeignKey
	for rows.Next() {
		var fk schema.ForeignKey
		if err := rows.Scan(&fk.FromTable, &fk.FromColumn, &fk.ToTable, &fk.ToColumn); err != nil {
			return nil, err
		}
		fks = append(fks, fk)
	}

	return fks, rows.Err()
}

// DecodeToContent maps a column_type to content
func (s *MySQLSource) DecodeToContent(dataType string, charMaxLength *int) (namespace.Content, error) {
	return decodeMySQL(dataType, charMaxLength)
}

// SetSeed is a no-op; the seed is passed to rand() in every sample query
func (s *MySQLSource) SetSeed(ctx context.Context) error {
	return nil
}

// GetDeterministicSamples returns up to SampleSize rows of table in seeded random order
func (s *MySQLSource) GetDeterministicSamples(ctx context.Context, table string) ([]schema.Row, error) {
	query, args, err := mysqlSampleQuery(s.opts.SchemaName, table, s.opts.SampleSize, s.opts.Seed)
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

// clampLength converts a reported maximum length, which may exceed int32 for
// long text types, to a bounded *int
func clampLength(n sql.NullInt64) *int {
	if !n.Valid || n.Int64 <= 0 {
		return nil
	}
	const maxPatternLength = 65535
	length := int(min(n.Int64, maxPatternLength))
	return &length
}
