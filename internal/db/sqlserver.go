package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	mssql "github.com/microsoft/go-mssqldb"

	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

// SQLServerSource reads metadata and samples from Microsoft SQL Server
type SQLServerSource struct {
	db   *sql.DB
	opts SourceOptions
}

// NewSQLServerSource connects using a sqlserver:// URL
func NewSQLServerSource(ctx context.Context, connString string, opts SourceOptions) (*SQLServerSource, error) {
	db, err := sql.Open("sqlserver", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &SQLServerSource{db: db, opts: opts.withDefaults("dbo")}, nil
}

// Close closes the database connection
func (s *SQLServerSource) Close() error {
	return s.db.Close()
}

func (s *SQLServerSource) queryStrings(ctx context.Context, query string, args ...any) ([][]string, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var result [][]string
	for rows.Next() {
		record := make([]string, len(columns))
		ptrs := make([]any, len(columns))
		for i := range record {
			ptrs[i] = &record[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		result = append(result, record)
	}

	return result, rows.Err()
}

// GetTableNames returns the base tables of the schema in name order
func (s *SQLServerSource) GetTableNames(ctx context.Context) ([]string, error) {
	records, err := s.queryStrings(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = @p1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`, s.opts.SchemaName)
	if err != nil {
		return nil, err
	}

	tables := make([]string, 0, len(records))
	for _, r := range records {
		tables = append(tables, r[0])
	}
	return tables, nil
}

// GetColumnInfos returns the columns of table in ordinal order
func (s *SQLServerSource) GetColumnInfos(ctx context.Context, table string) ([]schema.ColumnInfo, error) {
	query := `
		SELECT column_name, data_type, is_nullable, character_maximum_length
		FROM information_schema.columns
		WHERE table_schema = @p1 AND table_name = @p2
		ORDER BY ordinal_position
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
		// -1 marks (max) types
		col.CharacterMaximumLength = clampLength(charMaxLength)

		columns = append(columns, col)
	}

	return columns, rows.Err()
}

// GetPrimaryKeys returns the primary key columns of table
func (s *SQLServerSource) GetPrimaryKeys(ctx context.Context, table string) ([]schema.PrimaryKey, error) {
	records, err := s.queryStrings(ctx, `
		SELECT kcu.column_name, c.data_type
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.columns c
			ON c.table_schema = kcu.table_schema
			AND c.table_name = kcu.table_name
			AND c.column_name = kcu.column_name
		WHERE tc.table_schema = @p1
			AND tc.table_name = @p2
			AND tc.constraint_type = 'PRIMARY KEY'
		ORDER BY kcu.ordinal_position
	`, s.opts.SchemaName, table)
	if err != nil {
		return nil, err
	}

	var pk []schema.PrimaryKey
	for _, r := range records {
		pk = append(pk, schema.PrimaryKey{ColumnName: r[0], DataType: r[1]})
	}
	return pk, nil
}

// GetForeignKeys returns every foreign key edge of the schema
func (s *SQLServerSource) GetForeignKeys(ctx context.Context) ([]schema.ForeignKey, error) {
	records, err := s.queryStrings(ctx, `
		SELECT tp.name, cp.name, tr.name, cr.name
		FROM sys.foreign_key_columns fkc
		JOIN sys.tables tp ON fkc.parent_object_id = tp.object_id
		JOIN sys.columns cp ON fkc.parent_object_id = cp.object_id AND fkc.parent_column_id = cp.column_id
		JOIN sys.tables tr ON fkc.referenced_object_id = tr.object_id
		JOIN sys.columns cr ON fkc.referenced_object_id = cr.object_id AND fkc.referenced_column_id = cr.column_id
		JOIN sys.schemas sp ON tp.schema_id = sp.schema_id
		WHERE sp.name = @p1
		ORDER BY tp.name, fkc.constraint_object_id, fkc.constraint_column_id
	`, s.opts.SchemaName)
	if err != nil {
		return nil, err
	}

	var fks []schema.ForeignKey
	for _, r := range records {
		fks = append(fks, schema.ForeignKey{FromTable: r[0], FromColumn: r[1], ToTable: r[2], ToColumn: r[3]})
	}
	return fks, nil
}

// DecodeToContent maps an information_schema data_type to content
func (s *SQLServerSource) DecodeToContent(dataType string, charMaxLength *int) (namespace.Content, error) {
	return decodeSQLServer(dataType, charMaxLength)
}

// SetSeed is a no-op; SQL Server samples in checksum order
func (s *SQLServerSource) SetSeed(ctx context.Context) error {
	return nil
}

// GetDeterministicSamples returns up to SampleSize rows of table in checksum order
func (s *SQLServerSource) GetDeterministicSamples(ctx context.Context, table string) ([]schema.Row, error) {
	query, args, err := sqlserverSampleQuery(s.opts.SchemaName, table, s.opts.SampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build sample query: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get table data: %w", err)
	}
	defer rows.Close()

	return scanRows(rows, normalizeSQLServerValue)
}

// normalizeSQLServerValue decodes uniqueidentifier bytes, which SQL Server
// stores in mixed-endian order
func normalizeSQLServerValue(value any, column *sql.ColumnType) any {
	if b, ok := value.([]byte); ok && strings.EqualFold(column.DatabaseTypeName(), "UNIQUEIDENTIFIER") {
		var id mssql.UniqueIdentifier
		if err := id.Scan(b); err == nil {
			return strings.ToLower(id.String())
		}
	}
	return normalizeValue(value, column)
}
