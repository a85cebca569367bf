package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

// PostgresSource reads metadata and samples from PostgreSQL. It holds a
// single connection so the seed set by SetSeed applies to the sampling queries.
type PostgresSource struct {
	conn  *pgx.Conn
	opts  SourceOptions
	enums map[string][]string
}

// NewPostgresSource connects to PostgreSQL
func NewPostgresSource(ctx context.Context, connString string, opts SourceOptions) (*PostgresSource, error) {
	conn, err := pgx.Connect(ctx, connString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Test the connection
	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresSource{
		conn:  conn,
		opts:  opts.withDefaults("public"),
		enums: make(map[string][]string),
	}, nil
}

// Close closes the database connection
func (s *PostgresSource) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// GetTableNames returns the base tables of the schema in name order
func (s *PostgresSource) GetTableNames(ctx context.Context) ([]string, error) {
	query := `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = $1 AND table_type = 'BASE TABLE'
		ORDER BY table_name
	`

	rows, err := s.conn.Query(ctx, query, s.opts.SchemaName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// GetColumnInfos returns the columns of table in ordinal order. The labels of
// enum columns are cached for DecodeToContent.
func (s *PostgresSource) GetColumnInfos(ctx context.Context, table string) ([]schema.ColumnInfo, error) {
	query := `
		SELECT
			c.column_name,
			c.udt_name,
			c.is_nullable,
			c.character_maximum_length,
			c.data_type
		FROM information_schema.columns c
		WHERE table_schema = $1 AND table_name = $2
		ORDER BY ordinal_position
	`

	rows, err := s.conn.Query(ctx, query, s.opts.SchemaName, table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var columns []schema.ColumnInfo
	var enumTypes []string

	for rows.Next() {
		var col schema.ColumnInfo
		var nullable string
		var dataType string

		if err := rows.Scan(&col.Name, &col.DataType, &nullable, &col.CharacterMaximumLength, &dataType); err != nil {
			return nil, err
		}
		col.Nullable = nullable == "YES"

		if dataType == "USER-DEFINED" {
			enumTypes = append(enumTypes, col.DataType)
		}

		columns = append(columns, col)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(enumTypes) > 0 {
		if err := s.loadEnumLabels(ctx, enumTypes); err != nil {
			return nil, fmt.Errorf("failed to load enum labels: %w", err)
		}
	}

	return columns, nil
}

// loadEnumLabels caches enum labels for multiple enum types at once
func (s *PostgresSource) loadEnumLabels(ctx context.Context, enumTypeNames []string) error {
	query := `
		SELECT t.typname, e.enumlabel
		FROM pg_type t
		JOIN pg_enum e ON t.oid = e.enumtypid
		JOIN pg_namespace n ON t.typnamespace = n.oid
		WHERE n.nspname = $1 AND t.typname = ANY($2)
		ORDER BY t.typname, e.enumsortorder
	`

	rows, err := s.conn.Query(ctx, query, s.opts.SchemaName, enumTypeNames)
	if err != nil {
		return err
	}
	defer rows.Close()

	labels := make(map[string][]string)
	for rows.Next() {
		var typName, enumLabel string
		if err := rows.Scan(&typName, &enumLabel); err != nil {
			return err
		}
		labels[typName] = append(labels[typName], enumLabel)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for typName, values := range labels {
		s.enums[typName] = values
	}
	return nil
}

// GetPrimaryKeys returns the primary key columns of table
func (s *PostgresSource) GetPrimaryKeys(ctx context.Context, table string) ([]schema.PrimaryKey, error) {
	query := `
		SELECT kcu.column_name, c.udt_name
		FROM information_schema.table_constraints tc
		JOIN information_schema.key_column_usage kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
			AND tc.table_name = kcu.table_name
		JOIN information_schema.columns c
			ON c.table_schema = kcu.table_schema
			AND c.table_name = kcu.table_name
			AND c.column_name = kcu.column_name
		WHERE tc.table_schema = $1
			AND tc.table_name = $2
			AND tc.constraint_type = 'PRIMARY KEY'
		ORDER BY kcu.ordinal_position
	`

	rows, err := s.conn.Query(ctx, query, s.opts.SchemaName, table)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[schema.PrimaryKey])
}

// GetForeignKeys returns one edge per foreign key column. Columns of a
// composite key are paired with the referenced column at the same position.
func (s *PostgresSource) GetForeignKeys(ctx context.Context) ([]schema.ForeignKey, error) {
	query := `
		SELECT
			kcu.table_name,
			kcu.column_name,
			rkcu.table_name AS foreign_table_name,
			rkcu.column_name AS foreign_column_name
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS kcu
			ON tc.constraint_name = kcu.constraint_name
			AND tc.table_schema = kcu.table_schema
		JOIN information_schema.referential_constraints AS rc
			ON rc.constraint_name = tc.constraint_name
			AND rc.constraint_schema = tc.table_schema
		JOIN information_schema.key_column_usage AS rkcu
			ON rkcu.constraint_name = rc.unique_constraint_name
			AND rkcu.constraint_schema = rc.unique_constraint_schema
			AND rkcu.ordinal_position = kcu.position_in_unique_constraint
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND tc.table_schema = $1
		ORDER BY kcu.table_name, tc.constraint_name, kcu.ordinal_position
	`

	rows, err := s.conn.Query(ctx, query, s.opts.SchemaName)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByPos[schema.ForeignKey])
}

// DecodeToContent maps a udt_name to content
func (s *PostgresSource) DecodeToContent(dataType string, charMaxLength *int) (namespace.Content, error) {
	return decodePostgres(dataType, charMaxLength, s.enums)
}

// SetSeed seeds random() for the rest of the session
func (s *PostgresSource) SetSeed(ctx context.Context) error {
	_, err := s.conn.Exec(ctx, "SELECT setseed($1)", s.opts.Seed)
	return err
}

// GetDeterministicSamples returns up to SampleSize rows of table in seeded random order
func (s *PostgresSource) GetDeterministicSamples(ctx context.Context, table string) ([]schema.Row, error) {
	query, args, err := postgresSampleQuery(s.opts.SchemaName, table, s.opts.SampleSize)
	if err != nil {
		return nil, fmt.Errorf("failed to build sample query: %w", err)
	}

	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get table data: %w", err)
	}
	defer rows.Close()

	var columns []string
	for _, fd := range rows.FieldDescriptions() {
		columns = append(columns, fd.Name)
	}

	var data []schema.Row
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		for i := range values {
			values[i] = normalizePostgresValue(values[i])
		}
		data = append(data, schema.Row{Columns: columns, Values: values})
	}

	return data, rows.Err()
}

// normalizePostgresValue converts pgx's decoded values into the plain forms
// the merge strategy understands
func normalizePostgresValue(value any) any {
	switch v := value.(type) {
	case [16]byte:
		return uuid.UUID(v).String()
	case pgtype.Numeric:
		f, err := v.Float64Value()
		if err != nil || !f.Valid {
			return nil
		}
		return f.Float64
	case pgtype.Time:
		if !v.Valid {
			return nil
		}
		return time.Time{}.Add(time.Duration(v.Microseconds) * time.Microsecond).Format("15:04:05")
	case []any:
		for i := range v {
			v[i] = normalizePostgresValue(v[i])
		}
		return v
	case []byte:
		return string(v)
	default:
		return v
	}
}
