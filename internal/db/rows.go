package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tordrt/dbsynth/internal/schema"
)

// scanRows reads every row of a database/sql result set and normalizes the
// driver values with convert
func scanRows(rows *sql.Rows, convert func(value any, column *sql.ColumnType) any) ([]schema.Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to get columns: %w", err)
	}
	columnTypes, err := rows.ColumnTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to get column types: %w", err)
	}

	var data []schema.Row
	for rows.Next() {
		values := make([]any, len(columns))
		valuePtrs := make([]any, len(columns))
		for i := range values {
			valuePtrs[i] = &values[i]
		}

		if err := rows.Scan(valuePtrs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}

		for i := range values {
			values[i] = convert(values[i], columnTypes[i])
		}

		data = append(data, schema.Row{Columns: columns, Values: values})
	}

	return data, rows.Err()
}

// normalizeValue turns raw driver bytes into strings. 16-byte values of uuid
// columns become their canonical text form.
func normalizeValue(value any, column *sql.ColumnType) any {
	b, ok := value.([]byte)
	if !ok {
		return value
	}
	if len(b) == 16 && strings.Contains(strings.ToUpper(column.DatabaseTypeName()), "UUID") {
		if id, err := uuid.FromBytes(b); err == nil {
			return id.String()
		}
	}
	return string(b)
}
