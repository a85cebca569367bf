package db

import (
	"fmt"
	"math"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// Sample queries select every column of at most n rows in a repeatable order.
// The order is random only where the backend can seed it.

func postgresSampleQuery(schemaName, table string, n uint64) (string, []any, error) {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).
		Select("*").
		From(pgx.Identifier{schemaName, table}.Sanitize()).
		OrderBy("random()").
		Limit(n).
		ToSql()
}

func mysqlSampleQuery(schemaName, table string, n uint64, seed float64) (string, []any, error) {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question).
		Select("*").
		From(quoteIdentifier('`', schemaName, table)).
		OrderByClause("rand(?)", mysqlSeed(seed)).
		Limit(n).
		ToSql()
}

func sqliteSampleQuery(table string, n uint64) (string, []any, error) {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question).
		Select("*").
		From(quoteIdentifier('"', table)).
		OrderBy("rowid").
		Limit(n).
		ToSql()
}

// SQL Server has no LIMIT; TOP goes in the select options. CHECKSUM(*) gives
// an order that depends only on row content.
func sqlserverSampleQuery(schemaName, table string, n uint64) (string, []any, error) {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.AtP).
		Select("*").
		Options(fmt.Sprintf("TOP (%d)", n)).
		From(bracketIdentifier(schemaName) + "." + bracketIdentifier(table)).
		OrderBy("CHECKSUM(*)").
		ToSql()
}

// mysqlSeed maps a seed in [-1, 1] onto the integer seed rand() expects
func mysqlSeed(seed float64) int64 {
	return int64(math.Round(seed * math.MaxInt32))
}

// quoteIdentifier quotes each part with quote, doubling embedded quotes, and
// joins the parts with dots
func quoteIdentifier(quote byte, parts ...string) string {
	q := string(quote)
	quoted := make([]string, 0, len(parts))
	for _, part := range parts {
		quoted = append(quoted, q+strings.ReplaceAll(part, q, q+q)+q)
	}
	return strings.Join(quoted, ".")
}

func bracketIdentifier(name string) string {
	return "[" + strings.ReplaceAll(name, "]", "]]") + "]"
}
