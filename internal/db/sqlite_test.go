package db

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/dbsynth/internal/importer"
	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

const testSchema = `
CREATE TABLE users (
	id INTEGER PRIMARY KEY,
	username VARCHAR(20) NOT NULL,
	email TEXT,
	active BOOLEAN NOT NULL DEFAULT 1,
	created_at DATETIME NOT NULL
);
CREATE TABLE orders (
	id INTEGER PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users(id),
	total REAL NOT NULL
);
CREATE TABLE notes (
	id INTEGER PRIMARY KEY,
	user_id INTEGER REFERENCES users
);
INSERT INTO users (id, username, email, active, created_at) VALUES
	(1, 'ada', 'ada@example.com', 1, '2024-01-02 10:00:00'),
	(2, 'grace', NULL, 0, '2024-03-04 12:30:00'),
	(3, 'linus', 'linus@example.com', 1, '2025-06-07 08:00:00');
INSERT INTO orders (id, user_id, total) VALUES (10, 1, 9.5), (11, 2, 120.25);
`

func newTestSQLite(t *testing.T, opts SourceOptions) *SQLiteSource {
	t.Helper()
	ctx := context.Background()

	src, err := NewSQLiteSource(ctx, filepath.Join(t.TempDir(), "test.db"), opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = src.Close() })

	_, err = src.db.ExecContext(ctx, testSchema)
	require.NoError(t, err)
	return src
}

func TestSQLiteMetadata(t *testing.T) {
	ctx := context.Background()
	src := newTestSQLite(t, SourceOptions{})

	tables, err := src.GetTableNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"notes", "orders", "users"}, tables)

	columns, err := src.GetColumnInfos(ctx, "users")
	require.NoError(t, err)
	require.Len(t, columns, 5)
	assert.Equal(t, "username", columns[1].Name)
	assert.False(t, columns[1].Nullable)
	require.NotNil(t, columns[1].CharacterMaximumLength)
	assert.Equal(t, 20, *columns[1].CharacterMaximumLength)
	assert.True(t, columns[2].Nullable)
	assert.Nil(t, columns[2].CharacterMaximumLength)

	pk, err := src.GetPrimaryKeys(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, []schema.PrimaryKey{{ColumnName: "id", DataType: "INTEGER"}}, pk)

	fks, err := src.GetForeignKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schema.ForeignKey{
		{FromTable: "notes", FromColumn: "user_id", ToTable: "users", ToColumn: "id"},
		{FromTable: "orders", FromColumn: "user_id", ToTable: "users", ToColumn: "id"},
	}, fks)
}

func TestSQLiteSamples(t *testing.T) {
	ctx := context.Background()
	src := newTestSQLite(t, SourceOptions{SampleSize: 2})

	require.NoError(t, src.SetSeed(ctx))
	rows, err := src.GetDeterministicSamples(ctx, "users")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	id, ok := rows[0].Get("id")
	require.True(t, ok)
	assert.Equal(t, int64(1), id)

	email, ok := rows[1].Get("email")
	require.True(t, ok)
	assert.Nil(t, email)

	username, _ := rows[1].Get("username")
	assert.Equal(t, "grace", username)

	again, err := src.GetDeterministicSamples(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, rows, again)
}

func TestSQLiteImport(t *testing.T) {
	ctx := context.Background()
	src := newTestSQLite(t, SourceOptions{SampleSize: 10})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ns, err := importer.New(src, importer.WithLogger(logger)).Build(ctx)
	require.NoError(t, err)

	assert.Equal(t, []string{"notes", "orders", "users"}, ns.CollectionNames())

	get := func(collection, field string) namespace.Content {
		ref, err := namespace.NewFieldRef(collection, field)
		require.NoError(t, err)
		c, err := ns.GetNode(ref)
		require.NoError(t, err)
		return c
	}

	assert.True(t, get("users", "id").(*namespace.NumberContent).IsId())
	assert.Equal(t, "users.content.id", get("orders", "user_id").(*namespace.SameAsContent).Ref.String())
	assert.Equal(t, "users.content.id", get("notes", "user_id").(*namespace.SameAsContent).Ref.String())

	total := get("orders", "total").(*namespace.NumberContent)
	require.NotNil(t, total.FloatRange)
	assert.Equal(t, 0.0, total.FloatRange.Low)
	assert.Equal(t, 120.25, total.FloatRange.High)

	createdAt := get("users", "created_at").(*namespace.StringContent)
	require.NotNil(t, createdAt.DateTime.Begin)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC), *createdAt.DateTime.Begin)
	assert.Equal(t, time.Date(2025, 6, 7, 8, 0, 0, 0, time.UTC), *createdAt.DateTime.End)

	email := get("users", "email").(*namespace.OneOfContent)
	assert.True(t, email.HasNull())
}

func TestSQLiteCompositeKeyRejected(t *testing.T) {
	ctx := context.Background()
	src := newTestSQLite(t, SourceOptions{})

	_, err := src.db.ExecContext(ctx, `CREATE TABLE line_items (order_id INTEGER, line INTEGER, PRIMARY KEY (order_id, line))`)
	require.NoError(t, err)

	pk, err := src.GetPrimaryKeys(ctx, "line_items")
	require.NoError(t, err)
	assert.Len(t, pk, 2)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, err = importer.New(src, importer.WithLogger(logger)).Build(ctx)
	assert.ErrorIs(t, err, importer.ErrUnsupportedSchema)
}
