package dbsynth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/tordrt/dbsynth/internal/importer/mocks"
	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

func TestFilteredSource(t *testing.T) {
	ctx := context.Background()
	all := []string{"audit_log", "orders", "products", "users"}
	fks := []schema.ForeignKey{
		{FromTable: "orders", FromColumn: "user_id", ToTable: "users", ToColumn: "id"},
		{FromTable: "audit_log", FromColumn: "user_id", ToTable: "users", ToColumn: "id"},
		{FromTable: "orders", FromColumn: "product_id", ToTable: "products", ToColumn: "id"},
	}

	tests := []struct {
		name       string
		include    []string
		exclude    []string
		wantTables []string
		wantFKs    []schema.ForeignKey
	}{
		{
			name:       "exclude only",
			exclude:    []string{"audit_log"},
			wantTables: []string{"orders", "products", "users"},
			wantFKs:    []schema.ForeignKey{fks[0], fks[2]},
		},
		{
			name:       "include in request order",
			include:    []string{"users", "orders"},
			wantTables: []string{"users", "orders"},
			wantFKs:    []schema.ForeignKey{fks[0]},
		},
		{
			name:       "include then exclude",
			include:    []string{"users", "orders", "products"},
			exclude:    []string{"users"},
			wantTables: []string{"orders", "products"},
			wantFKs:    []schema.ForeignKey{fks[2]},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := mocks.NewMockSource(gomock.NewController(t))
			src.EXPECT().GetTableNames(ctx).Return(all, nil).AnyTimes()
			src.EXPECT().GetForeignKeys(ctx).Return(fks, nil)

			filtered := newFilteredSource(src, tt.include, tt.exclude)

			tables, err := filtered.GetTableNames(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTables, tables)

			gotFKs, err := filtered.GetForeignKeys(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFKs, gotFKs)
		})
	}
}

func TestFilteredSourceErrors(t *testing.T) {
	ctx := context.Background()

	src := mocks.NewMockSource(gomock.NewController(t))
	src.EXPECT().GetTableNames(ctx).Return([]string{"users"}, nil)

	_, err := newFilteredSource(src, []string{"users", "ghosts"}, nil).GetTableNames(ctx)
	assert.ErrorIs(t, err, namespace.ErrNotFound)
	assert.Contains(t, err.Error(), "ghosts")

	boom := errors.New("connection refused")
	src = mocks.NewMockSource(gomock.NewController(t))
	src.EXPECT().GetTableNames(ctx).Return(nil, boom)

	_, err = newFilteredSource(src, nil, []string{"users"}).GetTableNames(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestFilteredSourcePassesThrough(t *testing.T) {
	ctx := context.Background()

	src := mocks.NewMockSource(gomock.NewController(t))
	columns := []schema.ColumnInfo{{Name: "id", DataType: "int4"}}
	src.EXPECT().GetColumnInfos(ctx, "users").Return(columns, nil)
	src.EXPECT().SetSeed(ctx).Return(nil)

	filtered := newFilteredSource(src, nil, []string{"audit_log"})

	got, err := filtered.GetColumnInfos(ctx, "users")
	require.NoError(t, err)
	assert.Equal(t, columns, got)
	assert.NoError(t, filtered.SetSeed(ctx))
}
