package importer

import (
	"context"

	"github.com/tordrt/dbsynth/internal/namespace"
	"github.com/tordrt/dbsynth/internal/schema"
)

//go:generate mockgen -source=datasource.go -destination=mocks/mock_datasource.go -package=mocks

// DataSource samples real rows from any backend
type DataSource interface {
	// SetSeed fixes the sampling seed so repeated imports sample the same rows
	SetSeed(ctx context.Context) error
	// GetDeterministicSamples returns a bounded, repeatable sample of a table
	GetDeterministicSamples(ctx context.Context, table string) ([]schema.Row, error)
}

// RelationalDataSource exposes the relational structure of a database
type RelationalDataSource interface {
	// GetTableNames lists tables in a stable order
	GetTableNames(ctx context.Context) ([]string, error)
	// GetColumnInfos lists the columns of a table in ordinal order
	GetColumnInfos(ctx context.Context, table string) ([]schema.ColumnInfo, error)
	// GetPrimaryKeys lists the primary key columns of a table
	GetPrimaryKeys(ctx context.Context, table string) ([]schema.PrimaryKey, error)
	// GetForeignKeys lists every foreign key edge of the database
	GetForeignKeys(ctx context.Context) ([]schema.ForeignKey, error)
	// DecodeToContent maps a native column type to a scalar content node
	DecodeToContent(dataType string, charMaxLength *int) (namespace.Content, error)
}

// Source is a backend able to both describe and sample a database
type Source interface {
	DataSource
	RelationalDataSource
}
