package schema

// ColumnInfo describes a table column as reported by the database
type ColumnInfo struct {
	Name                   string
	DataType               string
	Nullable               bool
	CharacterMaximumLength *int
}

// PrimaryKey is one column of a table's primary key
type PrimaryKey struct {
	ColumnName string
	DataType   string
}

// ForeignKey is a single-column foreign key edge
type ForeignKey struct {
	FromTable  string
	FromColumn string
	ToTable    string
	ToColumn   string
}

// Row is a sampled row; Values[i] belongs to Columns[i]
type Row struct {
	Columns []string
	Values  []any
}

// Get returns the value of the named column
func (r Row) Get(column string) (any, bool) {
	for i, c := range r.Columns {
		if c == column {
			return r.Values[i], true
		}
	}
	return nil, false
}
