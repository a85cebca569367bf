package db

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tordrt/dbsynth/internal/namespace"
)

// ErrUnsupportedType is returned by the decoders for column types with no converter
var ErrUnsupportedType = errors.New("unsupported column type")

func unsupported(dataType string) error {
	return fmt.Errorf("%w: no converter for %q", ErrUnsupportedType, dataType)
}

func text(charMaxLength *int) namespace.Content {
	maxLength := 1
	if charMaxLength != nil && *charMaxLength > 0 {
		maxLength = *charMaxLength
	}
	return namespace.NewAlphanumeric(maxLength)
}

func boolean() namespace.Content {
	return &namespace.BoolContent{Frequency: 0.5}
}

func integer(kind namespace.NumberKind) namespace.Content {
	return namespace.NewIntRange(kind, 0, 1, 1)
}

func float() namespace.Content {
	return namespace.NewFloatRange(0, 1, 0)
}

// decodePostgres maps a udt_name to content. enums holds the labels of the
// user-defined enum types of the schema.
func decodePostgres(udtName string, charMaxLength *int, enums map[string][]string) (namespace.Content, error) {
	if labels, ok := enums[udtName]; ok {
		return namespace.NewCategorical(labels...), nil
	}

	// udt_name has underscore prefix for arrays (e.g., "_text" for text[], "_int4" for integer[])
	if strings.HasPrefix(udtName, "_") {
		element, err := decodePostgres(udtName[1:], charMaxLength, enums)
		if err != nil {
			return nil, err
		}
		return &namespace.ArrayContent{
			Length:  namespace.NewIntRange(namespace.U64, 1, 2, 1),
			Content: element,
		}, nil
	}

	switch udtName {
	case "bool":
		return boolean(), nil
	case "int2", "int4", "int8":
		return integer(namespace.I64), nil
	case "oid":
		return integer(namespace.U64), nil
	case "float4", "float8", "numeric", "money":
		return float(), nil
	case "bpchar", "varchar", "text", "name", "citext":
		return text(charMaxLength), nil
	case "date":
		return namespace.NewDateTime(namespace.NaiveDate), nil
	case "time", "timetz":
		return namespace.NewDateTime(namespace.NaiveTime), nil
	case "timestamp":
		return namespace.NewDateTime(namespace.NaiveDateTime), nil
	case "timestamptz":
		return namespace.NewDateTime(namespace.OffsetDateTime), nil
	case "uuid":
		return namespace.NewUUID(), nil
	case "json", "jsonb":
		return namespace.NewObjectContent(), nil
	default:
		return nil, unsupported(udtName)
	}
}

// decodeMySQL maps a column_type such as "int unsigned", "tinyint(1)" or
// "enum('a','b')" to content
func decodeMySQL(columnType string, charMaxLength *int) (namespace.Content, error) {
	columnType = strings.TrimSpace(columnType)
	lower := strings.ToLower(columnType)
	base, args := splitTypeArgs(lower)
	unsigned := strings.Contains(lower, "unsigned")

	switch base {
	case "bool", "boolean":
		return boolean(), nil
	case "tinyint":
		if args == "1" {
			return boolean(), nil
		}
		fallthrough
	case "smallint", "mediumint", "int", "integer", "bigint", "year":
		if unsigned {
			return integer(namespace.U64), nil
		}
		return integer(namespace.I64), nil
	case "bit":
		if args == "" || args == "1" {
			return boolean(), nil
		}
		return integer(namespace.U64), nil
	case "decimal", "numeric", "float", "double", "real":
		return float(), nil
	case "char", "varchar", "tinytext", "text", "mediumtext", "longtext":
		return text(charMaxLength), nil
	case "enum":
		values, err := parseEnumValues(columnType)
		if err != nil {
			return nil, err
		}
		return namespace.NewCategorical(values...), nil
	case "date":
		return namespace.NewDateTime(namespace.NaiveDate), nil
	case "time":
		return namespace.NewDateTime(namespace.NaiveTime), nil
	case "datetime", "timestamp":
		return namespace.NewDateTime(namespace.NaiveDateTime), nil
	case "json":
		return namespace.NewObjectContent(), nil
	default:
		return nil, unsupported(columnType)
	}
}

// decodeSQLite maps a declared column type using SQLite's affinity rules,
// checking the more specific keywords first
func decodeSQLite(declaredType string, charMaxLength *int) (namespace.Content, error) {
	upper := strings.ToUpper(declaredType)

	switch {
	case strings.Contains(upper, "BOOL"):
		return boolean(), nil
	case strings.Contains(upper, "DATETIME"), strings.Contains(upper, "TIMESTAMP"):
		return namespace.NewDateTime(namespace.NaiveDateTime), nil
	case strings.Contains(upper, "DATE"):
		return namespace.NewDateTime(namespace.NaiveDate), nil
	case strings.Contains(upper, "TIME"):
		return namespace.NewDateTime(namespace.NaiveTime), nil
	case strings.Contains(upper, "UUID"):
		return namespace.NewUUID(), nil
	case strings.Contains(upper, "JSON"):
		return namespace.NewObjectContent(), nil
	case strings.Contains(upper, "INT"):
		return integer(namespace.I64), nil
	case strings.Contains(upper, "CHAR"), strings.Contains(upper, "CLOB"), strings.Contains(upper, "TEXT"):
		return text(charMaxLength), nil
	case strings.Contains(upper, "REAL"), strings.Contains(upper, "FLOA"), strings.Contains(upper, "DOUB"),
		strings.Contains(upper, "NUMERIC"), strings.Contains(upper, "DECIMAL"):
		return float(), nil
	default:
		return nil, unsupported(declaredType)
	}
}

// decodeSQLServer maps an information_schema data_type to content
func decodeSQLServer(dataType string, charMaxLength *int) (namespace.Content, error) {
	switch strings.ToLower(dataType) {
	case "bit":
		return boolean(), nil
	case "tinyint":
		return integer(namespace.U64), nil
	case "smallint", "int", "bigint":
		return integer(namespace.I64), nil
	case "decimal", "numeric", "money", "smallmoney", "float", "real":
		return float(), nil
	case "char", "varchar", "nchar", "nvarchar", "text", "ntext":
		return text(charMaxLength), nil
	case "date":
		return namespace.NewDateTime(namespace.NaiveDate), nil
	case "time":
		return namespace.NewDateTime(namespace.NaiveTime), nil
	case "datetime", "datetime2", "smalldatetime":
		return namespace.NewDateTime(namespace.NaiveDateTime), nil
	case "datetimeoffset":
		return namespace.NewDateTime(namespace.OffsetDateTime), nil
	case "uniqueidentifier":
		return namespace.NewUUID(), nil
	default:
		return nil, unsupported(dataType)
	}
}

// splitTypeArgs splits "varchar(20) unsigned" into "varchar" and "20"
func splitTypeArgs(columnType string) (string, string) {
	base := columnType
	if i := strings.IndexAny(base, "( "); i >= 0 {
		base = base[:i]
	}
	start := strings.Index(columnType, "(")
	end := strings.LastIndex(columnType, ")")
	if start == -1 || end == -1 || start >= end {
		return base, ""
	}
	return base, columnType[start+1 : end]
}

// parseEnumValues parses enum values from the column type string.
// MySQL stores enum types as "enum('value1','value2','value3')"
func parseEnumValues(columnType string) ([]string, error) {
	_, enumList := splitTypeArgs(columnType)
	if enumList == "" {
		return nil, fmt.Errorf("invalid enum type format: %s", columnType)
	}

	var values []string
	for _, part := range strings.Split(enumList, ",") {
		part = strings.TrimSpace(part)
		// Remove surrounding quotes
		if len(part) >= 2 && part[0] == '\'' && part[len(part)-1] == '\'' {
			part = part[1 : len(part)-1]
		}
		values = append(values, strings.ReplaceAll(part, "''", "'"))
	}

	return values, nil
}

// charLengthFromType extracts n from declared types like "VARCHAR(n)"
func charLengthFromType(declaredType string) *int {
	_, args := splitTypeArgs(declaredType)
	if args == "" {
		return nil
	}
	var n int
	if _, err := fmt.Sscanf(args, "%d", &n); err != nil || n <= 0 {
		return nil
	}
	return &n
}
