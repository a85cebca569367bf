package namespace

import (
	"encoding/json"
	"fmt"
	"time"
)

// Content is a node of a schema-generation tree.
//
// The set of implementations is closed: *ObjectContent, *ArrayContent,
// *NumberContent, *OneOfContent, *SameAsContent, *NullContent,
// *StringContent and *BoolContent.
type Content interface {
	json.Marshaler
	contentType() string
}

// TypeName returns the serialized type tag of a content node ("object", "one_of", ...).
func TypeName(c Content) string {
	if c == nil {
		return ""
	}
	return c.contentType()
}

// FieldContent is a field of an ObjectContent
type FieldContent struct {
	Optional bool
	Content  Content
}

// NewFieldContent wraps a decoded column node into a field.
//
// A nullable column becomes one_of[content, null]. Optional is never set:
// an optional field is omitted from generated output, whereas a nullable
// column must be present and hold null.
func NewFieldContent(content Content, nullable bool) *FieldContent {
	if nullable {
		content = &OneOfContent{Variants: []Content{content, &NullContent{}}}
	}
	return &FieldContent{Content: content}
}

// ObjectContent is an ordered set of named fields
type ObjectContent struct {
	names  []string
	fields map[string]*FieldContent
}

// NewObjectContent creates an empty object
func NewObjectContent() *ObjectContent {
	return &ObjectContent{fields: make(map[string]*FieldContent)}
}

func (o *ObjectContent) contentType() string { return "object" }

// Put inserts or replaces a field. New fields are appended after the existing ones.
func (o *ObjectContent) Put(name string, field *FieldContent) error {
	if err := ValidateName(name); err != nil {
		return err
	}
	if o.fields == nil {
		o.fields = make(map[string]*FieldContent)
	}
	if _, ok := o.fields[name]; !ok {
		o.names = append(o.names, name)
	}
	o.fields[name] = field
	return nil
}

// Field returns the named field
func (o *ObjectContent) Field(name string) (*FieldContent, bool) {
	f, ok := o.fields[name]
	return f, ok
}

// FieldNames returns the field names in insertion order
func (o *ObjectContent) FieldNames() []string {
	names := make([]string, len(o.names))
	copy(names, o.names)
	return names
}

// Len returns the number of fields
func (o *ObjectContent) Len() int {
	return len(o.names)
}

// ArrayContent generates Length elements of Content
type ArrayContent struct {
	Length  Content
	Content Content
}

func (a *ArrayContent) contentType() string { return "array" }

// NewCollection wraps an object template in an array of exactly one element.
// The synthesis engine multiplies the template; references into it stay valid.
func NewCollection(template *ObjectContent) *ArrayContent {
	return &ArrayContent{
		Length:  NewIntRange(U64, 1, 2, 1),
		Content: template,
	}
}

// NumberKind is the numeric subtype of a NumberContent
type NumberKind string

const (
	U64 NumberKind = "u64"
	I64 NumberKind = "i64"
	F64 NumberKind = "f64"
)

// NumberContent is either a range or an identifier generator.
// Integer kinds use Range, F64 uses FloatRange.
type NumberContent struct {
	Kind       NumberKind
	Range      *RangeStep
	FloatRange *FloatRangeStep
	Id         *Id
}

func (n *NumberContent) contentType() string { return "number" }

// IsId reports whether the node generates unique identifiers
func (n *NumberContent) IsId() bool {
	return n.Id != nil
}

// RangeStep is a half-open integer range [Low, High)
type RangeStep struct {
	Low  int64
	High int64
	Step int64
}

// FloatRangeStep is a float range. Step 0 means continuous.
type FloatRangeStep struct {
	Low  float64
	High float64
	Step float64
}

// Id generates strictly increasing unique values starting at StartAt
// (the engine default when zero).
type Id struct {
	StartAt int64
}

// NewIntRange creates an integer range node
func NewIntRange(kind NumberKind, low, high, step int64) *NumberContent {
	return &NumberContent{Kind: kind, Range: &RangeStep{Low: low, High: high, Step: step}}
}

// NewFloatRange creates an f64 range node
func NewFloatRange(low, high, step float64) *NumberContent {
	return &NumberContent{Kind: F64, FloatRange: &FloatRangeStep{Low: low, High: high, Step: step}}
}

// NewId creates a u64 identifier generator
func NewId() *NumberContent {
	return &NumberContent{Kind: U64, Id: &Id{}}
}

// OneOfContent picks one of its variants per generated value
type OneOfContent struct {
	Variants []Content
}

func (o *OneOfContent) contentType() string { return "one_of" }

// HasNull reports whether one of the variants is null
func (o *OneOfContent) HasNull() bool {
	for _, v := range o.Variants {
		if _, ok := v.(*NullContent); ok {
			return true
		}
	}
	return false
}

// SameAsContent aliases the values generated at Ref
type SameAsContent struct {
	Ref FieldRef
}

func (s *SameAsContent) contentType() string { return "same_as" }

// NullContent always generates null
type NullContent struct{}

func (n *NullContent) contentType() string { return "null" }

// BoolContent generates true with probability Frequency
type BoolContent struct {
	Frequency float64
}

func (b *BoolContent) contentType() string { return "bool" }

// StringKind selects the generator of a StringContent
type StringKind int

const (
	StringPattern StringKind = iota
	StringDateTime
	StringUUID
	StringCategorical
)

// StringContent generates strings. Which fields apply depends on Kind.
type StringContent struct {
	Kind       StringKind
	Pattern    string
	DateTime   *DateTimeContent
	Categories []string // sorted, unique
}

func (s *StringContent) contentType() string { return "string" }

// NewPattern creates a regex-driven string node
func NewPattern(pattern string) *StringContent {
	return &StringContent{Kind: StringPattern, Pattern: pattern}
}

// NewAlphanumeric creates a pattern node of at most maxLength alphanumeric characters
func NewAlphanumeric(maxLength int) *StringContent {
	return NewPattern(fmt.Sprintf("[a-zA-Z0-9]{0, %d}", maxLength))
}

// NewUUID creates a uuid string node
func NewUUID() *StringContent {
	return &StringContent{Kind: StringUUID}
}

// NewCategorical creates a string node drawing from the given categories
func NewCategorical(categories ...string) *StringContent {
	s := &StringContent{Kind: StringCategorical}
	for _, c := range categories {
		s.addCategory(c)
	}
	return s
}

// NewDateTime creates a date/time string node with no bounds
func NewDateTime(t DateTimeType) *StringContent {
	return &StringContent{Kind: StringDateTime, DateTime: &DateTimeContent{Type: t}}
}

// DateTimeType is the temporal flavour of a date-time string
type DateTimeType string

const (
	NaiveDate      DateTimeType = "naive_date"
	NaiveTime      DateTimeType = "naive_time"
	NaiveDateTime  DateTimeType = "naive_date_time"
	OffsetDateTime DateTimeType = "offset_date_time"
)

// Format returns the strftime format the synthesis engine expects
func (t DateTimeType) Format() string {
	switch t {
	case NaiveDate:
		return "%Y-%m-%d"
	case NaiveTime:
		return "%H:%M:%S"
	case NaiveDateTime:
		return "%Y-%m-%dT%H:%M:%S"
	default:
		return "%Y-%m-%dT%H:%M:%S%z"
	}
}

// Layout returns the Go time layout equivalent to Format
func (t DateTimeType) Layout() string {
	switch t {
	case NaiveDate:
		return "2006-01-02"
	case NaiveTime:
		return "15:04:05"
	case NaiveDateTime:
		return "2006-01-02T15:04:05"
	default:
		return "2006-01-02T15:04:05-0700"
	}
}

// DateTimeContent bounds a date-time string. Nil bounds are left to the engine.
type DateTimeContent struct {
	Type  DateTimeType
	Begin *time.Time
	End   *time.Time
}
