package namespace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// MarshalJSON writes the collections as one JSON object, in insertion order
func (n *Namespace) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range n.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeMember(&buf, name, n.collections[name]); err != nil {
			return nil, fmt.Errorf("collection %s: %w", name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalContent encodes a single content tree
func MarshalContent(c Content) ([]byte, error) {
	return json.Marshal(c)
}

func (o *ObjectContent) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":"object"`)
	for _, name := range o.names {
		buf.WriteByte(',')
		if err := writeMember(&buf, escapeMember(name), o.fields[name]); err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *FieldContent) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(f.Content)
	if err != nil {
		return nil, err
	}
	if !f.Optional || len(data) < 2 || data[0] != '{' {
		return data, nil
	}
	out := make([]byte, 0, len(data)+17)
	out = append(out, `{"optional":true,`...)
	return append(out, data[1:]...), nil
}

func (a *ArrayContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string  `json:"type"`
		Length  Content `json:"length"`
		Content Content `json:"content"`
	}{"array", a.Length, a.Content})
}

type rangeJSON struct {
	Low  any `json:"low"`
	High any `json:"high"`
	Step any `json:"step,omitempty"`
}

type idJSON struct {
	StartAt int64 `json:"start_at,omitempty"`
}

func (n *NumberContent) MarshalJSON() ([]byte, error) {
	out := struct {
		Type    string     `json:"type"`
		Subtype NumberKind `json:"subtype"`
		Range   *rangeJSON `json:"range,omitempty"`
		Id      *idJSON    `json:"id,omitempty"`
	}{Type: "number", Subtype: n.Kind}

	switch {
	case n.Id != nil:
		out.Id = &idJSON{StartAt: n.Id.StartAt}
	case n.FloatRange != nil:
		r := &rangeJSON{Low: n.FloatRange.Low, High: n.FloatRange.High}
		if n.FloatRange.Step != 0 {
			r.Step = n.FloatRange.Step
		}
		out.Range = r
	case n.Range != nil:
		out.Range = &rangeJSON{Low: n.Range.Low, High: n.Range.High, Step: n.Range.Step}
	}
	return json.Marshal(out)
}

func (o *OneOfContent) MarshalJSON() ([]byte, error) {
	variants := o.Variants
	if variants == nil {
		variants = []Content{}
	}
	return json.Marshal(struct {
		Type     string    `json:"type"`
		Variants []Content `json:"variants"`
	}{"one_of", variants})
}

func (s *SameAsContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Ref  string `json:"ref"`
	}{"same_as", s.Ref.collection + "." + contentSegment + "." + escapeMember(s.Ref.field)})
}

func (n *NullContent) MarshalJSON() ([]byte, error) {
	return []byte(`{"type":"null"}`), nil
}

func (b *BoolContent) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type      string  `json:"type"`
		Frequency float64 `json:"frequency"`
	}{"bool", b.Frequency})
}

type dateTimeJSON struct {
	Format  string       `json:"format"`
	Subtype DateTimeType `json:"subtype"`
	Begin   string       `json:"begin,omitempty"`
	End     string       `json:"end,omitempty"`
}

func (s *StringContent) MarshalJSON() ([]byte, error) {
	out := struct {
		Type        string         `json:"type"`
		Pattern     string         `json:"pattern,omitempty"`
		DateTime    *dateTimeJSON  `json:"date_time,omitempty"`
		UUID        *struct{}      `json:"uuid,omitempty"`
		Categorical map[string]int `json:"categorical,omitempty"`
	}{Type: "string"}

	switch s.Kind {
	case StringDateTime:
		dt := &dateTimeJSON{Format: s.DateTime.Type.Format(), Subtype: s.DateTime.Type}
		if s.DateTime.Begin != nil {
			dt.Begin = s.DateTime.Begin.Format(s.DateTime.Type.Layout())
		}
		if s.DateTime.End != nil {
			dt.End = s.DateTime.End.Format(s.DateTime.Type.Layout())
		}
		out.DateTime = dt
	case StringUUID:
		out.UUID = &struct{}{}
	case StringCategorical:
		// encoding/json sorts map keys, keeping the output stable
		out.Categorical = make(map[string]int, len(s.Categories))
		for _, c := range s.Categories {
			out.Categorical[c] = 1
		}
	default:
		out.Pattern = s.Pattern
	}
	return json.Marshal(out)
}

// reservedMembers are the keys an object shares with its field names
var reservedMembers = []string{"type", "optional"}

// escapeMember appends an underscore to a field name that is a reserved key
// followed by zero or more underscores, so "type" encodes as "type_" and
// "type_" as "type__". The mapping is injective.
func escapeMember(name string) string {
	base := strings.TrimRight(name, "_")
	for _, reserved := range reservedMembers {
		if base == reserved {
			return name + "_"
		}
	}
	return name
}

func writeMember(buf *bytes.Buffer, name string, value any) error {
	key, err := json.Marshal(name)
	if err != nil {
		return err
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(key)
	buf.WriteByte(':')
	buf.Write(data)
	return nil
}
