package namespace

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/tordrt/dbsynth/internal/schema"
)

// MergeStrategy folds sampled values into an existing content node
type MergeStrategy interface {
	Merge(content Content, value any) error
}

// OptionalMergeStrategy widens nodes so they cover sampled values.
//
// Row fields without a matching object field are ignored, and a field whose
// value does not fit its node is skipped and reported to OnSkip. Identifier
// generators and references are never modified. Merging the same values
// twice yields the same tree as merging them once.
type OptionalMergeStrategy struct {
	// OnSkip, when set, is called for every skipped field
	OnSkip func(field string, err error)
}

// Merge implements MergeStrategy
func (s OptionalMergeStrategy) Merge(content Content, value any) error {
	switch c := content.(type) {
	case *ArrayContent:
		return s.mergeArray(c, value)
	case *ObjectContent:
		return s.mergeObject(c, value)
	case *OneOfContent:
		return s.mergeOneOf(c, value)
	case *SameAsContent:
		return nil
	case *NumberContent:
		return mergeNumber(c, value)
	case *StringContent:
		return mergeString(c, value)
	case *BoolContent:
		if value == nil {
			return incompatible(c, value)
		}
		if _, ok := value.(bool); !ok {
			if _, err := toInt(value); err != nil {
				return incompatible(c, value)
			}
		}
		return nil
	case *NullContent:
		if value != nil {
			return incompatible(c, value)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown content %T", ErrMergeIncompatible, content)
	}
}

// mergeArray merges every element into the element template. The length is
// structural and left alone.
func (s OptionalMergeStrategy) mergeArray(a *ArrayContent, value any) error {
	values, ok := value.([]any)
	if !ok {
		return incompatible(a, value)
	}
	for i, v := range values {
		if err := s.Merge(a.Content, v); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

func (s OptionalMergeStrategy) mergeObject(o *ObjectContent, value any) error {
	var names []string
	var values []any

	switch v := value.(type) {
	case schema.Row:
		names, values = v.Columns, v.Values
	case map[string]any:
		for k := range v {
			names = append(names, k)
		}
		sort.Strings(names)
		for _, k := range names {
			values = append(values, v[k])
		}
	default:
		return incompatible(o, value)
	}

	for i, name := range names {
		field, ok := o.Field(name)
		if !ok {
			continue
		}
		if i >= len(values) {
			if s.OnSkip != nil {
				s.OnSkip(name, fmt.Errorf("%w: no value for column %s", ErrMergeIncompatible, name))
			}
			continue
		}
		if err := s.Merge(field.Content, values[i]); err != nil {
			if s.OnSkip != nil {
				s.OnSkip(name, err)
			}
		}
	}
	return nil
}

func (s OptionalMergeStrategy) mergeOneOf(o *OneOfContent, value any) error {
	if value == nil {
		if o.HasNull() {
			return nil
		}
		return incompatible(o, value)
	}

	var lastErr error
	for _, variant := range o.Variants {
		if _, ok := variant.(*NullContent); ok {
			continue
		}
		// Probe a scratch copy first so a failed variant is left untouched.
		if err := s.Merge(cloneScalar(variant), value); err != nil {
			lastErr = err
			continue
		}
		return s.Merge(variant, value)
	}
	if lastErr == nil {
		lastErr = incompatible(o, value)
	}
	return lastErr
}

func mergeNumber(n *NumberContent, value any) error {
	if n.Id != nil {
		return nil
	}

	switch n.Kind {
	case F64:
		f, err := toFloat(value)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return incompatible(n, value)
		}
		if n.FloatRange == nil {
			n.FloatRange = &FloatRangeStep{Low: f, High: f}
			return nil
		}
		n.FloatRange.Low = math.Min(n.FloatRange.Low, f)
		n.FloatRange.High = math.Max(n.FloatRange.High, f)
		return nil
	default:
		i, err := toInt(value)
		if err != nil {
			return incompatible(n, value)
		}
		if n.Kind == U64 && i < 0 {
			return incompatible(n, value)
		}
		// High is exclusive and must stay representable
		if n.Range == nil {
			if i == math.MaxInt64 {
				return incompatible(n, value)
			}
			n.Range = &RangeStep{Low: i, High: i + 1, Step: 1}
			return nil
		}
		step := n.Range.Step
		if step <= 0 {
			step = 1
		}
		if i >= n.Range.High && i > math.MaxInt64-step {
			return incompatible(n, value)
		}
		n.Range.Step = step
		if i < n.Range.Low {
			n.Range.Low = i
		}
		if i >= n.Range.High {
			n.Range.High = i + step
		}
		return nil
	}
}

func mergeString(s *StringContent, value any) error {
	switch s.Kind {
	case StringDateTime:
		t, err := toTime(value, s.DateTime.Type)
		if err != nil {
			return incompatible(s, value)
		}
		if s.DateTime.Begin == nil || t.Before(*s.DateTime.Begin) {
			s.DateTime.Begin = &t
		}
		if s.DateTime.End == nil || t.After(*s.DateTime.End) {
			s.DateTime.End = &t
		}
		return nil
	case StringCategorical:
		str, ok := value.(string)
		if !ok {
			return incompatible(s, value)
		}
		s.addCategory(str)
		return nil
	default:
		switch value.(type) {
		case string, []byte:
			return nil
		default:
			return incompatible(s, value)
		}
	}
}

func (s *StringContent) addCategory(c string) {
	i := sort.SearchStrings(s.Categories, c)
	if i < len(s.Categories) && s.Categories[i] == c {
		return
	}
	s.Categories = append(s.Categories, "")
	copy(s.Categories[i+1:], s.Categories[i:])
	s.Categories[i] = c
}

// cloneScalar copies the mutable parts of a leaf node. Composite nodes are
// returned as-is; merging into them only touches their own leaves.
func cloneScalar(c Content) Content {
	switch v := c.(type) {
	case *NumberContent:
		cp := *v
		if v.Range != nil {
			r := *v.Range
			cp.Range = &r
		}
		if v.FloatRange != nil {
			r := *v.FloatRange
			cp.FloatRange = &r
		}
		return &cp
	case *StringContent:
		cp := *v
		cp.Categories = append([]string(nil), v.Categories...)
		if v.DateTime != nil {
			dt := *v.DateTime
			cp.DateTime = &dt
		}
		return &cp
	default:
		return c
	}
}

func incompatible(c Content, value any) error {
	return fmt.Errorf("%w: cannot merge %T into %s", ErrMergeIncompatible, value, TypeName(c))
}

func toInt(value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint8:
		return int64(v), nil
	case uint16:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("%d overflows int64", v)
		}
		return int64(v), nil
	case float32:
		return floatToInt(float64(v))
	case float64:
		return floatToInt(v)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	case []byte:
		return strconv.ParseInt(string(v), 10, 64)
	default:
		return 0, fmt.Errorf("not an integer: %T", value)
	}
}

func floatToInt(f float64) (int64, error) {
	if f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("%v is not integral", f)
	}
	return int64(f), nil
}

func toFloat(value any) (float64, error) {
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case string:
		return strconv.ParseFloat(v, 64)
	case []byte:
		return strconv.ParseFloat(string(v), 64)
	case bool:
		return 0, fmt.Errorf("not a number: bool")
	default:
		i, err := toInt(value)
		if err != nil {
			return 0, err
		}
		return float64(i), nil
	}
}

func toTime(value any, t DateTimeType) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		if t != OffsetDateTime {
			// naive types carry no zone; keep the wall clock
			v = time.Date(v.Year(), v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second(), 0, time.UTC)
		}
		if t == NaiveDate {
			v = time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
		}
		if t == NaiveTime {
			v = time.Date(0, 1, 1, v.Hour(), v.Minute(), v.Second(), 0, time.UTC)
		}
		return v, nil
	case string:
		return parseTime(v, t)
	case []byte:
		return parseTime(string(v), t)
	default:
		return time.Time{}, fmt.Errorf("not a time: %T", value)
	}
}

var fallbackLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"15:04:05",
}

func parseTime(s string, t DateTimeType) (time.Time, error) {
	if v, err := time.Parse(t.Layout(), s); err == nil {
		return toTime(v, t)
	}
	for _, layout := range fallbackLayouts {
		if v, err := time.Parse(layout, s); err == nil {
			return toTime(v, t)
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized %s value %q", t, s)
}
