package listview

import (
	"strings"
	"time"
)

// MatchKind selects the predicate applied to a filter field.
type MatchKind string

const (
	MatchSubstring MatchKind = "substring"
	MatchExact     MatchKind = "exact"
	MatchDateRange MatchKind = "dateRange"
)

// Sentinel enum value meaning "match all".
const AllValue = "all"

// FieldSpec binds one filter field to the record accessors the predicate needs.
// Text is used for substring fields (a query may target several record fields,
// e.g. name OR email), Value for exact fields, Date for dateRange fields.
type FieldSpec[T any] struct {
	Name  string
	Kind  MatchKind
	Text  func(T) []string
	Value func(T) string
	Date  func(T) time.Time
}

// Config enumerates the filterable fields of one resource.
type Config[T any] struct {
	Resource string
	Fields   []FieldSpec[T]
}

// DateBounds holds an inclusive date range; nil means the bound is unset.
type DateBounds struct {
	From *time.Time
	To   *time.Time
}

func (b DateBounds) active() bool { return b.From != nil || b.To != nil }

// Criteria is the current set of user-chosen filter values for a list view.
// Empty string and AllValue both mean "no constraint" on a field.
type Criteria struct {
	values map[string]string
	ranges map[string]DateBounds
}

func NewCriteria() Criteria {
	return Criteria{
		values: make(map[string]string),
		ranges: make(map[string]DateBounds),
	}
}

func (c *Criteria) SetValue(field, v string) {
	if c.values == nil {
		c.values = make(map[string]string)
	}
	c.values[field] = v
}

func (c *Criteria) SetRange(field string, from, to *time.Time) {
	if c.ranges == nil {
		c.ranges = make(map[string]DateBounds)
	}
	c.ranges[field] = DateBounds{From: from, To: to}
}

func (c Criteria) Value(field string) string      { return c.values[field] }
func (c Criteria) Bounds(field string) DateBounds { return c.ranges[field] }

// IsEmpty reports whether no field imposes any constraint.
func (c Criteria) IsEmpty() bool {
	for _, v := range c.values {
		if strings.TrimSpace(v) != "" && v != AllValue {
			return false
		}
	}
	for _, b := range c.ranges {
		if b.active() {
			return false
		}
	}
	return true
}

// Reset returns every field to its empty form.
func (c *Criteria) Reset() {
	c.values = make(map[string]string)
	c.ranges = make(map[string]DateBounds)
}

// Equal compares two criteria field by field.
func (c Criteria) Equal(o Criteria) bool {
	if len(c.values) != len(o.values) || len(c.ranges) != len(o.ranges) {
		return false
	}
	for k, v := range c.values {
		if o.values[k] != v {
			return false
		}
	}
	for k, b := range c.ranges {
		ob, ok := o.ranges[k]
		if !ok || !timePtrEqual(b.From, ob.From) || !timePtrEqual(b.To, ob.To) {
			return false
		}
	}
	return true
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Match reports whether rec passes every active predicate (logical AND).
func (cfg Config[T]) Match(c Criteria, rec T) bool {
	for _, f := range cfg.Fields {
		switch f.Kind {
		case MatchSubstring:
			q := strings.TrimSpace(c.Value(f.Name))
			if q == "" {
				continue
			}
			q = strings.ToLower(q)
			hit := false
			for _, s := range f.Text(rec) {
				if strings.Contains(strings.ToLower(s), q) {
					hit = true
					break
				}
			}
			if !hit {
				return false
			}
		case MatchExact:
			v := c.Value(f.Name)
			if v == "" || v == AllValue {
				continue
			}
			if f.Value(rec) != v {
				return false
			}
		case MatchDateRange:
			b := c.Bounds(f.Name)
			if !b.active() {
				continue
			}
			d := f.Date(rec)
			if d.IsZero() {
				return false
			}
			if b.From != nil && d.Before(*b.From) {
				return false
			}
			if b.To != nil && d.After(*b.To) {
				return false
			}
		}
	}
	return true
}

// Filter derives the subset of recs passing the criteria. The input is never
// mutated; with empty criteria the full collection is returned as-is.
func (cfg Config[T]) Filter(c Criteria, recs []T) []T {
	if c.IsEmpty() {
		return recs
	}
	out := make([]T, 0, len(recs))
	for _, r := range recs {
		if cfg.Match(c, r) {
			out = append(out, r)
		}
	}
	return out
}
