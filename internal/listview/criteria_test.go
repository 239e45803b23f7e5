package listview

import (
	"testing"
	"time"
)

type row struct {
	name   string
	email  string
	status string
	date   time.Time
}

func testConfig() Config[row] {
	return Config[row]{
		Resource: "rows",
		Fields: []FieldSpec[row]{
			{Name: "q", Kind: MatchSubstring, Text: func(r row) []string { return []string{r.name, r.email} }},
			{Name: "status", Kind: MatchExact, Value: func(r row) string { return r.status }},
			{Name: "date", Kind: MatchDateRange, Date: func(r row) time.Time { return r.date }},
		},
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 12, 0, 0, 0, time.UTC)
}

func sampleRows() []row {
	return []row{
		{name: "Alex Smith", email: "alex@example.com", status: "Paid", date: day(1)},
		{name: "maria", email: "maria@example.com", status: "Pending", date: day(5)},
		{name: "Jordan Lee", email: "jordan@example.com", status: "Rejected", date: day(9)},
	}
}

func TestEmptyCriteriaIsIdentity(t *testing.T) {
	cfg := testConfig()
	rows := sampleRows()

	cr := NewCriteria()
	cr.SetValue("q", "")
	cr.SetValue("status", AllValue)
	cr.SetRange("date", nil, nil)

	got := cfg.Filter(cr, rows)
	if len(got) != len(rows) {
		t.Fatalf("expected identity, got %d of %d rows", len(got), len(rows))
	}
	for i := range rows {
		if got[i] != rows[i] {
			t.Fatalf("row %d changed: %+v != %+v", i, got[i], rows[i])
		}
	}
}

func TestSubstringMatchesCaseInsensitive(t *testing.T) {
	cfg := testConfig()
	cr := NewCriteria()
	cr.SetValue("q", "alex")

	got := cfg.Filter(cr, sampleRows())
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0].name != "Alex Smith" {
		t.Fatalf("expected Alex Smith, got %s", got[0].name)
	}
}

func TestSubstringMatchesAnyTargetField(t *testing.T) {
	cfg := testConfig()
	cr := NewCriteria()
	cr.SetValue("q", "jordan@")

	got := cfg.Filter(cr, sampleRows())
	if len(got) != 1 || got[0].name != "Jordan Lee" {
		t.Fatalf("expected email match for Jordan Lee, got %+v", got)
	}
}

func TestExactMatchAndSentinel(t *testing.T) {
	cfg := testConfig()

	cr := NewCriteria()
	cr.SetValue("status", "Pending")
	got := cfg.Filter(cr, sampleRows())
	if len(got) != 1 || got[0].status != "Pending" {
		t.Fatalf("expected single Pending row, got %+v", got)
	}

	cr2 := NewCriteria()
	cr2.SetValue("status", AllValue)
	if n := len(cfg.Filter(cr2, sampleRows())); n != 3 {
		t.Fatalf("sentinel should match all, got %d rows", n)
	}
}

func TestDateRangeBoundsInclusive(t *testing.T) {
	cfg := testConfig()
	rows := sampleRows()

	from := day(1)
	to := day(5)
	cr := NewCriteria()
	cr.SetRange("date", &from, &to)

	got := cfg.Filter(cr, rows)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows in range, got %d", len(got))
	}
	for _, r := range got {
		if r.date.Before(from) || r.date.After(to) {
			t.Fatalf("row %s outside range", r.name)
		}
	}

	// Only a lower bound.
	cr2 := NewCriteria()
	cr2.SetRange("date", &to, nil)
	got = cfg.Filter(cr2, rows)
	if len(got) != 2 {
		t.Fatalf("expected 2 rows with open upper bound, got %d", len(got))
	}
}

func TestDateRangeExcludesZeroDates(t *testing.T) {
	cfg := testConfig()
	rows := []row{{name: "no-date", status: "Paid"}}
	from := day(1)
	cr := NewCriteria()
	cr.SetRange("date", &from, nil)

	if n := len(cfg.Filter(cr, rows)); n != 0 {
		t.Fatalf("zero date should be excluded by an active bound, got %d rows", n)
	}
}

func TestPredicatesCombineWithAnd(t *testing.T) {
	cfg := testConfig()
	cr := NewCriteria()
	cr.SetValue("q", "example.com")
	cr.SetValue("status", "Paid")

	got := cfg.Filter(cr, sampleRows())
	if len(got) != 1 || got[0].name != "Alex Smith" {
		t.Fatalf("AND combination failed: %+v", got)
	}
}

func TestCriteriaEqual(t *testing.T) {
	from := day(2)
	a := NewCriteria()
	a.SetValue("q", "x")
	a.SetRange("date", &from, nil)

	b := NewCriteria()
	b.SetValue("q", "x")
	from2 := day(2)
	b.SetRange("date", &from2, nil)

	if !a.Equal(b) {
		t.Fatal("identical criteria should compare equal")
	}

	b.SetValue("q", "y")
	if a.Equal(b) {
		t.Fatal("different criteria should not compare equal")
	}
}
