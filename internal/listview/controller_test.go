package listview

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
)

func manyRows(n int) []row {
	out := make([]row, n)
	for i := range out {
		out[i] = row{name: "user", status: "Paid", date: day(1 + i%25)}
	}
	return out
}

func staticFetcher(rows []row) Fetcher[row] {
	return func(context.Context) ([]row, error) { return rows, nil }
}

func TestLoadReplacesCollection(t *testing.T) {
	c := New(testConfig(), staticFetcher(sampleRows()), nil)
	if c.State() != StateIdle {
		t.Fatalf("expected idle before first load, got %s", c.State())
	}
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if c.State() != StateLoaded {
		t.Fatalf("expected loaded, got %s", c.State())
	}
	if snap := c.Snapshot(); snap.Total != 3 {
		t.Fatalf("expected 3 rows, got %d", snap.Total)
	}
}

func TestLoadErrorKeepsPreviousCollection(t *testing.T) {
	fail := false
	fetch := func(context.Context) ([]row, error) {
		if fail {
			return nil, errors.New("upstream request failed: boom")
		}
		return sampleRows(), nil
	}
	c := New(testConfig(), fetch, nil)
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("first load failed: %v", err)
	}

	fail = true
	if err := c.Load(context.Background()); err == nil {
		t.Fatal("expected load error")
	}

	snap := c.Snapshot()
	if snap.State != StateErrored {
		t.Fatalf("expected errored state, got %s", snap.State)
	}
	if snap.Error == "" {
		t.Fatal("expected error message recorded")
	}
	if snap.Total != 3 {
		t.Fatalf("stale collection must survive a failed load, got %d rows", snap.Total)
	}
}

func TestSetCriteriaResetsPageIndex(t *testing.T) {
	c := New(testConfig(), staticFetcher(manyRows(100)), nil)
	_ = c.Load(context.Background())

	c.SetPage(3)
	if snap := c.Snapshot(); snap.PageIndex != 3 {
		t.Fatalf("expected page 3, got %d", snap.PageIndex)
	}

	cr := NewCriteria()
	cr.SetValue("status", "Paid")
	c.SetCriteria(cr)
	if snap := c.Snapshot(); snap.PageIndex != 1 {
		t.Fatalf("setting criteria must reset to page 1, got %d", snap.PageIndex)
	}

	c.SetPage(3)
	c.SetPageSize(50)
	if snap := c.Snapshot(); snap.PageIndex != 1 || snap.PageSize != 50 {
		t.Fatalf("changing page size must reset to page 1, got page %d size %d", snap.PageIndex, snap.PageSize)
	}
}

func TestApplyHonorsIndexOnlyWhenStateUnchanged(t *testing.T) {
	c := New(testConfig(), staticFetcher(manyRows(100)), nil)
	_ = c.Load(context.Background())

	cr := NewCriteria()
	cr.SetValue("status", "Paid")

	c.Apply(cr, 3, DefaultPageSize)
	if snap := c.Snapshot(); snap.PageIndex != 1 {
		t.Fatalf("new criteria must win over requested index, got page %d", snap.PageIndex)
	}

	c.Apply(cr, 3, DefaultPageSize)
	if snap := c.Snapshot(); snap.PageIndex != 3 {
		t.Fatalf("unchanged criteria must honor requested index, got page %d", snap.PageIndex)
	}

	c.Apply(cr, 3, 50)
	if snap := c.Snapshot(); snap.PageIndex != 1 || snap.PageSize != 50 {
		t.Fatalf("size change must reset index, got page %d size %d", snap.PageIndex, snap.PageSize)
	}
}

func TestMutateSuccessRefetchesOnce(t *testing.T) {
	var loads atomic.Int32
	fetch := func(context.Context) ([]row, error) {
		loads.Add(1)
		return sampleRows(), nil
	}
	mutator := func(ctx context.Context, action string, id int64, payload any) error {
		return nil
	}
	c := New(testConfig(), fetch, mutator)
	_ = c.Load(context.Background())

	before := loads.Load()
	if err := c.Mutate(context.Background(), "markAsPaid", 7, nil); err != nil {
		t.Fatalf("mutate failed: %v", err)
	}
	if got := loads.Load() - before; got != 1 {
		t.Fatalf("expected exactly one refetch after mutation, got %d", got)
	}
}

func TestMutateFailureLeavesCollectionAndSkipsRefetch(t *testing.T) {
	var loads atomic.Int32
	fetch := func(context.Context) ([]row, error) {
		loads.Add(1)
		return sampleRows(), nil
	}
	mutator := func(ctx context.Context, action string, id int64, payload any) error {
		return errors.New("payment already settled")
	}
	c := New(testConfig(), fetch, mutator)
	_ = c.Load(context.Background())

	before := loads.Load()
	err := c.Mutate(context.Background(), "markAsPaid", 7, nil)
	if err == nil || err.Error() != "payment already settled" {
		t.Fatalf("expected upstream message, got %v", err)
	}
	if loads.Load() != before {
		t.Fatal("failed mutation must not refetch")
	}
	if snap := c.Snapshot(); snap.Total != 3 || snap.State != StateLoaded {
		t.Fatalf("failed mutation must leave the collection untouched: %+v", snap)
	}
}

func TestLatestLoadWins(t *testing.T) {
	first := make(chan struct{})
	started := make(chan struct{})
	calls := atomic.Int32{}
	fetch := func(ctx context.Context) ([]row, error) {
		if calls.Add(1) == 1 {
			close(started)
			<-first
			return []row{{name: "stale"}}, nil
		}
		return []row{{name: "fresh"}, {name: "fresh"}}, nil
	}
	c := New(testConfig(), fetch, nil)

	done := make(chan error, 1)
	go func() { done <- c.Load(context.Background()) }()
	<-started

	// A second load resolves while the first is still in flight.
	if err := c.Load(context.Background()); err != nil {
		t.Fatalf("second load failed: %v", err)
	}
	close(first)
	if err := <-done; err != nil {
		t.Fatalf("first load errored: %v", err)
	}

	snap := c.Snapshot()
	if snap.Total != 2 || snap.Rows[0].name != "fresh" {
		t.Fatalf("stale response must be discarded, got %+v", snap.Rows)
	}
}

func TestMutateWithoutMutator(t *testing.T) {
	c := New(testConfig(), staticFetcher(nil), nil)
	if err := c.Mutate(context.Background(), "markAsPaid", 1, nil); err == nil {
		t.Fatal("expected error for read-only resource")
	}
}
