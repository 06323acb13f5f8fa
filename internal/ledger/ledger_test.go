package ledger

import (
	"path/filepath"
	"testing"

	"foors"
)

func TestRecordObservedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.sqlite")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer l.Close()

	id := foors.TriageID("triage-1")
	l.RecordObserved(id)
	l.RecordObserved(id)
	l.RecordObserved(id)

	n, err := l.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Count() = %d, want 1", n)
	}
}

func TestRecordObservedDistinctTriages(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.sqlite")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer l.Close()

	l.RecordObserved("a")
	l.RecordObserved("b")
	l.RecordObserved("c")

	n, err := l.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("Count() = %d, want 3", n)
	}
}

func TestOpenPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.sqlite")

	l1, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	l1.RecordObserved("persisted")
	if err := l1.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	l2, err := Open(path)
	if err != nil {
		t.Fatalf("reopen Open() error = %v", err)
	}
	defer l2.Close()

	n, err := l2.Count()
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 1 {
		t.Fatalf("Count() after reopen = %d, want 1", n)
	}
}
