package history

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "data", "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	store := openTestStore(t)
	if store == nil {
		t.Fatal("store is nil")
	}
}

func TestRecordBundle_AndRecent(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordBundle(0, "shop", "", 120); err != nil {
		t.Fatalf("RecordBundle: %v", err)
	}
	if err := store.RecordBundle(4, "shop", "001-auth", 4096); err != nil {
		t.Fatalf("RecordBundle: %v", err)
	}

	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Newest first.
	if records[0].Phase != 4 || records[0].Feature != "001-auth" || records[0].Bytes != 4096 {
		t.Errorf("newest record = %+v", records[0])
	}
	if records[1].Phase != 0 || records[1].Project != "shop" {
		t.Errorf("oldest record = %+v", records[1])
	}
	if records[0].CreatedAt == "" {
		t.Error("created_at not set")
	}
}

func TestRecent_RespectsLimit(t *testing.T) {
	store := openTestStore(t)
	for i := 0; i < 5; i++ {
		if err := store.RecordBundle(1, "shop", "001-a", 100); err != nil {
			t.Fatalf("RecordBundle: %v", err)
		}
	}

	records, err := store.Recent(3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("got %d records, want 3", len(records))
	}
}

func TestRecent_EmptyStore(t *testing.T) {
	store := openTestStore(t)

	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("got %d records, want 0", len(records))
	}
}
