package wallet

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Apicqq/Wallet/date"
	"github.com/shopspring/decimal"
)

func TestStore_FirstRun(t *testing.T) {
	s := NewStore(filepath.Join(t.TempDir(), "wallets.jsonl"))
	entries, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() on absent file error = %v, want empty collection", err)
	}
	if len(entries) != 0 {
		t.Errorf("LoadAll() on absent file = %d entries, want 0", len(entries))
	}
}

func TestStore_MalformedContentIsDiscarded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.jsonl")
	if err := os.WriteFile(path, []byte("this is not json\n"), 0644); err != nil {
		t.Fatal(err)
	}

	entries, err := NewStore(path).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() on malformed store error = %v, want lenient empty collection", err)
	}
	if len(entries) != 0 {
		t.Errorf("LoadAll() on malformed store = %d entries, want 0", len(entries))
	}
}

func TestStore_DirectoryPathIsAnError(t *testing.T) {
	if _, err := NewStore(t.TempDir()).LoadAll(); err == nil {
		t.Error("LoadAll() on a directory path did not fail")
	}
}

func TestStore_SaveAllRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "wallets.jsonl")
	s := NewStore(path)

	entries := []Entry{
		{ID: "id-1", Owner: "alice", Date: date.MustParse("2024-09-05"), Category: Income, Amount: decimal.NewFromFloat(100.0), Description: "salary"},
		{ID: "id-2", Owner: "alice", Date: date.MustParse("2024-09-06"), Category: Expense, Amount: decimal.RequireFromString("40.25"), Description: "групповой ужин"},
	}
	if err := s.SaveAll(entries); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(got) != len(entries) {
		t.Fatalf("LoadAll() = %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if !got[i].Equal(entries[i]) {
			t.Errorf("LoadAll()[%d] = %+v, want %+v", i, got[i], entries[i])
		}
	}
}

func TestStore_SaveAllReplacesWholeCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.jsonl")
	s := NewStore(path)

	if err := s.SaveAll([]Entry{{ID: "old", Owner: "alice", Date: date.MustParse("2024-09-05")}}); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}
	if err := s.SaveAll([]Entry{{ID: "new", Owner: "alice", Date: date.MustParse("2024-09-06")}}); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(data), "old") {
		t.Error("SaveAll() did not replace the previous collection")
	}
}

func TestStore_SaveAllRejectsUnreloadableDates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.jsonl")
	s := NewStore(path)

	good := Entry{ID: "id-1", Owner: "alice", Date: date.MustParse("2024-09-05"), Category: Income, Amount: decimal.NewFromInt(100)}
	if err := s.SaveAll([]Entry{good}); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}

	// A zero date would serialize as "0000-00-00", which does not parse back,
	// so the next LoadAll would discard the whole file. SaveAll must refuse it
	// and leave the previous collection intact.
	if err := s.SaveAll([]Entry{good, {ID: "id-2", Owner: "alice"}}); err == nil {
		t.Fatal("SaveAll() with a zero-date entry did not fail")
	}

	got, err := s.LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(got) != 1 || !got[0].Equal(good) {
		t.Errorf("LoadAll() after rejected SaveAll = %+v, want the untouched original entry", got)
	}
}

func TestStore_AmountsArePersistedAsNumbers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wallets.jsonl")
	s := NewStore(path)
	if err := s.SaveAll([]Entry{{ID: "id-1", Owner: "alice", Date: date.MustParse("2024-09-05"), Category: Income, Amount: decimal.NewFromInt(100)}}); err != nil {
		t.Fatalf("SaveAll() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"amount":100`) {
		t.Errorf("store content = %s, want amount persisted as a bare number", data)
	}
}
