package store

import (
	"strings"
	"testing"
)

func record(fields ...string) string {
	return strings.Join(fields, fieldSep) + recordSep
}

func TestParseCollections(t *testing.T) {
	raw := record("x-apple-1", "Inbox", "#1E6FFF", "3") + record("x-apple-2", "Errands", "#1E6FFF", "0")
	cols, err := parseCollections(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("expected 2 collections, got %d", len(cols))
	}
	if cols[0].ID != "x-apple-1" || cols[0].Name != "Inbox" || cols[0].Count != 3 {
		t.Fatalf("unexpected first collection %#v", cols[0])
	}
	if cols[1].Count != 0 {
		t.Fatalf("expected zero count, got %d", cols[1].Count)
	}
}

func TestParseCollectionsRejectsMalformedRecord(t *testing.T) {
	if _, err := parseCollections(record("id", "name", "#fff")); err == nil {
		t.Fatal("expected error for short record")
	}
	if _, err := parseCollections(record("id", "name", "#fff", "NaN")); err == nil {
		t.Fatal("expected error for non-numeric count")
	}
}

func TestParseItems(t *testing.T) {
	raw := record("r-1", "Buy milk", "2%, not whole", "false", "0", "missing value") +
		record("r-2", "Dentist", "", "true", "5", "Friday 9:00")
	items, err := parseItems(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Notes != "2%, not whole" {
		t.Fatalf("expected commas preserved in notes, got %q", items[0].Notes)
	}
	if items[0].DueDate != "" {
		t.Fatalf("expected missing value mapped to empty due date, got %q", items[0].DueDate)
	}
	if !items[1].Completed || items[1].Priority != 5 || items[1].DueDate != "Friday 9:00" {
		t.Fatalf("unexpected second item %#v", items[1])
	}
}

func TestParseItemsClampsPriority(t *testing.T) {
	items, err := parseItems(record("r-1", "Task", "", "false", "42", ""))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if items[0].Priority != 9 {
		t.Fatalf("expected priority clamped to 9, got %d", items[0].Priority)
	}
}

func TestParseGlobalCarriesListName(t *testing.T) {
	raw := record("r-1", "Buy milk", "", "false", "0", "", "Groceries")
	entries, err := parseGlobal(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(entries) != 1 || entries[0].CollectionName != "Groceries" {
		t.Fatalf("unexpected entries %#v", entries)
	}
}

func TestSplitRecordsSkipsBlankTrailer(t *testing.T) {
	raw := "a" + recordSep + "b" + recordSep + "\n"
	records := splitRecords(raw)
	if len(records) != 2 || records[0] != "a" || records[1] != "b" {
		t.Fatalf("unexpected records %#v", records)
	}
}

func TestParseEmptyOutput(t *testing.T) {
	items, err := parseItems("")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected no items, got %#v", items)
	}
}

func TestPermissionString(t *testing.T) {
	cases := map[Permission]string{
		PermissionAuthorized:    "authorized",
		PermissionDenied:        "denied",
		PermissionRestricted:    "restricted",
		PermissionNotDetermined: "not determined",
	}
	for perm, want := range cases {
		if got := perm.String(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}
