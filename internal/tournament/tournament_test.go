package tournament

import "testing"

func TestGenerateID(t *testing.T) {
	r := Record{Name: "Spring Cup", StartDate: "2026-04-04", Source: SourceScraped}

	id := GenerateID(r)
	if id != "scraped-spring-cup-2026-04-04" {
		t.Errorf("unexpected ID: %q", id)
	}

	// Same stable fields, same ID across runs
	if again := GenerateID(r); again != id {
		t.Errorf("ID not deterministic: %q != %q", again, id)
	}

	// A different source is a different identity
	manual := r
	manual.Source = SourceManual
	if GenerateID(manual) == id {
		t.Error("expected source to participate in the ID")
	}
}

func TestKeyCaseInsensitive(t *testing.T) {
	a := Record{Name: "Spring Cup", StartDate: "2026-04-04"}
	b := Record{Name: "SPRING CUP", StartDate: "2026-04-04"}
	c := Record{Name: "Spring Cup", StartDate: "2026-04-05"}

	if Key(a) != Key(b) {
		t.Errorf("keys should match case-insensitively: %q vs %q", Key(a), Key(b))
	}
	if Key(a) == Key(c) {
		t.Error("different start dates must yield different keys")
	}
}

func TestSortByStartDateStable(t *testing.T) {
	records := []Record{
		{Name: "B", StartDate: "2026-05-01"},
		{Name: "A", StartDate: "2026-05-01"},
		{Name: "C", StartDate: "2026-04-01"},
	}

	SortByStartDate(records)

	if records[0].Name != "C" {
		t.Errorf("expected earliest date first, got %q", records[0].Name)
	}
	// Equal dates keep insertion order
	if records[1].Name != "B" || records[2].Name != "A" {
		t.Errorf("expected stable order for equal dates, got %q, %q", records[1].Name, records[2].Name)
	}
}
