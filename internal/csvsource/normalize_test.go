package csvsource

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	row := map[string]string{
		ColName:     "  Statue X ",
		ColPrice:    "100,00",
		ColSKU:      "ABC-1",
		ColBrand:    "Prime 1",
		ColCategory: "Statue da collezione",
		ColBody:     "Una statua.",
		ColDeadline: "31/12/2026",
		ColETA:      "Q2 2027",
	}

	item, reason, ok := Normalize(row, 2)
	if !ok {
		t.Fatalf("Expected ok, got skip reason %q", reason)
	}
	if item.Name != "Statue X" {
		t.Errorf("Expected trimmed name 'Statue X', got %q", item.Name)
	}
	if item.BasePrice.String() != "100" {
		t.Errorf("Expected price 100, got %s", item.BasePrice)
	}
	if item.SKU != "ABC-1" || item.Brand != "Prime 1" || item.ETA != "Q2 2027" {
		t.Errorf("Unexpected item: %+v", item)
	}
	if item.Line != 2 {
		t.Errorf("Expected line 2, got %d", item.Line)
	}
}

func TestNormalizeSkips(t *testing.T) {
	testCases := []struct {
		name string
		row  map[string]string
	}{
		{"missing name", map[string]string{ColPrice: "10", ColSKU: "A"}},
		{"missing sku", map[string]string{ColName: "X", ColPrice: "10"}},
		{"missing price", map[string]string{ColName: "X", ColSKU: "A"}},
		{"invalid price", map[string]string{ColName: "X", ColPrice: "abc", ColSKU: "A"}},
		{"zero price", map[string]string{ColName: "X", ColPrice: "0", ColSKU: "A"}},
		{"negative price", map[string]string{ColName: "X", ColPrice: "-5,00", ColSKU: "A"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, reason, ok := Normalize(tc.row, 3)
			if ok {
				t.Error("Expected skip, got ok")
			}
			if reason == "" {
				t.Error("Expected a human-readable skip reason")
			}
		})
	}
}

func TestNormalizeTruncatesLongName(t *testing.T) {
	row := map[string]string{
		ColName:  strings.Repeat("a", 81),
		ColPrice: "10",
		ColSKU:   "A",
	}

	item, _, ok := Normalize(row, 2)
	if !ok {
		t.Fatal("Expected ok for long name (truncated, never rejected)")
	}
	if len([]rune(item.Name)) != 80 {
		t.Errorf("Expected 80-char name, got %d", len([]rune(item.Name)))
	}
}

func TestParsePrice(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"100,00", "100", false},
		{"100.00", "100", false},
		{"12,505", "12.51", false},
		{" 0,01 ", "0.01", false},
		{"abc", "", true},
		{"0", "", true},
		{"-1", "", true},
	}

	for _, tc := range testCases {
		d, err := ParsePrice(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePrice(%q): expected error, got %s", tc.in, d)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q): unexpected error %v", tc.in, err)
			continue
		}
		if d.String() != tc.want {
			t.Errorf("ParsePrice(%q) = %s, want %s", tc.in, d, tc.want)
		}
	}
}
