package document

import (
	"reflect"
	"testing"
)

func TestScanEntry_Scalars(t *testing.T) {
	tests := []struct {
		name string
		line string
		key  string
		val  any
	}{
		{"string", "title: Grand Hall", "title", "Grand Hall"},
		{"number", "order: 2.5", "order", 2.5},
		{"negative", "order: -3", "order", -3.0},
		{"bool true", "visible: true", "visible", true},
		{"bool false", "visible: false", "visible", false},
		{"double quoted", `label: "  spaced  "`, "label", "  spaced  "},
		{"single quoted", "label: 'true'", "label", "true"},
		{"empty value", "note:", "note", ""},
		{"nan stays string", "x: NaN", "x", "NaN"},
		{"bare word", "kind: exhibit", "kind", "exhibit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, next, err := ScanEntry([]string{tt.line}, 0)
			if err != nil {
				t.Fatalf("ScanEntry failed: %v", err)
			}
			if next != 1 {
				t.Errorf("next = %d, want 1", next)
			}
			if entry.Key != tt.key || entry.Value != tt.val {
				t.Errorf("got %q=%v (%T), want %q=%v", entry.Key, entry.Value, entry.Value, tt.key, tt.val)
			}
		})
	}
}

func TestScanEntry_JSONValues(t *testing.T) {
	entry, _, err := ScanEntry([]string{"position: [1, 2, 3]"}, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	want := []any{1.0, 2.0, 3.0}
	if !reflect.DeepEqual(entry.Value, want) {
		t.Errorf("Value = %v, want %v", entry.Value, want)
	}

	entry, _, err = ScanEntry([]string{`meta: {"a": 1}`}, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	if m, ok := entry.Value.(map[string]any); !ok || m["a"] != 1.0 {
		t.Errorf("Value = %v (%T)", entry.Value, entry.Value)
	}
}

func TestScanEntry_JSONFailureKeepsRawString(t *testing.T) {
	entry, next, err := ScanEntry([]string{"position: [1, 2,"}, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	if entry.Value != "[1, 2," {
		t.Errorf("Value = %v, want raw string", entry.Value)
	}
	if next != 1 {
		t.Errorf("next = %d", next)
	}
}

func TestScanEntry_MissingSeparator(t *testing.T) {
	_, _, err := ScanEntry([]string{"just some text"}, 0)
	if err != ErrInvalidEntry {
		t.Fatalf("err = %v, want ErrInvalidEntry", err)
	}
}

func TestScanEntry_LiteralBlock(t *testing.T) {
	lines := []string{
		"hud: |",
		"  line one",
		"  line two",
		"",
		"  line after blank",
		"next: 1",
	}
	entry, next, err := ScanEntry(lines, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	want := "line one\nline two\n\nline after blank"
	if entry.Value != want {
		t.Errorf("Value = %q, want %q", entry.Value, want)
	}
	if next != 5 {
		t.Errorf("next = %d, want 5", next)
	}
}

func TestScanEntry_FoldedBlock(t *testing.T) {
	lines := []string{
		"hud: >",
		"  folded   line one",
		"  folded line two",
		"done: true",
	}
	entry, next, err := ScanEntry(lines, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	if entry.Value != "folded line one folded line two" {
		t.Errorf("Value = %q", entry.Value)
	}
	if next != 3 {
		t.Errorf("next = %d, want 3", next)
	}
}

func TestScanEntry_BlockAtEndOfInput(t *testing.T) {
	lines := []string{"hud: |", "  only line", ""}
	entry, next, err := ScanEntry(lines, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	if entry.Value != "only line" {
		t.Errorf("Value = %q", entry.Value)
	}
	if next != 3 {
		t.Errorf("next = %d, want 3", next)
	}
}

func TestScanEntry_EmptyBlock(t *testing.T) {
	entry, next, err := ScanEntry([]string{"hud: |", "plain: 1"}, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	if entry.Value != "" {
		t.Errorf("Value = %q, want empty", entry.Value)
	}
	if next != 1 {
		t.Errorf("next = %d, want 1", next)
	}
}

func TestScanEntry_ValueWithColon(t *testing.T) {
	entry, _, err := ScanEntry([]string{"title: Hall: East Wing"}, 0)
	if err != nil {
		t.Fatalf("ScanEntry failed: %v", err)
	}
	if entry.Key != "title" || entry.Value != "Hall: East Wing" {
		t.Errorf("got %q=%v", entry.Key, entry.Value)
	}
}
