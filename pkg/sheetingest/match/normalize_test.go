package match

import "testing"

func TestKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"SheetToProcess", "sheettoprocess"},
		{"Sheet To Process ", "sheettoprocess"},
		{"Café  Name", "cafename"},
		{"ÉLIGIBILITÉ", "eligibilite"},
		{"id_column", "idcolumn"},
		{"ID Column ", "idcolumn"},
		{"Id_Column", "idcolumn"},
		{"tab\there", "tabhere"},
		{"new\nline", "newline"},
		{"日本語", ""},
	}

	for _, tt := range tests {
		if got := Key(tt.input); got != tt.expected {
			t.Errorf("Key(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

func TestKeyIdempotent(t *testing.T) {
	inputs := []string{"", "Café  Name", "Eligibility (Cat-A)", "SheetToProcess_2024", "a\tb\nc"}
	for _, in := range inputs {
		once := Key(in)
		if twice := Key(once); twice != once {
			t.Errorf("Key not idempotent for %q: Key(%q) = %q", in, once, twice)
		}
	}
}

func TestKeyCaseWhitespaceAccentInsensitive(t *testing.T) {
	if Key("Café  Name") != Key("cafename") {
		t.Errorf("Key(%q) = %q, Key(%q) = %q; expected equal",
			"Café  Name", Key("Café  Name"), "cafename", Key("cafename"))
	}
}

func TestMarkerKey(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"(Cat-A)", "(cat-a)"},
		{"( cat-a )", "(cat-a)"},
		{"Éligibilité (Cat-B)", "eligibilite(cat-b)"},
	}

	for _, tt := range tests {
		if got := MarkerKey(tt.input); got != tt.expected {
			t.Errorf("MarkerKey(%q) = %q, expected %q", tt.input, got, tt.expected)
		}
	}
}

// The two normalizers differ on non-space whitespace: Key strips tabs and
// newlines, MarkerKey keeps them. Both behaviors are load-bearing.
func TestKeyVariantsDiverge(t *testing.T) {
	tests := []struct {
		input      string
		wantKey    string
		wantMarker string
	}{
		{"Cat\t-A", "cat-a", "cat\t-a"},
		{"Cat\n-B", "cat-b", "cat\n-b"},
		{"Cat -A", "cat-a", "cat-a"},
	}

	for _, tt := range tests {
		if got := Key(tt.input); got != tt.wantKey {
			t.Errorf("Key(%q) = %q, expected %q", tt.input, got, tt.wantKey)
		}
		if got := MarkerKey(tt.input); got != tt.wantMarker {
			t.Errorf("MarkerKey(%q) = %q, expected %q", tt.input, got, tt.wantMarker)
		}
	}
}
