package models

import "testing"

func TestIsValidPropertyTag(t *testing.T) {
	tests := []struct {
		tag   string
		valid bool
	}{
		{"A1234", true},
		{"Z0000", true},
		{"B9999", true},
		{"AA123", false},
		{"A123", false},
		{"A12345", false},
		{"a1234", false},
		{"12345", false},
		{"", false},
		{"A 1234", false},
	}

	for _, tt := range tests {
		got := IsValidPropertyTag(tt.tag)
		if got != tt.valid {
			t.Errorf("IsValidPropertyTag(%q) = %v, want %v", tt.tag, got, tt.valid)
		}
	}
}

func TestParsePropertyTagRange(t *testing.T) {
	tests := []struct {
		expr    string
		want    []PropertyTag
		wantErr bool
	}{
		{"A0001", []PropertyTag{"A0001"}, false},
		{"A0001-A0003", []PropertyTag{"A0001", "A0002", "A0003"}, false},
		{"A0001-A0001", []PropertyTag{"A0001"}, false},
		{"A0001-A0002,B0005", []PropertyTag{"A0001", "A0002", "B0005"}, false},
		{" A0001 , A0002 ", []PropertyTag{"A0001", "A0002"}, false},
		{"A0098-A0102", []PropertyTag{"A0098", "A0099", "A0100", "A0101", "A0102"}, false},
		// Reversed range fails the whole expression.
		{"A0003-A0001", nil, true},
		// Range endpoints must share a letter.
		{"A0001-B0003", nil, true},
		{"a0001-a0003", nil, true},
		{"A0001,,A0002", nil, true},
		{"", nil, true},
		{"A0001-A0002-A0003", nil, true},
	}

	for _, tt := range tests {
		got, err := ParsePropertyTagRange(tt.expr)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePropertyTagRange(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			continue
		}
		if tt.wantErr {
			continue
		}
		if len(got) != len(tt.want) {
			t.Errorf("ParsePropertyTagRange(%q) = %v, want %v", tt.expr, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParsePropertyTagRange(%q)[%d] = %q, want %q", tt.expr, i, got[i], tt.want[i])
			}
		}
	}
}
