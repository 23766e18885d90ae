package common

import "testing"

func TestCoalesce(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"explicit name wins", []string{"guard", "Bip01", "skeleton"}, "guard"},
		{"falls through empties", []string{"", "", "skeleton"}, "skeleton"},
		{"all empty", []string{"", ""}, ""},
		{"no candidates", nil, ""},
	}
	for _, tt := range tests {
		if got := Coalesce(tt.in...); got != tt.want {
			t.Errorf("%s: Coalesce = %q, want %q", tt.name, got, tt.want)
		}
	}
	if got := Coalesce(0, 7, 9); got != 7 {
		t.Errorf("Coalesce(0, 7, 9) = %d, want 7", got)
	}
}
