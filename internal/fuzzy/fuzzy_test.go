package fuzzy

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"python", "pyton", 1},
		{"developer", "developr", 1},
		{"gopher", "graph", 4},
	}
	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"abc", "xyz"},
		{"program", "programa"},
	}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) not symmetric", p[0], p[1])
		}
	}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name        string
		a, b        string
		maxDist     int
		prefixLen   int
		wantDist    int
		wantMatched bool
	}{
		{"exact", "python", "python", 2, 2, 0, true},
		{"one typo", "python", "pyton", 2, 2, 1, true},
		{"two typos", "javascript", "javascrpt", 2, 2, 1, true},
		{"too far", "python", "java", 2, 2, 0, false},
		{"length diff exceeds cap", "go", "golang", 2, 2, 0, false},
		{"short token never matches", "a", "ab", 2, 2, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := Match(tt.a, tt.b, tt.maxDist, tt.prefixLen)
			if ok != tt.wantMatched {
				t.Fatalf("Match(%q, %q) matched = %v, want %v", tt.a, tt.b, ok, tt.wantMatched)
			}
			if ok && d != tt.wantDist {
				t.Errorf("Match(%q, %q) distance = %d, want %d", tt.a, tt.b, d, tt.wantDist)
			}
		})
	}
}
