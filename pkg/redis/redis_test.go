package redis

import "testing"

func TestEscapeGlob(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain prefix", "pinata-blog-frame:user:", "pinata-blog-frame:user:"},
		{"star", "a*b", `a\*b`},
		{"question mark", "a?b", `a\?b`},
		{"brackets", "a[b]", `a\[b\]`},
		{"backslash", `a\b`, `a\\b`},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := escapeGlob(tt.in); got != tt.want {
				t.Errorf("escapeGlob(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
