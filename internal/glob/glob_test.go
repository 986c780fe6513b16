package glob

import "testing"

func TestMatch(t *testing.T) {
	trueCases := []struct{ pattern, s string }{
		{"", ""},
		{"*", ""},
		{"*", "a"},
		{"*", "ab"},
		{"*a", "a"},
		{"a*", "a"},
		{"a*a", "aa"},
		{"a*a", "aba"},

		{"**", ""},
		{"**", "a"},
		{"**", "ab"},
		{"**a", "a"},
		{"a**", "a"},
		{"a**a", "aa"},
		{"a**a", "aba"},

		{"*a*a*", "aba"},

		{"a*bcd*bcd*ef", "aabcdbcdbcdabcdefefefggef"},
	}
	for _, c := range trueCases {
		if !Match(c.pattern, c.s) {
			t.Errorf("Match(%q, %q) = false, want true", c.pattern, c.s)
		}
	}

	falseCases := []struct{ pattern, s string }{
		{"", "a"},
		{"*a", "b"},
		{"a*", "b"},
		{"*a", "ab"},
		{"a*", "ba"},
		{"a*bcd*bcd*ef", "abcdef"},
	}
	for _, c := range falseCases {
		if Match(c.pattern, c.s) {
			t.Errorf("Match(%q, %q) = true, want false", c.pattern, c.s)
		}
	}
}
