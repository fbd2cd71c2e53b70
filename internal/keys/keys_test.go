package keys

import "testing"

func TestFactionKey(t *testing.T) {
	cases := []struct{ in, want string }{
		{"Kingdom of Cantrell", "kingdom_of_cantrell"},
		{"kingdom_of_cantrell", "kingdom_of_cantrell"},
		{"  The Fae  Armies  ", "the_fae_armies"},
		{"THE FAE ARMIES", "the_fae_armies"},
		{"", ""},
	}
	for _, c := range cases {
		if got := FactionKey(c.in); got != c.want {
			t.Fatalf("FactionKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
