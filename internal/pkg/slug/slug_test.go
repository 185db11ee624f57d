package slug

import "testing"

func TestMake(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Vistara", "vistara"},
		{"Mandala Bumi Nusantara", "mandala-bumi-nusantara"},
		{"  Padded  Name  ", "padded-name"},
		{"Already-Slugged", "already-slugged"},
		{"under_score__runs", "under-score-runs"},
		{"Symbols!@#$%^&*()", "symbols"},
		{"MixedCASE 123", "mixedcase-123"},
		{"---edges---", "edges"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Make(c.in); got != c.want {
			t.Errorf("Make(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Vistara", "Mandala Bumi Nusantara", "a_b c-d", "  X  Y  ", "!!!", ""}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestMakeCharset(t *testing.T) {
	inputs := []string{"Ünïcode Náme", "tabs\tand\nnewlines", "emoji 🎉 name", "50% off!"}
	for _, in := range inputs {
		got := Make(in)
		for _, r := range got {
			valid := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-'
			if !valid {
				t.Errorf("Make(%q) = %q contains invalid rune %q", in, got, r)
			}
		}
		if len(got) > 0 && (got[0] == '-' || got[len(got)-1] == '-') {
			t.Errorf("Make(%q) = %q has edge hyphen", in, got)
		}
	}
}
