package wifi_test

import (
	"testing"

	"github.com/cdmx-opendata/wifi-points-api/internal/wifi"
)

func TestFoldKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Álvaro Obregón", "alvaro obregon"},
		{"COYOACÁN", "coyoacan"},
		{"Peñón de los Baños", "penon de los banos"},
		{"centro", "centro"},
		{"", ""},
	}
	for _, c := range cases {
		if got := wifi.FoldKey(c.in); got != c.want {
			t.Errorf("FoldKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
