package obj

import "testing"

func TestParseEvent(t *testing.T) {
	cases := []struct {
		in   string
		want Event
		ok   bool
	}{
		{"PRESS left", PressLeft, true},
		{"PRESS right", PressRight, true},
		{"PRESS up", PressUp, true},
		{"PRESS down", PressDown, true},
		{"RELEASE left", ReleaseLeft, true},
		{"RELEASE right", ReleaseRight, true},
		{"RELEASE down", ReleaseDown, true},
		{"RELEASE up", "RELEASE up", false},
		{"", None, false},
		{"press left", "press left", false},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, ok := ParseEvent(c.in)
			if got != c.want || ok != c.ok {
				t.Fatalf("ParseEvent(%q) = (%q, %v), want (%q, %v)", c.in, got, ok, c.want, c.ok)
			}
		})
	}
}
