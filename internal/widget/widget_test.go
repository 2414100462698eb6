package widget

import "testing"

func TestVisibility(t *testing.T) {
	var v Visibility
	if v.Pressed() || v.Mask() != '*' || v.Label() != "Show password" {
		t.Errorf("Zero value should be obscured")
	}

	if shown := v.Toggle(); !shown {
		t.Errorf("Toggle should show the password")
	}
	if !v.Pressed() || v.Mask() != 0 || v.Label() != "Hide password" {
		t.Errorf("Toggled value should be plain text")
	}

	v.Toggle()
	if v.Pressed() {
		t.Errorf("Second toggle should obscure the password again")
	}

	v.Set(true)
	if !v.Pressed() {
		t.Errorf("Set(true) should show the password")
	}
}

func TestPopovers_SingleOpen(t *testing.T) {
	p := NewPopovers(Help()...)

	if _, ok := p.Open("entropy"); !ok {
		t.Fatalf("entropy popover should exist")
	}
	if _, ok := p.Open("crack-time"); !ok {
		t.Fatalf("crack-time popover should exist")
	}

	active, ok := p.Active()
	if !ok || active.ID != "crack-time" {
		t.Errorf("Only the last opened popover should be active, got %+v", active)
	}

	if _, ok = p.Open("missing"); ok {
		t.Errorf("Unknown popover should not open")
	}
	if active, _ = p.Active(); active.ID != "crack-time" {
		t.Errorf("Unknown popover should not change the active one, got %s", active.ID)
	}
}

func TestPopovers_Close(t *testing.T) {
	cases := []struct {
		name  string
		close func(p *Popovers) bool
		want  bool
	}{
		{"escape", func(p *Popovers) bool { return p.Key("Escape") }, true},
		{"other key", func(p *Popovers) bool { return p.Key("Enter") }, false},
		{"outside click", func(p *Popovers) bool { return p.ClickOutside() }, true},
		{"close button", func(p *Popovers) bool { return p.Close() }, true},
	}

	for _, tc := range cases {
		p := NewPopovers(Help()...)
		p.Open("strength")

		if got := tc.close(p); got != tc.want {
			t.Errorf("%s: closed = %v, want: %v", tc.name, got, tc.want)
		}

		_, open := p.Active()
		if open == tc.want {
			t.Errorf("%s: popover open = %v after close", tc.name, open)
		}
	}

	p := NewPopovers(Help()...)
	if p.Close() {
		t.Errorf("Closing without an open popover should report false")
	}
}

func TestPopovers_IDs(t *testing.T) {
	ids := NewPopovers(Help()...).IDs()
	want := []string{"char-types", "crack-time", "entropy", "privacy", "strength"}
	if len(ids) != len(want) {
		t.Fatalf("IDs: %v, want: %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("IDs[%d]: %s, want: %s", i, ids[i], want[i])
		}
	}
}
