package widget

// Visibility is the show/hide password toggle. The zero value is obscured.
type Visibility struct {
	shown bool
}

// Toggle flips between obscured and plain text and returns the new state.
func (v *Visibility) Toggle() bool {
	v.shown = !v.shown
	return v.shown
}

func (v *Visibility) Set(shown bool) {
	v.shown = shown
}

// Pressed reports if the password is currently shown in plain text.
func (v *Visibility) Pressed() bool {
	return v.shown
}

// Label is the text of the toggle control, the action it performs next.
func (v *Visibility) Label() string {
	if v.shown {
		return "Hide password"
	}

	return "Show password"
}

// Mask is the rune used to render each typed character, 0 for plain text.
func (v *Visibility) Mask() rune {
	if v.shown {
		return 0
	}

	return '*'
}
