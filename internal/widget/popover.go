package widget

import "sort"

// Popover is an informational text attached to an identifier.
type Popover struct {
	ID    string
	Title string
	Body  string
}

// Popovers owns the open/closed state of a set of popovers. At most one is open at a time and it
// is the only writer of that state, so it must not be shared between goroutines.
type Popovers struct {
	items  map[string]Popover
	active string
}

func NewPopovers(items ...Popover) *Popovers {
	p := &Popovers{items: make(map[string]Popover, len(items))}
	for _, item := range items {
		p.items[item.ID] = item
	}

	return p
}

// Open activates the popover id, closing any other. Unknown ids leave the state untouched.
func (p *Popovers) Open(id string) (Popover, bool) {
	item, ok := p.items[id]
	if !ok {
		return Popover{}, false
	}

	p.active = id
	return item, true
}

// Close closes the active popover, if any, and reports if one was open.
func (p *Popovers) Close() bool {
	wasOpen := p.active != ""
	p.active = ""
	return wasOpen
}

// ClickOutside handles a click anywhere outside the active popover.
func (p *Popovers) ClickOutside() bool {
	return p.Close()
}

// Key handles a key press. Only "Escape" has an effect.
func (p *Popovers) Key(key string) bool {
	if key != "Escape" {
		return false
	}

	return p.Close()
}

// Active returns the open popover.
func (p *Popovers) Active() (Popover, bool) {
	if p.active == "" {
		return Popover{}, false
	}

	return p.items[p.active], true
}

// IDs lists the known popover ids, sorted.
func (p *Popovers) IDs() []string {
	ids := make([]string, 0, len(p.items))
	for id := range p.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Help are the popovers explaining each value of the strength indicator.
func Help() []Popover {
	return []Popover{
		{
			ID:    "strength",
			Title: "Strength",
			Body:  "A score from 0 to 4 estimating how hard the password is to guess.",
		},
		{
			ID:    "crack-time",
			Title: "Crack time",
			Body: "How long an attacker would need to guess the password. Offline attacks work on a " +
				"stolen hash, slow hashing assumes 1e4 guesses/s and fast hashing 1e10 guesses/s. " +
				"Online attacks go through a login form, with or without rate limiting.",
		},
		{
			ID:    "entropy",
			Title: "Entropy",
			Body:  "log2 of the number of guesses needed to find the password, in bits.",
		},
		{
			ID:    "char-types",
			Title: "Character types",
			Body:  "How many of lowercase, uppercase, digits and symbols the password uses.",
		},
		{
			ID:    "privacy",
			Title: "Privacy",
			Body:  "Passwords are evaluated in memory and are never stored or logged.",
		},
	}
}
