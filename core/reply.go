package core

// Button is a single pressable control: a display label plus the interaction
// token delivered back when the user presses it.
type Button struct {
	Label string
	Token string
}

// Reply is a transport-neutral rendered response: message text plus an
// optional button keyboard laid out as rows. The chat adapter converts it to
// the platform's native message format; keeping rendering transport-neutral
// lets the controller be tested without a live chat connection.
type Reply struct {
	Text     string
	Keyboard [][]Button
}

// HasKeyboard reports whether the reply carries any buttons.
func (r Reply) HasKeyboard() bool {
	return len(r.Keyboard) > 0
}
