package memory

import "time"

// Interaction is one recorded exchange.
type Interaction struct {
	UserInput string    `json:"user_input"`
	Answer    string    `json:"answer"`
	At        time.Time `json:"at"`
}

// History records interactions in order. The responder only writes to it.
type History struct {
	items []Interaction
	now   func() time.Time
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{now: time.Now}
}

// Record appends an interaction stamped with the current time.
func (h *History) Record(userInput, answer string) {
	h.items = append(h.items, Interaction{
		UserInput: userInput,
		Answer:    answer,
		At:        h.now(),
	})
}

// Interactions returns a copy of the recorded interactions.
func (h *History) Interactions() []Interaction {
	out := make([]Interaction, len(h.items))
	copy(out, h.items)
	return out
}

// Len returns the number of recorded interactions.
func (h *History) Len() int {
	return len(h.items)
}
