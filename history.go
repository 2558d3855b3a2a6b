package mandel

// History is a stack of committed view states enabling the "back"
// navigation gesture. The zero value is an empty, ready-to-use history.
// It is not safe for concurrent use; the interaction layer touches it
// only between renders.
type History struct {
	views []ViewState
}

// Push appends v as the newest entry. It always succeeds; growth is
// bounded only by the number of user interactions.
func (h *History) Push(v ViewState) {
	h.views = append(h.views, v)
}

// Pop removes and returns the newest entry. On an empty history it
// returns ErrEmptyHistory and leaves the state unchanged.
func (h *History) Pop() (ViewState, error) {
	if len(h.views) == 0 {
		return ViewState{}, ErrEmptyHistory
	}
	v := h.views[len(h.views)-1]
	h.views = h.views[:len(h.views)-1]
	return v, nil
}

// Current returns the newest entry without removing it.
func (h *History) Current() (ViewState, error) {
	if len(h.views) == 0 {
		return ViewState{}, ErrEmptyHistory
	}
	return h.views[len(h.views)-1], nil
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.views)
}
