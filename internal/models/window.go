package models

// WindowState is the persisted geometry of one window.
// This corresponds to <label>-window-state.json in the data directory.
// A nil field means "no saved preference", never zero.
type WindowState struct {
	X          *int     `json:"x"`
	Y          *int     `json:"y"`
	Width      *float64 `json:"width"`
	Height     *float64 `json:"height"`
	Maximized  *bool    `json:"maximized"`
	Fullscreen *bool    `json:"fullscreen"`
}

// IsEmpty reports whether no field is set.
func (s WindowState) IsEmpty() bool {
	return s.X == nil && s.Y == nil &&
		s.Width == nil && s.Height == nil &&
		s.Maximized == nil && s.Fullscreen == nil
}

// Ptr returns a pointer to v. Handy for building partial states.
func Ptr[T any](v T) *T {
	return &v
}
