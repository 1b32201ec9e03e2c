package window

import (
	"github.com/watchfire-io/deskshell/internal/models"
)

// Build merges saved state over the spec's defaults, field by field.
// Size falls back per dimension, position only applies when both x and y
// were saved, and visibility always comes from the spec.
func Build(spec Spec, state models.WindowState) CreationParams {
	p := CreationParams{
		Label:   spec.Label,
		Title:   spec.Title,
		Content: spec.Content,
		Width:   orDefault(state.Width, spec.DefaultWidth),
		Height:  orDefault(state.Height, spec.DefaultHeight),
		Visible: spec.Visible,
	}
	if p.Title == "" {
		p.Title = spec.Label
	}

	if state.X != nil && state.Y != nil {
		p.HasPosition = true
		p.X = *state.X
		p.Y = *state.Y
	}

	p.Maximized = orDefault(state.Maximized, false)
	p.Fullscreen = orDefault(state.Fullscreen, false)
	return p
}

// Create loads the saved state for spec, merges it, and asks the host for the
// window. Host errors are returned unchanged.
func Create(svc Creator, states StateLoader, spec Spec) (Handle, error) {
	return svc.CreateWindow(Build(spec, states.Load(spec.Label)))
}

func orDefault[T any](v *T, def T) T {
	if v == nil {
		return def
	}
	return *v
}
