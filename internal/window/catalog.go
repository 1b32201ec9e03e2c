package window

import "github.com/watchfire-io/deskshell/internal/models"

// Default sizes.
const (
	mainWidth   = 800
	mainHeight  = 600
	panelWidth  = 600
	panelHeight = 400
)

// Primary returns the spec of the main window. It is always created.
func Primary() Spec {
	return Spec{
		Label:         MainLabel,
		Title:         "deskshell",
		Content:       "/",
		DefaultWidth:  mainWidth,
		DefaultHeight: mainHeight,
		Visible:       true,
	}
}

// Configured returns the optional windows enabled by cfg, in creation order.
// A disabled window is not instantiated at all.
func Configured(cfg models.AppConfig) []Spec {
	var specs []Spec
	if cfg.TodoVisible {
		specs = append(specs, Spec{
			Label:         TodoLabel,
			Title:         "Todo",
			Content:       "todo",
			DefaultWidth:  panelWidth,
			DefaultHeight: panelHeight,
			Visible:       cfg.TodoVisible,
		})
	}
	if cfg.MarkdownVisible {
		specs = append(specs, Spec{
			Label:         MarkdownLabel,
			Title:         "Markdown",
			Content:       "markdown",
			DefaultWidth:  panelWidth,
			DefaultHeight: panelHeight,
			Visible:       cfg.MarkdownVisible,
		})
	}
	return specs
}

// Catalog returns every window the shell opens for cfg: the primary window
// followed by the configured ones.
func Catalog(cfg models.AppConfig) []Spec {
	return append([]Spec{Primary()}, Configured(cfg)...)
}

// Lookup finds the catalog spec for label regardless of cfg toggles.
func Lookup(label string) (Spec, bool) {
	all := Catalog(models.AppConfig{TodoVisible: true, MarkdownVisible: true})
	for _, s := range all {
		if s.Label == label {
			return s, true
		}
	}
	return Spec{}, false
}
