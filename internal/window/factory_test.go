package window

import (
	"errors"
	"testing"

	"github.com/watchfire-io/deskshell/internal/models"
)

var todoSpec = Spec{
	Label:         "todo",
	Content:       "todo",
	DefaultWidth:  600,
	DefaultHeight: 400,
	Visible:       true,
}

func TestBuildSizeOverridesPerField(t *testing.T) {
	tests := []struct {
		name          string
		state         models.WindowState
		width, height float64
	}{
		{"no state", models.WindowState{}, 600, 400},
		{"width only", models.WindowState{Width: models.Ptr(1024.0)}, 1024, 400},
		{"height only", models.WindowState{Height: models.Ptr(300.0)}, 600, 300},
		{"both", models.WindowState{Width: models.Ptr(1.5), Height: models.Ptr(2.5)}, 1.5, 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Build(todoSpec, tt.state)
			if p.Width != tt.width || p.Height != tt.height {
				t.Errorf("size = (%v, %v), want (%v, %v)", p.Width, p.Height, tt.width, tt.height)
			}
		})
	}
}

func TestBuildPosition(t *testing.T) {
	tests := []struct {
		name  string
		state models.WindowState
		has   bool
		x, y  int
	}{
		{"unset", models.WindowState{}, false, 0, 0},
		{"x only", models.WindowState{X: models.Ptr(10)}, false, 0, 0},
		{"y only", models.WindowState{Y: models.Ptr(20)}, false, 0, 0},
		{"both", models.WindowState{X: models.Ptr(10), Y: models.Ptr(20)}, true, 10, 20},
		{"negative", models.WindowState{X: models.Ptr(-1920), Y: models.Ptr(0)}, true, -1920, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Build(todoSpec, tt.state)
			if p.HasPosition != tt.has || p.X != tt.x || p.Y != tt.y {
				t.Errorf("position = (%v, %d, %d), want (%v, %d, %d)", p.HasPosition, p.X, p.Y, tt.has, tt.x, tt.y)
			}
		})
	}
}

func TestBuildFlagsAndVisibility(t *testing.T) {
	p := Build(todoSpec, models.WindowState{})
	if p.Maximized || p.Fullscreen {
		t.Errorf("flags = (%v, %v), want host defaults (false, false)", p.Maximized, p.Fullscreen)
	}

	p = Build(todoSpec, models.WindowState{Maximized: models.Ptr(true), Fullscreen: models.Ptr(true)})
	if !p.Maximized || !p.Fullscreen {
		t.Errorf("flags = (%v, %v), want (true, true)", p.Maximized, p.Fullscreen)
	}

	hidden := todoSpec
	hidden.Visible = false
	if p := Build(hidden, models.WindowState{Maximized: models.Ptr(true)}); p.Visible {
		t.Error("Visible = true, want the spec's false")
	}

	if p.Label != "todo" || p.Content != "todo" || p.Title != "todo" {
		t.Errorf("identity = (%q, %q, %q)", p.Label, p.Content, p.Title)
	}
}

type fakeStates map[string]models.WindowState

func (f fakeStates) Load(label string) models.WindowState { return f[label] }

type fakeCreator struct {
	got []CreationParams
	err error
}

func (f *fakeCreator) CreateWindow(p CreationParams) (Handle, error) {
	f.got = append(f.got, p)
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

func TestCreateUsesSavedState(t *testing.T) {
	creator := &fakeCreator{}
	states := fakeStates{"todo": {Width: models.Ptr(1024.0), X: models.Ptr(10)}}

	if _, err := Create(creator, states, todoSpec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(creator.got) != 1 {
		t.Fatalf("CreateWindow called %d times, want 1", len(creator.got))
	}
	p := creator.got[0]
	if p.Width != 1024 || p.Height != 400 || p.HasPosition {
		t.Errorf("params = %+v", p)
	}
}

func TestCreatePropagatesHostError(t *testing.T) {
	hostErr := errors.New("no display")
	creator := &fakeCreator{err: hostErr}

	_, err := Create(creator, fakeStates{}, todoSpec)
	if err != hostErr {
		t.Errorf("err = %v, want the host error unchanged", err)
	}
}

func TestCatalog(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.AppConfig
		want []string
	}{
		{"all", models.AppConfig{TodoVisible: true, MarkdownVisible: true}, []string{"main", "todo", "markdown"}},
		{"todo off", models.AppConfig{TodoVisible: false, MarkdownVisible: true}, []string{"main", "markdown"}},
		{"none", models.AppConfig{}, []string{"main"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			specs := Catalog(tt.cfg)
			if len(specs) != len(tt.want) {
				t.Fatalf("Catalog() returned %d specs, want %d", len(specs), len(tt.want))
			}
			for i, s := range specs {
				if s.Label != tt.want[i] {
					t.Errorf("specs[%d].Label = %q, want %q", i, s.Label, tt.want[i])
				}
				if !s.Visible {
					t.Errorf("specs[%d] not visible", i)
				}
			}
		})
	}
}

func TestLookup(t *testing.T) {
	if s, ok := Lookup("markdown"); !ok || s.DefaultWidth != 600 {
		t.Errorf("Lookup(markdown) = %+v, %v", s, ok)
	}
	if _, ok := Lookup("settings"); ok {
		t.Error("Lookup(settings) found a spec")
	}
}
