package page

import (
	"bytes"
	"context"
	_ "embed"
	"html/template"
	"strings"
	"sync"

	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/samber/do"
)

//go:embed assets/index.html
var indexTmpl string

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// View is everything the page needs to render one of its four states.
type View struct {
	BusinessIdea string
	LogoStyle    string
	ImageURL     string
	Error        string
	Loading      bool
}

// State resolves which panel the display area shows: a pending request hides
// everything else, and an error hides any stale image.
func (v View) State() State {
	switch {
	case v.Loading:
		return StateLoading
	case v.Error != "":
		return StateError
	case v.ImageURL != "":
		return StateSuccess
	default:
		return StateIdle
	}
}

func (v View) CanSubmit() bool {
	return strings.TrimSpace(v.BusinessIdea) != "" && strings.TrimSpace(v.LogoStyle) != "" && !v.Loading
}

type Templator struct {
	tmpl *template.Template
	once sync.Once
}

func NewTemplator(*do.Injector) (*Templator, error) {
	return &Templator{}, nil
}

func (g *Templator) Render(ctx context.Context, view View) ([]byte, error) {
	g.once.Do(func() {
		g.tmpl = template.Must(template.New("index").Funcs(template.FuncMap{
			// data URIs built by the logo package are safe to put in src.
			"imageURL": func(s string) template.URL { return template.URL(s) },
		}).Parse(indexTmpl))
	})

	log := log.FromContextOrDiscard(ctx).WithGroup("templator")
	log.Debug("rendering page", "state", view.State())

	var data bytes.Buffer
	if err := g.tmpl.Execute(&data, view); err != nil {
		return nil, err
	}
	return data.Bytes(), nil
}
