package banner

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/seclab/labstatus/internal/model"
)

var phrases = map[model.Status]string{
	model.StatusOpen:   "The Lab is\nOPEN :)",
	model.StatusClosed: "The Lab is\nCLOSED :(",
	model.StatusFire:   "The Lab is\nON FIRE",
	model.StatusCoffee: "COFFEE\nBREAK",
	model.StatusError:  "STATUS\nUNKNOWN",
}

// Phrase returns the text drawn for s.
func Phrase(s model.Status) string {
	if p, ok := phrases[s]; ok {
		return p
	}
	return "The Lab is\n" + strings.ToUpper(string(s))
}

// Renderer turns status labels into figlet art. Known statuses are rendered
// up front; other labels are rendered on first use and kept.
type Renderer struct {
	font  string
	cache map[model.Status]string
}

func New(font string) (*Renderer, error) {
	r := &Renderer{font: font, cache: make(map[model.Status]string)}
	for s := range phrases {
		if _, err := r.Art(s); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Art returns the uncolored banner for s.
func (r *Renderer) Art(s model.Status) (string, error) {
	if art, ok := r.cache[s]; ok {
		return art, nil
	}
	art, err := figlet(Phrase(s), r.font)
	if err != nil {
		return "", err
	}
	r.cache[s] = art
	return art, nil
}

// Render returns the banner for s in color. Inverted swaps foreground and
// background, used for the failure flash.
func (r *Renderer) Render(s model.Status, color string, inverted bool) (string, error) {
	art, err := r.Art(s)
	if err != nil {
		return "", err
	}
	style := StyleFor(color)
	if inverted {
		style = style.Reverse(true)
	}
	return style.Render(art), nil
}

func figlet(text, font string) (art string, err error) {
	defer func() {
		if p := recover(); p != nil {
			art, err = "", fmt.Errorf("rendering banner with font %q: %v", font, p)
		}
	}()

	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(figure.NewFigure(line, font, false).String())
	}
	return strings.TrimRight(sb.String(), "\n"), nil
}
