package charts

import (
	"bytes"
	"image/color"
	"image/png"

	"github.com/psykhi/wordclouds"

	"github.com/agentstation/starlens/pkg/analysis"
	"github.com/agentstation/starlens/pkg/errors"
)

// cloudPalette cycles through the matplotlib tab10 colors, which stay
// legible against a white background.
var cloudPalette = []color.Color{
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
	color.RGBA{R: 0x8c, G: 0x56, B: 0x4b, A: 0xff},
	color.RGBA{R: 0xe3, G: 0x77, B: 0xc2, A: 0xff},
	color.RGBA{R: 0x7f, G: 0x7f, B: 0x7f, A: 0xff},
	color.RGBA{R: 0xbc, G: 0xbd, B: 0x22, A: 0xff},
	color.RGBA{R: 0x17, G: 0xbe, B: 0xcf, A: 0xff},
}

// Cloud draws a word cloud of the weighted terms and returns the written
// filename. Empty input yields ErrNoData.
func (r *Renderer) Cloud(name string, categories []analysis.CategoryCount) (string, error) {
	if len(categories) == 0 {
		return "", errors.WrapRender(name, errors.ErrNoData)
	}

	words := make(map[string]int, len(categories))
	for _, c := range categories {
		words[c.Name] = c.Count
	}

	fontPath, err := r.font()
	if err != nil {
		return "", errors.WrapRender(name, err)
	}

	cloud := wordclouds.NewWordcloud(words,
		wordclouds.FontFile(fontPath),
		wordclouds.FontMaxSize(r.cloudSize/4),
		wordclouds.FontMinSize(10),
		wordclouds.Colors(cloudPalette),
		wordclouds.BackgroundColor(color.White),
		wordclouds.Width(r.cloudSize),
		wordclouds.Height(r.cloudSize),
	)

	var buf bytes.Buffer
	if err := png.Encode(&buf, cloud.Draw()); err != nil {
		return "", errors.WrapRender(name, err)
	}
	return name, r.write(name, buf.Bytes())
}
