package icons

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/beevik/etree"

	"github.com/wiloon/enxkit/pkg/errors"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// RenderSVG returns the icon of the given size as an SVG document. It uses
// the same layout and continuous coordinates as Render.
func RenderSVG(size int) ([]byte, error) {
	shapes, err := Layout(size)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	dim := strconv.Itoa(size)
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNamespace)
	svg.CreateAttr("width", dim)
	svg.CreateAttr("height", dim)
	svg.CreateAttr("viewBox", "0 0 "+dim+" "+dim)

	for _, shape := range shapes {
		switch s := shape.(type) {
		case RoundedRect:
			x, y, w, h := s.Bounds()
			el := svg.CreateElement("rect")
			el.CreateAttr("x", num(x))
			el.CreateAttr("y", num(y))
			el.CreateAttr("width", num(w))
			el.CreateAttr("height", num(h))
			if r := s.EffectiveRadius(); r > 0 {
				el.CreateAttr("rx", num(r))
			}
			el.CreateAttr("fill", hex(s.Color))
		case Circle:
			cx, cy, r := s.Centre()
			el := svg.CreateElement("circle")
			el.CreateAttr("cx", num(cx))
			el.CreateAttr("cy", num(cy))
			el.CreateAttr("r", num(r))
			el.CreateAttr("fill", hex(s.Color))
		default:
			return nil, errors.Newf(errors.ErrInternal, "unsupported shape %T", shape)
		}
	}

	doc.Indent(2)
	data, err := doc.WriteToBytes()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "cannot serialize svg")
	}
	return data, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
