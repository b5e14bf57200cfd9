package label

import (
	"fmt"
	"image"

	"github.com/cwbudde/algo-imgproc/imgproc/grid"
)

// Connectivity selects which neighbors join foreground pixels.
type Connectivity int

const (
	// Four joins pixels that share an edge.
	Four Connectivity = iota
	// Eight also joins pixels that share only a corner.
	Eight
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	switch c {
	case Four:
		return "4"
	case Eight:
		return "8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

var (
	offsets4 = []image.Point{{X: 1}, {X: -1}, {Y: 1}, {Y: -1}}
	offsets8 = []image.Point{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1},
		{X: 1, Y: 1}, {X: -1, Y: 1}, {X: 1, Y: -1}, {X: -1, Y: -1},
	}
)

// Option configures labeling.
type Option func(*config)

type config struct {
	connectivity Connectivity
}

// WithConnectivity selects 4- or 8-connectivity. The default is Four.
func WithConnectivity(c Connectivity) Option {
	return func(cfg *config) {
		cfg.connectivity = c
	}
}

func applyOptions(opts []Option) (config, error) {
	cfg := config{connectivity: Four}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.connectivity != Four && cfg.connectivity != Eight {
		return cfg, fmt.Errorf("label: unsupported connectivity %v", cfg.connectivity)
	}
	return cfg, nil
}

// Map returns the label raster of mask: 0 for background and 1..n for the
// components, numbered in row-major order of their first pixel.
func Map(mask *grid.Mask, opts ...Option) (labels []int32, n int, err error) {
	if err := grid.Check(mask); err != nil {
		return nil, 0, err
	}
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, 0, err
	}
	offsets := offsets4
	if cfg.connectivity == Eight {
		offsets = offsets8
	}

	w, h := mask.Width(), mask.Height()
	fg := mask.Data()
	labels = make([]int32, len(fg))
	var stack []image.Point

	for i, on := range fg {
		if !on || labels[i] != 0 {
			continue
		}
		n++
		id := int32(n)
		labels[i] = id
		stack = append(stack[:0], image.Point{X: i % w, Y: i / w})

		for len(stack) > 0 {
			p := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			for _, d := range offsets {
				q := p.Add(d)
				if q.X < 0 || q.X >= w || q.Y < 0 || q.Y >= h {
					continue
				}
				idx := q.Y*w + q.X
				if !fg[idx] || labels[idx] != 0 {
					continue
				}
				labels[idx] = id
				stack = append(stack, q)
			}
		}
	}
	return labels, n, nil
}

// Label groups the foreground pixels of mask into connected components.
// Components are ordered by the row-major position of their first pixel and
// their pixels are listed in row-major order. An empty mask yields no
// components.
func Label(mask *grid.Mask, opts ...Option) ([]Component, error) {
	labels, n, err := Map(mask, opts...)
	if err != nil {
		return nil, err
	}
	comps := make([]Component, n)
	for i := range comps {
		comps[i].ID = i + 1
	}

	w := mask.Width()
	for i, id := range labels {
		if id == 0 {
			continue
		}
		c := &comps[id-1]
		p := image.Point{X: i % w, Y: i / w}
		px := image.Rectangle{Min: p, Max: p.Add(image.Point{X: 1, Y: 1})}
		if len(c.Pixels) == 0 {
			c.Bounds = px
		} else {
			c.Bounds = c.Bounds.Union(px)
		}
		c.Pixels = append(c.Pixels, p)
	}
	return comps, nil
}
