package fourier

import (
	"github.com/cwbudde/algo-imgproc/imgproc/core"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/internal/parallel"
)

// ErrInvalidDimension is returned for nil or empty input buffers.
var ErrInvalidDimension = grid.ErrInvalidDimension

// Option configures a Transformer.
type Option func(*config)

type config struct {
	direct bool
	proc   core.ProcessorConfig
}

// WithDirect forces the O(N²) direct DFT on every axis. It is slow and meant
// for verification.
func WithDirect() Option {
	return func(cfg *config) {
		cfg.direct = true
	}
}

// WithWorkers runs independent row and column transforms on up to n
// goroutines. Results are identical to the serial path.
func WithWorkers(n int) Option {
	return func(cfg *config) {
		core.WithWorkers(n)(&cfg.proc)
	}
}

// Transformer computes 2D DFTs of arbitrary size.
//
// A Transformer is stateless between calls and safe for concurrent use; plans
// are created per call (and per worker block).
type Transformer struct {
	cfg config
}

// New returns a Transformer configured by opts.
func New(opts ...Option) *Transformer {
	cfg := config{proc: core.ApplyProcessorOptions(core.WithMinRowsPerWorker(8))}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &Transformer{cfg: cfg}
}

var defaultTransformer = New()

// Forward returns the 2D DFT of x using the default Transformer.
func Forward(x *grid.Complex) (*grid.Complex, error) {
	return defaultTransformer.Forward(x)
}

// ForwardReal returns the 2D DFT of a real image using the default Transformer.
func ForwardReal(x *grid.Real) (*grid.Complex, error) {
	return defaultTransformer.ForwardReal(x)
}

// Inverse returns the scaled 2D inverse DFT of x using the default Transformer.
func Inverse(x *grid.Complex) (*grid.Complex, error) {
	return defaultTransformer.Inverse(x)
}

// Forward returns X[u,v] = Σ x[r,c]·exp(-2πi(ur/H + vc/W)).
func (t *Transformer) Forward(x *grid.Complex) (*grid.Complex, error) {
	if err := grid.Check(x); err != nil {
		return nil, err
	}
	return t.transform(x.Clone(), false)
}

// ForwardReal lifts x into the complex plane and returns its 2D DFT.
func (t *Transformer) ForwardReal(x *grid.Real) (*grid.Complex, error) {
	if err := grid.Check(x); err != nil {
		return nil, err
	}
	return t.transform(grid.ToComplex(x), false)
}

// Inverse returns the 2D inverse DFT scaled by 1/(H·W), so that
// Inverse(Forward(x)) reproduces x.
func (t *Transformer) Inverse(x *grid.Complex) (*grid.Complex, error) {
	if err := grid.Check(x); err != nil {
		return nil, err
	}
	return t.transform(x.Clone(), true)
}

// transform runs the 1D transform along every row, then along every column,
// in place on out.
func (t *Transformer) transform(out *grid.Complex, inverse bool) (*grid.Complex, error) {
	h, w := out.Height(), out.Width()
	workers := t.cfg.proc.Workers
	minChunk := t.cfg.proc.MinRowsPerWorker

	err := parallel.For(h, workers, minChunk, func(start, end int) error {
		axis, err := newAxis(w, t.cfg.direct)
		if err != nil {
			return err
		}
		work := make([]complex128, w)
		for r := start; r < end; r++ {
			row := out.Row(r)
			if err := apply(axis, work, row, inverse); err != nil {
				return err
			}
			copy(row, work)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	err = parallel.For(w, workers, minChunk, func(start, end int) error {
		axis, err := newAxis(h, t.cfg.direct)
		if err != nil {
			return err
		}
		line := make([]complex128, h)
		work := make([]complex128, h)
		data := out.Data()
		for c := start; c < end; c++ {
			for r := range line {
				line[r] = data[r*w+c]
			}
			if err := apply(axis, work, line, inverse); err != nil {
				return err
			}
			for r, v := range work {
				data[r*w+c] = v
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

func apply(axis axisTransform, dst, src []complex128, inverse bool) error {
	if inverse {
		return axis.inverse(dst, src)
	}
	return axis.forward(dst, src)
}
