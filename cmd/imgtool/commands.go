package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-imgproc/imgproc/blob"
	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/core"
	"github.com/cwbudde/algo-imgproc/imgproc/edge"
	"github.com/cwbudde/algo-imgproc/imgproc/fourier"
	"github.com/cwbudde/algo-imgproc/imgproc/grid"
	"github.com/cwbudde/algo-imgproc/imgproc/levels"
	"github.com/cwbudde/algo-imgproc/imgproc/spectrum"
	"github.com/cwbudde/algo-imgproc/imgproc/stats"
)

var errMissingFlag = errors.New("missing required flag")

func requireFlags(pairs ...string) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			return fmt.Errorf("%w: -%s", errMissingFlag, pairs[i])
		}
	}
	return nil
}

func (e *env) load(path string) (*grid.Real, error) {
	start := time.Now()
	img, format, err := loadGray(path)
	if err != nil {
		return nil, err
	}
	e.log.WithFields(logrus.Fields{
		"path":   path,
		"format": format,
		"width":  img.Width(),
		"height": img.Height(),
		"took":   time.Since(start).String(),
	}).Debug("Loaded image")
	return img, nil
}

func (e *env) save(path string, g *grid.Real) error {
	if err := savePNG(path, g); err != nil {
		return err
	}
	e.log.WithField("path", path).Info("Wrote image")
	return nil
}

func (e *env) analyzer() *spectrum.Analyzer {
	return spectrum.NewAnalyzer(fourier.WithWorkers(e.workers))
}

// display maps g onto [0, 255] unless raw output was requested.
func display(g *grid.Real, raw bool) (*grid.Real, error) {
	if raw {
		return g, nil
	}
	return levels.NormalizeMinMax(g, 0, 255)
}

func runSpectrum(e *env, args []string) error {
	fs := flag.NewFlagSet("spectrum", flag.ContinueOnError)
	in := fs.String("in", "", "input image")
	out := fs.String("out", "", "output PNG")
	eps := fs.Float64("eps", 1, "offset added before the logarithm")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}

	img, err := e.load(*in)
	if err != nil {
		return err
	}
	s, err := e.analyzer().Analyze(img)
	if err != nil {
		return err
	}
	logMag, err := spectrum.LogMagnitude(s, *eps)
	if err != nil {
		return err
	}
	lo, hi, err := levels.MinMax(logMag)
	if err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{"min_db": lo, "max_db": hi}).Debug("Log spectrum range")

	view, err := display(logMag, false)
	if err != nil {
		return err
	}
	return e.save(*out, view)
}

func runReconstruct(e *env, args []string) error {
	fs := flag.NewFlagSet("reconstruct", flag.ContinueOnError)
	in := fs.String("in", "", "input image (magnitude source for transplant)")
	phase := fs.String("phase", "", "phase source image for -mode transplant")
	out := fs.String("out", "", "output PNG")
	mode := fs.String("mode", "magnitude", "magnitude | phase | transplant")
	realPart := fs.Bool("real", false, "keep the signed real part instead of the modulus")
	raw := fs.Bool("raw", false, "skip min/max normalization of the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}

	a := e.analyzer()
	img, err := e.load(*in)
	if err != nil {
		return err
	}
	s, err := a.Analyze(img)
	if err != nil {
		return err
	}

	switch *mode {
	case "magnitude":
		s, err = spectrum.MagnitudeOnly(s)
	case "phase":
		s, err = spectrum.PhaseOnly(s)
	case "transplant":
		if err := requireFlags("phase", *phase); err != nil {
			return err
		}
		other, lerr := e.load(*phase)
		if lerr != nil {
			return lerr
		}
		ps, aerr := a.Analyze(other)
		if aerr != nil {
			return aerr
		}
		s, err = spectrum.Transplant(s, ps)
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		return err
	}

	output := spectrum.OutputModulus
	if *realPart {
		output = spectrum.OutputReal
	}
	rec, err := a.Reconstruct(s, output)
	if err != nil {
		return err
	}
	view, err := display(rec, *raw)
	if err != nil {
		return err
	}
	e.log.WithField("mode", *mode).Debug("Reconstructed image")
	return e.save(*out, view)
}

func runFilter(e *env, args []string) error {
	fs := flag.NewFlagSet("filter", flag.ContinueOnError)
	in := fs.String("in", "", "input image")
	out := fs.String("out", "", "output PNG")
	name := fs.String("kernel", "gaussian", "kernel name: "+fmt.Sprint(kernelNames()))
	size := fs.Int("size", 3, "kernel size for box and gaussian")
	sigma := fs.Float64("sigma", 0, "gaussian sigma; <= 0 derives it from -size")
	boundary := fs.String("boundary", conv.Replicate.String(), "replicate | zero | reflect | reflect101 | wrap")
	raw := fs.Bool("raw", false, "clamp instead of min/max normalizing the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}
	b, err := conv.ParseBoundary(*boundary)
	if err != nil {
		return err
	}
	kname := strings.ToLower(strings.TrimSpace(*name))
	k, gradient, err := lookupKernel(kname, *size, *sigma)
	if err != nil {
		return err
	}

	img, err := e.load(*in)
	if err != nil {
		return err
	}
	opts := []core.ProcessorOption{core.WithWorkers(e.workers)}

	var res *grid.Real
	switch {
	case gradient && kname == "prewitt":
		g, gerr := edge.Prewitt(img, b, opts...)
		if gerr != nil {
			return gerr
		}
		res = g.Magnitude
	case gradient:
		g, gerr := edge.Sobel(img, b, opts...)
		if gerr != nil {
			return gerr
		}
		res = g.Magnitude
	default:
		res, err = conv.Convolve(img, k, b, opts...)
		if err != nil {
			return err
		}
	}

	fields := logrus.Fields{"kernel": kname, "boundary": b.String()}
	if entry := kernelRegistry[kname]; entry.sized {
		fields["size"] = *size
	}
	e.log.WithFields(fields).Debug("Filtered image")

	view, err := display(res, *raw)
	if err != nil {
		return err
	}
	return e.save(*out, view)
}

func runResponse(e *env, args []string) error {
	fs := flag.NewFlagSet("response", flag.ContinueOnError)
	out := fs.String("out", "", "output PNG")
	name := fs.String("kernel", "gaussian", "kernel name")
	size := fs.Int("size", 9, "kernel size for box and gaussian")
	sigma := fs.Float64("sigma", 0, "gaussian sigma")
	n := fs.Int("n", 256, "frequency grid size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("out", *out); err != nil {
		return err
	}
	k, gradient, err := lookupKernel(*name, *size, *sigma)
	if err != nil {
		return err
	}
	if gradient {
		return fmt.Errorf("kernel %q is a gradient pair; use %s-x or %s-y", *name, *name, *name)
	}
	resp, err := e.analyzer().KernelResponse(k, *n)
	if err != nil {
		return err
	}
	view, err := levels.NormalizeMax(resp, 255)
	if err != nil {
		return err
	}
	return e.save(*out, view)
}

func runBlobs(e *env, args []string) error {
	def := blob.DefaultConfig()
	fs := flag.NewFlagSet("blobs", flag.ContinueOnError)
	in := fs.String("in", "", "input image")
	maskOut := fs.String("mask", "", "optional PNG for the thresholded response")
	size := fs.Int("size", def.KernelSize, "Gaussian kernel size")
	sigma := fs.Float64("sigma", def.Sigma, "Gaussian sigma; <= 0 derives it from -size")
	threshold := fs.Float64("threshold", def.Threshold, "threshold on the 0..255 normalized response")
	minArea := fs.Int("min-area", 0, "drop blobs with fewer pixels")
	maxArea := fs.Int("max-area", 0, "drop blobs with more pixels (0 = unbounded)")
	boundary := fs.String("boundary", def.Boundary.String(), "border policy")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in); err != nil {
		return err
	}
	b, err := conv.ParseBoundary(*boundary)
	if err != nil {
		return err
	}

	cfg := blob.Config{
		KernelSize: *size,
		Sigma:      *sigma,
		Threshold:  *threshold,
		Boundary:   b,
		MinArea:    *minArea,
		MaxArea:    *maxArea,
		Workers:    e.workers,
	}
	d, err := blob.NewDetector(cfg)
	if err != nil {
		return err
	}
	img, err := e.load(*in)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := d.DetectDetailed(img)
	if err != nil {
		return err
	}
	e.log.WithFields(logrus.Fields{
		"blobs": len(res.Blobs),
		"took":  time.Since(start).String(),
	}).Info("Detection finished")

	if *maskOut != "" {
		if err := saveMask(*maskOut, res.Mask); err != nil {
			return err
		}
	}
	return printBlobs(e, res.Blobs)
}

func printBlobs(e *env, blobs []blob.Blob) error {
	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "ID\tX\tY\tArea\tBounds\n"); err != nil {
		return err
	}
	for _, b := range blobs {
		if _, err := fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%d\t%v\n",
			b.Component.ID, b.Centroid.X, b.Centroid.Y, b.Area, b.Component.Bounds); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func runCanny(e *env, args []string) error {
	def := edge.DefaultConfig()
	fs := flag.NewFlagSet("canny", flag.ContinueOnError)
	in := fs.String("in", "", "input image")
	out := fs.String("out", "", "output PNG")
	size := fs.Int("size", def.KernelSize, "Gaussian kernel size (1 disables smoothing)")
	low := fs.Float64("low", def.Low, "hysteresis low threshold")
	high := fs.Float64("high", def.High, "hysteresis high threshold")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in, "out", *out); err != nil {
		return err
	}

	cfg := def
	cfg.KernelSize = *size
	cfg.Low = *low
	cfg.High = *high
	cfg.Workers = e.workers

	img, err := e.load(*in)
	if err != nil {
		return err
	}
	mask, err := edge.Canny(img, cfg)
	if err != nil {
		return err
	}
	var n int
	for _, on := range mask.Data() {
		if on {
			n++
		}
	}
	e.log.WithFields(logrus.Fields{"edge_pixels": n, "low": cfg.Low, "high": cfg.High}).Debug("Canny finished")
	return saveMask(*out, mask)
}

func runStats(e *env, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	in := fs.String("in", "", "input image")
	bins := fs.Int("bins", 0, "also print a histogram over [0, 256) with this many bins")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := requireFlags("in", *in); err != nil {
		return err
	}
	img, err := e.load(*in)
	if err != nil {
		return err
	}
	s, err := stats.Calculate(img)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(e.out, 0, 0, 2, ' ', 0)
	rows := []struct {
		name  string
		value string
	}{
		{"Size", fmt.Sprintf("%dx%d", img.Width(), img.Height())},
		{"Mean", fmt.Sprintf("%.4f", s.Mean)},
		{"StdDev", fmt.Sprintf("%.4f", s.StdDev)},
		{"Skewness", fmt.Sprintf("%.4f", s.Skewness)},
		{"Kurtosis", fmt.Sprintf("%.4f", s.Kurtosis)},
		{"Min", fmt.Sprintf("%.2f at %v", s.Min, s.MinPos)},
		{"Max", fmt.Sprintf("%.2f at %v", s.Max, s.MaxPos)},
		{"RMS", fmt.Sprintf("%.4f", s.RMS)},
		{"Contrast", fmt.Sprintf("%.4f", s.Contrast)},
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", r.name, r.value); err != nil {
			return err
		}
	}
	if *bins > 0 {
		counts, err := stats.Histogram(img, *bins, 0, 256)
		if err != nil {
			return err
		}
		width := 256 / float64(*bins)
		for i, c := range counts {
			if _, err := fmt.Fprintf(tw, "[%.1f, %.1f)\t%d\n", float64(i)*width, float64(i+1)*width, c); err != nil {
				return err
			}
		}
	}
	return tw.Flush()
}
