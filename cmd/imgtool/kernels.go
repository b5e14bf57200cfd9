package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-imgproc/imgproc/conv"
	"github.com/cwbudde/algo-imgproc/imgproc/kernels"
)

type kernelEntry struct {
	sized    bool
	build    func(size int, sigma float64) (*conv.Kernel, error)
	gradient bool
}

var kernelRegistry = map[string]kernelEntry{
	"box":       {sized: true, build: func(n int, _ float64) (*conv.Kernel, error) { return kernels.Box(n) }},
	"gaussian":  {sized: true, build: kernels.Gaussian},
	"laplacian": {build: func(int, float64) (*conv.Kernel, error) { return kernels.Laplacian(), nil }},
	"sharpen":   {build: func(int, float64) (*conv.Kernel, error) { return kernels.Sharpen(), nil }},
	"sobel-x":   {build: func(int, float64) (*conv.Kernel, error) { return kernels.SobelX(), nil }},
	"sobel-y":   {build: func(int, float64) (*conv.Kernel, error) { return kernels.SobelY(), nil }},
	"prewitt-x": {build: func(int, float64) (*conv.Kernel, error) { return kernels.PrewittX(), nil }},
	"prewitt-y": {build: func(int, float64) (*conv.Kernel, error) { return kernels.PrewittY(), nil }},
	"sobel":     {gradient: true},
	"prewitt":   {gradient: true},
}

func kernelNames() []string {
	names := make([]string, 0, len(kernelRegistry))
	for n := range kernelRegistry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// lookupKernel resolves a kernel by name. Gradient operators have no single
// kernel and report gradient = true instead.
func lookupKernel(name string, size int, sigma float64) (k *conv.Kernel, gradient bool, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	e, ok := kernelRegistry[name]
	if !ok {
		return nil, false, fmt.Errorf("unknown kernel %q (known: %s)", name, strings.Join(kernelNames(), ", "))
	}
	if e.gradient {
		return nil, true, nil
	}
	k, err = e.build(size, sigma)
	return k, false, err
}
