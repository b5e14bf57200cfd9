// Package blob detects bright or dark point sources with a Laplacian of
// Gaussian (LoG) pipeline:
//
//	img → Gaussian → Laplacian → |·| → 255·(v−min)/(max−min) → v >= τ → label → area filter
//
// The Gaussian stage runs as two separable passes. Every stage uses the
// configured [conv.Boundary]; the default, Replicate, avoids false responses
// along the image border.
//
// [DefaultConfig] (9×9 window, sigma 2, τ = 100) is tuned for star fields.
// Thresholds are on the normalized 0..255 scale and are never derived from
// the image.
//
//	blobs, err := blob.Detect(img, blob.DefaultConfig())
//	for _, b := range blobs {
//		fmt.Println(b.Centroid, b.Area)
//	}
package blob
