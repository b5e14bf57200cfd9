// Package label finds connected components in binary masks.
//
// [Map] produces the label raster with an iterative flood fill over an index
// grid, so memory use is bounded by the mask size regardless of component
// shape. [Label] turns the raster into [Component] values with pixel lists,
// bounding boxes and centroids.
//
// Connectivity defaults to 4 (edge-sharing neighbors). [WithConnectivity]
// selects 8-connectivity.
package label
