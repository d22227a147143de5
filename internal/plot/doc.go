// Package plot renders sets of 2D points onto a PNG grid.
//
// The world coordinate system has its origin at the centre of the image with
// y increasing upward, the opposite of raster convention. Drawing happens in a
// y-up raster that is flipped vertically once all points are placed; labels
// are drawn after the flip so the glyphs read the right way up.
//
// # Colours
//
// Each point is coloured by its polar angle: hue 0° on the positive x axis,
// 90° on the positive y axis and so on around the circle. The full
// two-argument arctangent is used here since the colour is display only.
//
// # Errors
//
// Render and Draw reject canvases smaller than MinSize. Points with NaN or
// infinite coordinates are skipped and counted rather than failing the plot.
package plot
