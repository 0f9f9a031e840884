// Package geom provides the 2D primitives shared by the path-synthesis and
// envelope engines: points, oriented poses, circles, and the arc/line
// segments that paths are assembled from.
//
// All types are plain values. Angles are radians measured counter-clockwise
// from the +x axis; headings are normalized to (-π, π].
package geom
