// Package envelope computes the convex envelope of a set of disks: the
// convex hull of the disk centers in counter-clockwise order, with indices
// back into the input set, and an optional smoothed closed curve through
// the hull vertices.
package envelope
