// Package dubins synthesizes shortest bounded-curvature paths between
// oriented 2D poses.
//
// A Dubins vehicle moves forward with a minimum turning radius R. The
// shortest path between two poses is always one of six three-segment words:
// four circle-straight-circle families (LSL, RSR, LSR, RSL) and two
// circle-circle-circle families (LRL, RLR). Each family either admits a
// fully parametrized path for a given query or is infeasible; infeasibility
// is a normal outcome, not an error. ShortestPath evaluates all six and
// returns the global optimum.
package dubins
