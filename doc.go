// Package harmonica computes the magnetic field generated by right
// rectangular prisms with given magnetization vectors on sets of
// observation points in Cartesian coordinates. Results are returned in
// nanotesla.
package harmonica
