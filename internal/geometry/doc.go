// Package geometry provides the spacetime metric abstraction consumed by
// the radiative-transfer engine, together with a flat (Minkowski) metric
// in Cartesian and spherical coordinates. Geodesic integration is out of
// scope: the engine only needs scalar products and step bounds.
package geometry
