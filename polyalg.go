/*
Package polyalg is a fixed-degree polynomial algebra library.
It provides a pure Go implementation of polynomials of statically-known degree,
closed-form construction of interpolating polynomials from boundary constraints,
and algebraic operators over them (root-finding, division, extrema location and
line intersection), together with a binomial-coefficient triangle supporting the
polynomial expansion routines.
*/
package polyalg
