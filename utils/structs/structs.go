// Package structs implements generic fixed-length containers for coefficients and table rows.
package structs
