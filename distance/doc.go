// Package distance computes the pairwise time separations that covariance
// kernels are evaluated on.
package distance
