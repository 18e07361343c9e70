package utils

import (
	"gonum.org/v1/gonum/mat"
)

const eps = 2.220446049250313e-16

// NullSpace computes an orthonormal basis for the kernel of A via a full
// SVD. Basis vectors are returned as the columns of N; nullity is the
// kernel dimension. N is the zero-value Matrix when the kernel is trivial.
// A non-positive tol selects the usual max(nr,nc)*eps*sigma_max cutoff.
func NullSpace(A Matrix, tol float64) (N Matrix, nullity int) {
	var (
		svd   mat.SVD
		v     mat.Dense
		_, nc = A.Dims()
	)
	ok := svd.Factorize(A.M, mat.SVDFullV)
	if !ok {
		panic("SVD factorization failed")
	}
	svd.VTo(&v)
	rank := rankFromValues(A, svd.Values(nil), tol)
	nullity = nc - rank
	if nullity == 0 {
		return
	}
	N = NewMatrix(nc, nullity)
	for j := 0; j < nullity; j++ {
		for i := 0; i < nc; i++ {
			N.M.Set(i, j, v.At(i, rank+j))
		}
	}
	return
}

// Rank counts singular values of A above tol (automatic cutoff when
// tol <= 0)
func Rank(A Matrix, tol float64) (rank int) {
	var (
		svd mat.SVD
	)
	ok := svd.Factorize(A.M, mat.SVDNone)
	if !ok {
		panic("SVD factorization failed")
	}
	rank = rankFromValues(A, svd.Values(nil), tol)
	return
}

func rankFromValues(A Matrix, sigma []float64, tol float64) (rank int) {
	var (
		nr, nc = A.Dims()
	)
	if tol <= 0 {
		var sigmaMax float64
		for _, s := range sigma {
			if s > sigmaMax {
				sigmaMax = s
			}
		}
		n := nr
		if nc > n {
			n = nc
		}
		tol = float64(n) * eps * sigmaMax
	}
	for _, s := range sigma {
		if s > tol {
			rank++
		}
	}
	return
}
