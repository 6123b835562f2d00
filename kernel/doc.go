// Package kernel provides the covariance kernels used by the Gaussian-process
// likelihood.
//
// A Kernel describes the shape of the covariance as a function of the lag
// between two epochs. Amplitudes are kept outside the kernel: each epoch carries
// the amplitude of the instrument that observed it, and the covariance between
// two epochs is amp_i * amp_j * f(t_i - t_j). All builders in this package are
// pure functions of their arguments.
//
//	k, _ := kernel.ByName("QuasiPer")
//	f, err := k.Func(kernel.Hyperparams{
//	    "gp_explength": 30, "gp_per": 12.5, "gp_perlength": 0.5,
//	})
//	K := kernel.NoisyCovariance(f, distance.Lags(t, t), amps, errs)
package kernel
