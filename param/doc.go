// Package param provides the name-indexed parameter table shared by every
// likelihood built on one dataset collection.
//
// A Vector maps parameter names to append-only slots. Each slot stores a
// Parameter (value, vary flag, linear flag). Likelihoods hold the same *Vector,
// so a value written by one of them is seen by all of them:
//
//	vec := param.NewVector()
//	vec.Add("per1", param.Parameter{Value: 12.3, Vary: true})
//	vec.Add("gamma_hires", param.Parameter{Value: 0, Linear: true})
//
//	free := vec.FreeValues()     // values of varying slots, slot order
//	_ = vec.SetFreeValues(free)  // inverse operation
//
// A Vector is not safe for concurrent use. Give each worker its own copy via
// Clone or a Snapshot.
package param
