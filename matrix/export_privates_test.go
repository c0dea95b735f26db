// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private kernels and the options snapshot.
//
// Purpose:
//   - Expose unexported ew* kernels and the resolved Options to matrix_test only.
//   - Lets black-box tests pin kernel loop results without widening the API.
//
// Build Policy:
//   - The _test.go suffix keeps this file out of production builds.
//
// AI-Hints:
//   - If a private helper changes signature, mirror the change here once.

var (
	// ExportedEwMul exposes the product kernel for float64.
	ExportedEwMul = ewMul[float64]
	// ExportedEwTranspose exposes the transpose kernel for float64.
	ExportedEwTranspose = ewTranspose[float64]
	// ExportedEwScale exposes the scalar kernel for int.
	ExportedEwScale = ewScale[int]
)

// ExportedDimLen exposes dimLen for a given marker.
func ExportedDimLen[D Dim]() int { return dimLen[D]() }

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	RelTol float64
	AbsTol float64
}

// GatherOptionsSnapshot applies opts over the defaults and returns the result.
func GatherOptionsSnapshot(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{RelTol: o.relTol, AbsTol: o.absTol}
}
