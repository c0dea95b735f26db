// SPDX-License-Identifier: MIT

package matrix

// Dim is a compile-time dimension. Implementations are zero-size marker
// types whose Len returns a fixed positive constant:
//
//	type D100 struct{}
//
//	func (D100) Len() int { return 100 }
//
// A marker whose Len is not positive is reported as ErrBadShape.
type Dim interface {
	Len() int
}

// Predeclared dimension markers.
type (
	D1   struct{}
	D2   struct{}
	D3   struct{}
	D4   struct{}
	D5   struct{}
	D6   struct{}
	D7   struct{}
	D8   struct{}
	D9   struct{}
	D10  struct{}
	D11  struct{}
	D12  struct{}
	D13  struct{}
	D14  struct{}
	D15  struct{}
	D16  struct{}
	D32  struct{}
	D64  struct{}
	D128 struct{}
	D256 struct{}
)

func (D1) Len() int   { return 1 }
func (D2) Len() int   { return 2 }
func (D3) Len() int   { return 3 }
func (D4) Len() int   { return 4 }
func (D5) Len() int   { return 5 }
func (D6) Len() int   { return 6 }
func (D7) Len() int   { return 7 }
func (D8) Len() int   { return 8 }
func (D9) Len() int   { return 9 }
func (D10) Len() int  { return 10 }
func (D11) Len() int  { return 11 }
func (D12) Len() int  { return 12 }
func (D13) Len() int  { return 13 }
func (D14) Len() int  { return 14 }
func (D15) Len() int  { return 15 }
func (D16) Len() int  { return 16 }
func (D32) Len() int  { return 32 }
func (D64) Len() int  { return 64 }
func (D128) Len() int { return 128 }
func (D256) Len() int { return 256 }

// dimLen returns D.Len(), or 0 when D is an interface type (nil marker).
func dimLen[D Dim]() int {
	var d D
	if any(d) == nil {
		return 0
	}

	return d.Len()
}

// shapeOf resolves the runtime extents of the (R, C) markers.
// Returns ErrBadShape when either marker does not yield a positive length.
// Complexity: O(1).
func shapeOf[R, C Dim]() (rows, cols int, err error) {
	rows, cols = dimLen[R](), dimLen[C]()
	if rows <= 0 || cols <= 0 {
		return 0, 0, ErrBadShape
	}

	return rows, cols, nil
}
