// Package gauge computes the geometry of a linear deviation scale.
//
// A deviation scale is a ruler with a central zero line, a tolerance
// ("frontier") band around it, major and minor tick marks on both sides,
// eleven labels and an optional pointer showing a deviation in -50..+50.
// This package contains no drawing code: it turns a pixel size, an
// [Orientation] and a pointer position into the rectangles, lines, anchor
// points and stroke widths a renderer needs for one frame.
//
// # Grid
//
// All geometry lives on a fixed grid. The long axis (height for [Vertical],
// width for [Horizontal]) is split into 22 parts and the short axis into 11.
// Every coordinate is part*dimension/parts, so the same layout scales to any
// pixel size:
//
//	background  long [1, 21]   short [1, 9]
//	frontier    long [9, 13]   short [1, 9]
//	central     long 11        short 1 → 9
//	majors      long 2,4..20   short 1 → 2 and 8 → 9
//	minors      long 1.5..20.5 short 1 → 1.5 and 8.5 → 9
//
// # Geometry
//
// [Compute] recomputes the full [Snapshot] for a size. It never updates a
// snapshot incrementally; callers replace their cached value.
//
//	snap, err := gauge.Compute(1100, 2200, gauge.Vertical)
//	if err != nil {
//	    return err // non-positive size, nothing to draw
//	}
//	fmt.Println(snap.Background) // (100,100)-(900,2100)
//
// # Pointer
//
// [PointerLine] maps a position to the pointer segment. Positions are
// clamped to [PositionMin, PositionMax]. Zero always lands exactly on the
// central line. Positive positions move up on a vertical scale and right on
// a horizontal one.
//
//	p := gauge.PointerLine(25, gauge.Vertical, 1100, 2200)
package gauge
