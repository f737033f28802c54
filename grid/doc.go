// Package grid builds the uniform spatial mesh every solve runs on.
//
// A Grid holds N ≥ 2 ascending points over [XMin, XMax] with spacing
// Delta = (XMax − XMin)/(N − 1). It is created once per solve and never
// mutated; Points returns a fresh copy on every call.
//
//	g, err := grid.New(-5, 5, 1999)
//	if err != nil {
//		// errors.Is(err, grid.ErrInvalidGrid)
//	}
//	xs := g.Points()  // xs[0] == -5, xs[1998] == 5
//	dx := g.Delta()   // 10/1998
package grid
