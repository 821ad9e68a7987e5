// Package circuits connects a cloud of 3D junction boxes shortest edge first
// and reports on the clusters ("circuits") that form.
//
// What is circuits?
//
//	A small, deterministic, pure-Go engine around one idea: Kruskal's walk over
//	the complete Euclidean graph of a point set.
//		• point/    : immutable 3D integer points and the "x,y,z" record parser
//		• edges/    : all n·(n−1)/2 edges, exact squared-length keys, stable sort
//		• clusters/ : union-find cluster store (path halving, union by size)
//		• spanning/ : bounded and full spanning walks, dense Prim cross-check
//		• metrics/  : Prometheus observer for walk progress
//		• config/   : viper + validator run settings
//		• cmd/circuits : the CLI
//
// Quick example:
//
//	pts, _ := point.ParseAll(input)
//	c, _ := spanning.New(pts)
//	bounded, _ := c.Bounded(1000) // product of three largest clusters
//	span, _ := c.Span()           // edge that joins the last two clusters
//
//	go install github.com/katalvlaran/circuits/cmd/circuits@latest
package circuits
