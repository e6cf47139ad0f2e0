// Package zip provides lazy, fixed-arity zippers over independently typed producers.
//
// Zip2 .. Zip5 advance their producers in lockstep and emit one tuple per step,
// stopping at the first producer that runs out:
//
//	z := zip.NewZip3(zip.Just('a', 'b', 'c'), zip.Range(0, 5), zip.Repeat("x"))
//	tuples, err := zip.Collect(ctx, z)
//
// Producers are pulled strictly from left to right. Once one of them reports io.EOF,
// the producers after it are not touched for that step. Any other error is returned as is.
//
// A zip is itself a Producer, so zips nest, but tuples are never flattened:
// Zip2 over a Zip2 emits Tuple2[Tuple2[A, B], C], not Tuple3[A, B, C].
package zip

//go:generate go run ../cmd/zipgen -config ../zipgen.yaml
