// Package builder assembles deterministic route-network fixtures for tests,
// benchmarks and examples.
//
//	g, err := builder.BuildGraph(100,
//		[]builder.BuilderOption{
//			builder.WithSeed(42),
//			builder.WithDistanceFn(builder.UniformDistance(50, 2500)),
//			builder.WithPriceFn(builder.UniformPrice(40, 900)),
//		},
//		builder.RandomTree(),       // connected backbone
//		builder.RandomSparse(0.05), // extra routes
//	)
//
// Constructors run in order on the same graph, so edge IDs are reproducible for a
// fixed seed and constructor list.
package builder
