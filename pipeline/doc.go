// Package pipeline runs the full skeleton extraction on one EDT field:
//
//	field ─► ridge.Detect ─► ridge.Split ─┬─► component 0 ─► sphere.Project ─► skeleton.Build ─► skeleton.Extract ─► shape.Compute
//	                                      ├─► component 1 ─► ...
//	                                      └─► ...
//
// Components are independent and processed concurrently by an errgroup
// bounded to Config.Workers goroutines; results keep component order.
//
// Config carries every tunable constant with TOML tags and is read by
// LoadConfig. LogConfig installs a text slog handler as the medax logger,
// writing to stderr or to a size-rotated file.
package pipeline
