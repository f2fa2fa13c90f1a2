// Package artifactstore records the outcome of every program compiled during
// a run: its status, the generated code and, for failures, the error.
//
// # Concurrency Model
//
// Workers of the executor write concurrently, each to its own program key,
// while the app reads results once the run completes. The store uses sync.Map
// because the key space is fixed up front and every key is written by a
// single worker.
package artifactstore
