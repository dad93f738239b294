// Package pipeline is the batch consumer of the slug engine. It discovers
// release profiles, reads their checklist rows, derives every set and card
// slug, and reports degenerate slugs, collisions within a release and (in
// verify mode) drift against slugs already stored in the checklist.
//
// Layout:
//   - discover.go: profile discovery (recursive, sorted)
//   - reader.go: checklist CSV and inline row reading
//   - release.go: per-release derivation
//   - collision.go: per-release slug claims and -N disambiguation
//   - runner.go: Run, concurrency, summary
//   - report.go: report model and locked write
//   - stats.go: RunStats
package pipeline
