// Package batch evaluates many curvature-corrected distances at once.
//
// Inputs come from a YAML document:
//
//	items:
//	  - id: reference
//	    a: 3
//	    b: 4
//	    r: 10
//	    branch: minus
//	  - id: flat
//	    a: 3
//	    b: 4
//	    r: .inf
//
// Run fans the items out over a bounded number of goroutines
// (errgroup.SetLimit), keeps outcomes in input order and records each
// item's error on its own Outcome; one bad item never stops the batch.
// Only cancellation of the caller's context fails a Run.
//
// WriteReport encodes outcomes back to YAML; Summarize counts them by
// error kind.
package batch
