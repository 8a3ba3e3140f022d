// Package sorttrace records the step-by-step history of sorting a short
// integer sequence, for display one frame per step.
//
// # Drivers
//
// Two drivers are provided:
//   - Bubble repeats a single adjacent-swap sweep until the sequence ascends,
//     recording one snapshot per sweep.
//   - Quick runs a breadth-first quicksort over a partition forest,
//     recording one snapshot per partitioning level rather than per pivot.
//
// # Traces
//
// A Trace is never empty. Its first snapshot equals the input, its last
// snapshot is ascending and no snapshot before the last one is ascending, so
// an input that is already sorted yields a one-snapshot trace. Every snapshot
// is an independent copy and a permutation of the input.
//
// # Example Usage
//
//	import "github.com/ajroetker/go-sorttrace/sorttrace"
//
//	func Frames(data []int) {
//	    for i, snap := range sorttrace.Bubble(data).Frames() {
//	        draw(i, snap)
//	    }
//	}
//
// # Scale
//
// The drivers target demonstration sizes (tens of elements). The passes are
// iterative, so stack depth does not grow with input length, but the trace
// itself holds O(n) snapshots of n elements each.
package sorttrace
