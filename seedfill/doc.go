// Package seedfill flood-fills regions of a 2D lattice from a seed point
// using an iterative 4-connected scanline algorithm (Heckbert's seed fill).
//
// What:
//
//   - Engine[T] operates on a caller-owned flat buffer, site (x,y) at
//     index x*L + y, restricted to an inclusive Window [X0,X1] x [Y0,Y1].
//   - FillOneValue replaces the 4-connected region holding the seed's value.
//   - FillToBorderValue fills everything reachable from the seed up to a
//     border value, logging overwritten values so Restore can undo it.
//   - FillToBorderValueSites does the same through any Sites[T]
//     implementation (Flat, SiteFuncs, or a caller type).
//   - SetAllButMagicValue / SetAllButMagicValueCollect overwrite the whole
//     window except a protected value.
//
// How:
//
//	Pending spans live on an explicit segment stack instead of the call
//	stack. Each segment records a run filled on one row and the direction
//	(dy = ±1) of the row to scan next. Runs that extend past their parent
//	span ("leaks") push corrective segments in the opposite direction.
//
// Stack capacity:
//
//	The stack holds at most Options.StackCapacity segments (default 10000,
//	0 = unbounded). With OverflowError (default) a lost push stops the fill
//	and returns ErrStackOverflow alongside the partial Result. With
//	OverflowDrop the push is dropped, the scan continues, and
//	Result.Dropped counts the losses.
//
// Errors:
//
//   - ErrOutOfWindow: seed outside the window.
//   - ErrSeedOnBorder: seed holds the border value (border fills only).
//   - ErrStackOverflow: capacity exceeded under OverflowError.
//   - ErrNoLattice, ErrLatticeBounds: flat lattice missing or too small for the window.
//   - ErrNilSites: nil Sites passed to FillToBorderValueSites.
//   - ErrOptionViolation: invalid Option passed to New.
//
// Precondition failures are returned as *SeedError, which carries the seed,
// window and values and unwraps to the sentinel.
//
// Complexity:
//
//   - Fills: O(W×H) site reads, Memory: O(StackCapacity) + O(writes) for the undo log.
//   - SetAllButMagicValue: O(W×H).
//
// Concurrency: an Engine is not safe for concurrent use. Engines filling
// disjoint windows of one lattice need no locking.
package seedfill
