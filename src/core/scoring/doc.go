// Package scoring computes derived draft results from snapshots of the
// castaway and prediction record sets.
//
// Every function here is pure: it reads the two slices it is given, mutates
// nothing, holds no state between calls, and never returns an error.
// Degenerate inputs (no castaways, no predictions, nobody eliminated yet)
// yield empty or default results rather than failures. Inputs are trusted;
// validation of submitted prediction sets happens on the write path before
// anything is stored.
package scoring
