// Package veb implements ordered sets of fixed-width unsigned integers on
// top of the van Emde Boas decomposition.
//
// A key of W bits is split into a cluster index (high bits) and an offset
// (low bits). Every branch keeps a summary node over the occupied cluster
// indices plus one slot per occupied cluster. A slot holding exactly one key
// stores it inline; a second key promotes the slot to a materialized child.
// Children and summaries are created on demand and dropped the moment they
// become empty, so memory tracks the key set.
//
// Leaves are plain word bitmaps (Leaf6 covers 64 values, Leaf8 covers 256).
// Branches with at most 2^16 clusters keep them in dense arrays; wider ones
// use a hash map. The 40-bit tree replaces the top branch with WideTop, a
// flat 65536-way node indexed by a three-tier occupancy bitmap.
//
// Supported widths are 24, 32, 40, 48 and 64 bits:
//
//	t := veb.New40()
//	t.Insert(5)
//	t.Insert(1 << 25)
//	next, ok := t.Successor(5) // 1<<25, true
//
// Successor and Predecessor are strict. Predecessor also accepts
// PredecessorQueryMax (one past MaxKey for widths below 64) and then reports
// the largest key present.
//
// Trees are not safe for concurrent mutation. Keys above MaxKey are a
// programming error; building with the vebdebug tag turns them into panics
// wrapping ErrKeyOutOfRange.
package veb
