// Package statereg is the search driver's dense state registry: it maps
// fdr.State values to small integer StateIDs and back, so the open list,
// closed map, and parent pointers (spec §4.E) can all index by a cheap
// uint32 instead of hashing or cloning a State on every lookup.
//
// A Registry owns the only long-lived copy of each distinct State it has
// seen; callers that need to mutate a state first Clone it.
package statereg
