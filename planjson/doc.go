// Package planjson encodes MUGS/MSGS results as the JSON documents named in
// spec §6 Output, and streams newly discovered MSGS as single-line JSON
// arrays of fact names when the `anytime` option is set. It is one of only
// two packages that touch the outside world (the other is cmd/mugs-search);
// everything here is a pure encoder over the fdr/goalset/mugs/relax types,
// matching lvlath's pattern of keeping I/O-facing code in its own package
// (builder's graph-from-file readers) separate from the algorithm core.
package planjson
