// Package awards computes win interval statistics for Golden Raspberry
// producers.
//
// The pipeline has four stages, each a pure function over its input:
// SplitProducers parses a raw credit string into producer names,
// GroupWinYears collects distinct award years per producer across the
// winning records, Intervals expands each producer's sorted years into
// one record per pair of consecutive wins, and SelectMinMax picks every
// record tied at the globally smallest and largest gap.
//
// Malformed data never surfaces as an error: blank producer fragments,
// unusable years, and non-positive gaps are filtered out, shrinking the
// result instead of failing the computation. Callers therefore always
// receive a well-formed Selection, possibly empty.
package awards
