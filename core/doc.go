// Package core defines the routing table that the rest of graffunc resolves
// against: Labels and LabelSets, Converter handles, Edges and Paths, the Data
// mapping threaded through a walk, and the error kinds shared by every stage.
//
// What
//
//   - Label:     opaque identifier for a kind of data ("celsius", "json-blob").
//   - LabelSet:  immutable, canonical (sorted, deduplicated) set of Labels.
//   - Converter: named function handle; compared by pointer identity.
//   - Table:     input LabelSet → output LabelSet → ordered candidate Converters.
//   - Edge:      (inputs, outputs, converter) triple derived from a Table.
//   - Path:      ordered sequence of Edges chosen by a search strategy.
//   - Data:      Label → value mapping consumed and produced by converters.
//
// Determinism
//
//	Table keeps registration order at every level: input sets, output sets
//	under one input set, and candidate converters under one (inputs, outputs)
//	pair. Edges() enumerates in exactly that order, so exploration and every
//	search strategy are reproducible, and when several converters serve the
//	same pair the earliest registered one wins.
//
// Concurrency
//
//	Table performs no locking and no validation; it is plain data. Owners
//	(see package graph) guard it and run package validate before committing a
//	mutation. Concurrent reads of an unmodified Table are safe.
//
// Errors
//
//   - ErrConfiguration   (*ConfigurationError)  routing table invariant violated.
//   - ErrUnreachable     (*UnreachableError)    no path from known to target labels.
//   - ErrMissingInput    (*MissingInputError)   label absent from Data during a walk.
//   - ErrConverterFailed (*ConverterError)      a converter returned an error.
//
// All typed errors match their sentinel through errors.Is.
package core
