// Package sample is a small fixture of basic Go constructs: a stateful
// counter with an unexported mutator, a closed two-variant signal type, a
// named label and a pair of printing functions, one exported and one not.
//
// Tools that read Go source (symbol extractors, linters, doc generators) can
// point at this package to check how they treat exported and unexported
// identifiers.
package sample
