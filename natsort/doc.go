// Package natsort implements natural, case-insensitive ordering of
// identifiers such as venue codes and route names.
//
// An identifier is read as a sequence of runs. A run is either a maximal
// sequence of ASCII digits or a maximal sequence of letters. Any other
// character (punctuation, symbols, whitespace) ends the current run and is
// otherwise ignored.
//
// Runs are compared pairwise from the left:
//
//   - two digit runs compare by numeric value ("2" < "17", "007" == "7"),
//     with no upper bound on length
//   - two letter runs compare case-insensitively by code point
//   - a digit run sorts before a letter run
//   - an identifier that runs out of runs first sorts first
//
// So "LT1" < "lt2" < "LT17", and "LT-1" compares equal to "LT1". Callers
// that need a total order on distinct strings should sort stably and rely
// on input order for ties.
package natsort
