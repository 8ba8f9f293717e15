// Package routes classifies transit route identifiers.
//
// Two kinds of route share one namespace. Public transport lines carry the
// prefix "PUB:" followed by the line number ("PUB:95"). Every other string
// is the name of an internal shuttle route ("A1", "D2", "BTC").
//
// IsPublic, Style and Simplify are pure and agree on the same prefix test.
package routes
