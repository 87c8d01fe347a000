// Package semblance compares recursively-composed symbolic terms: it decides
// whether one term implies, means the same as, contradicts, or is consistent
// with another under some assignment of generic placeholders, and explains
// why.
//
// The engine subpackage holds the comparison machinery and the capability
// contract a term variant implements. This package supplies the variants:
// Entity and Quantity leaves, Predicate and Comparison clauses, Statement
// composites, and Procedure, which bundles statement groups into a rule-like
// shape.
package semblance
