// Package castly provides an extensible, reflection-based conversion
// registry and dispatcher. It resolves a conversion strategy per
// (source, target) type pair: user-registered conversions first, then
// direct casts, primitive coercions, element-wise array, slice and map
// casts, tag-driven struct mapping, and a gojay JSON codec bridge.
package castly
