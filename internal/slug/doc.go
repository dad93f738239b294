// Package slug derives stable, URL-safe identifiers for catalog releases,
// sets, parallels and cards, and decomposes raw checklist set names into the
// taxonomy those identifiers are built from.
//
// Stages, leaf first:
//
//   - Normalize: tokens -> lowercase hyphen-joined ASCII.
//   - CanonicalizeNotation: "1/1" and "1 of 1" -> "1-of-1", trailing "/N"
//     -> "-N", filler words ("set", "checklist", "base set") collapsed.
//   - Classifier: raw set name -> SetKind via an ordered keyword table.
//   - ExtractParallel: raw set name + per-release VariantTable ->
//     base set name, variant name, print run.
//   - ReleaseSlug, SetSlug, CardSlug: compose the above.
//
// Every function is pure. Nothing here touches storage; uniqueness of a slug
// is the caller's obligation and is enforced where slugs are persisted.
//
// Files: normalize.go, notation.go, kind.go, classify.go, parallel.go,
// assemble.go, model.go, release.go, rarity.go, order.go, errors.go.
package slug
