// Package clusteralgebra models cluster-algebra quivers in pure Go:
// directed multigraphs of frozen and cluster vertices whose signed edge
// multiset encodes a skew-symmetrizable integer exchange matrix, together
// with laminations contributing shear coordinates.
//
// What you get:
//
//   - quiver/     — Quiver aggregate: vertex registry (frozen/cluster kinds),
//     signed directed edge multiset with net-weight accumulation
//   - exchange/   — exchange matrix B projected over cluster vertices,
//     optionally extended with shear-coordinate rows
//   - mutation/   — one-step seed mutation at a cluster vertex (its own
//     inverse; frozen-incident arcs updated too)
//   - lamination/ — shear coordinates of a curve between two frozen
//     vertices, relative to an explicit combinatorial embedding
//   - builder/    — canonical seeds: triangulated polygons and linear
//     (type A) quivers, with principal laminations on request
//   - cmd/quiverctl — load a quiver definition (TOML/YAML), mutate, and
//     print the extended exchange matrix
//
// Every exported operation is a deterministic pure function of the quiver
// snapshot it receives: building the same matrix twice, or mutating twice at
// the same vertex, always reproduces the original state exactly.
//
// A Quiver instance is owned by one caller at a time; concurrent mutation of
// the same instance must be serialized externally (see quiver package docs).
//
//	go get github.com/eunsung-lim/cluster-algebra
package clusteralgebra
