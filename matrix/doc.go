// SPDX-License-Identifier: MIT

// Package matrix provides the dense row-major float64 storage shared by the
// uncertainty engine and its command-line collaborators.
//
// Two shapes are used throughout pdfunc:
//
//   - member tables: Size() rows (one per PDF member, row 0 = central) by
//     K columns (one per observable); a column is a member sample.
//   - correlation matrices: K×K, symmetric, unit diagonal.
//
// Indexers validate bounds and return ErrOutOfRange rather than panicking;
// the *Unchecked variants are for callers that already own the shape.
package matrix
