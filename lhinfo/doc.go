// SPDX-License-Identifier: MIT

// Package lhinfo reads the YAML metadata block of a PDF set (the "<set>.info"
// file, or the header of a member file up to the first "---") and binds it to
// an uncertainty.Set.
//
// Only the keys the uncertainty engine needs are interpreted:
//
//	SetDesc:        free text
//	SetIndex:       integer ID (optional)
//	NumMembers:     member count including the central member
//	ErrorType:      hessian | symmhessian | replicas, optionally with "+as"
//	ErrorConfLevel: native confidence level in percent (optional)
//
// Every other key (Flavors, XMin, QMax, AlphaS_*, ...) is ignored.
package lhinfo
