// Package dataset loads and saves curricula as flat documents.
//
// The document shape matches the planner's historical JSON layout:
//
//	{
//	  "courses":       [{"code": "MAT101", "name": "Cálculo I", "credits": 4}, ...],
//	  "prerequisites": [["MAT101", "MAT102"], ...],   // [prereq, course] pairs
//	  "passed":        ["MAT101", ...]
//	}
//
// The same shape is supported in YAML. Building a store from a document
// funnels every record through the core validators, so a document that
// references an unregistered course, duplicates a code, or carries a
// non-positive credit weight is rejected with the corresponding core
// sentinel. Course codes are normalized (trimmed, upper-cased) on the way
// in; Encode emits everything sorted, so save → load → save is
// byte-stable and a round trip reconstructs an identical store.
//
// The package owns only the file formats; all curriculum semantics stay in
// package core.
package dataset
