// Package diff computes and applies line-oriented unified diffs.
//
// Given two text buffers it builds a Patch describing how to turn one into
// the other; given a Patch and a buffer it reconstructs the other side,
// forward or reverse. Four interchangeable algorithms (Myers, XDiff, Naive,
// Similar) produce the raw edit script; the chunk builder folds that script
// into unified-diff chunks with configurable context; and two appliers
// (strict and fuzzy) apply a Patch back to a buffer.
package diff
