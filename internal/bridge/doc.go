// Package bridge implements the SecurityUtils functions exposed to page
// scripts, independent of syscall/js.
//
// Script arguments arrive as Arg values. Every function is total: missing
// or mistyped arguments give the permissive result ("" for the escapers,
// rejection for the validators, package defaults for limit values) and
// nothing panics.
package bridge
