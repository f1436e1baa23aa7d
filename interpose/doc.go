// See init.go and shadows_gen.go for the implementation; this file
// only carries the go:generate directive that (re)produces
// shadows_gen.go from internal/shadowtable.
package main

//go:generate go run ./gen
