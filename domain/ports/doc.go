// Package ports defines the raw host ABI as small Go interfaces. These
// ports enable dependency inversion: the safe layer packages depend on these
// abstractions, and infrastructure adapters (or the simtest fake) implement
// them against a real host.
//
// The ports are deliberately C-shaped: raw pointer-sized handles with
// sentinel returns, callback function values paired with correlation
// tokens, and offset/length windows for array access. Nothing in this
// package validates anything; validation is the safe layer's job.
package ports
