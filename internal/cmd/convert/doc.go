// Package convert wires the manifest loader, backend dispatch and batched
// writer into one conversion run. The CLI builds an Options struct from
// flags and environment and hands it to Run; no global state is consulted.
package convert
