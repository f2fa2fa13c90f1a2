// Package config defines the format-agnostic project model: the set of
// programs to compile and where their outputs go, along with the Loader
// interface that concrete formats (such as HCL) implement.
//
// The `config.Model` is the single input of the `executor` package. It never
// holds parsed syntax from a particular format.
package config
