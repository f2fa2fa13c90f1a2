// Package hcl provides the HCL implementation of the config.Loader interface.
// It is responsible for finding project files, decoding `locals` and
// `program` blocks, evaluating their attributes with cty, and translating
// them into the format-agnostic config.Model.
//
// A project file looks like this:
//
//	locals {
//	  build_dir = "build"
//	}
//
//	program "sample" {
//	  source_file = "sample.lexc"
//	  output      = "${local.build_dir}/sample.cpp"
//	}
package hcl
