// Package report encodes display trees and diagnostics for output.
//
// Supported formats are an indented text outline, JSON, YAML and
// canonical CBOR.
package report
