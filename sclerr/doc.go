// Package sclerr defines the errors and diagnostics reported while
// loading SCL documents.
//
// Only a malformed document is a hard error. References to template
// types that do not exist are reported as warning-severity diagnostics
// alongside the model that was built despite them.
package sclerr
