// Package instance binds the logical node instances of an SCL document's
// IEDs to their LNodeType definitions.
package instance
