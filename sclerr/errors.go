package sclerr

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
)

// Severity grades a diagnostic. Malformed documents are errors;
// reference problems default to warnings and the model is still built.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

var severityNames = []string{
	SeverityError:   "error",
	SeverityWarning: "warning",
}

func (s Severity) String() string {
	if s >= 0 && int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", int(s))
}

func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Severity) UnmarshalText(b []byte) error {
	i, err := lookupName("severity", severityNames, b)
	if err != nil {
		return err
	}
	*s = Severity(i)
	return nil
}

// Registry is the DataTypeTemplates section a reference is resolved
// against, named by its element.
type Registry int

const (
	RegistryNone Registry = iota
	RegistryEnum
	RegistryAttribute
	RegistryObject
	RegistryNode
)

var registryNames = []string{
	RegistryNone:      "",
	RegistryEnum:      "EnumType",
	RegistryAttribute: "DAType",
	RegistryObject:    "DOType",
	RegistryNode:      "LNodeType",
}

func (r Registry) String() string {
	if r >= 0 && int(r) < len(registryNames) {
		return registryNames[r]
	}
	return fmt.Sprintf("Registry(%d)", int(r))
}

func (r Registry) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

func (r *Registry) UnmarshalText(b []byte) error {
	i, err := lookupName("registry", registryNames, b)
	if err != nil {
		return err
	}
	*r = Registry(i)
	return nil
}

// lookupName returns the index of the surrounding-space-trimmed text in names.
func lookupName(kind string, names []string, b []byte) (int, error) {
	name := string(bytes.TrimSpace(b))
	for i, n := range names {
		if n == name {
			return i, nil
		}
	}
	return 0, errors.Errorf("unknown %s %q", kind, name)
}

// Error is an error or diagnostic raised while loading a document.
//
// Element is the local name of the element carrying the problem (e.g.
// "DA"), Path locates it within the document (e.g.
// "DOType[X]/DA[stVal]") and Ref is the identifier that failed to
// resolve, if any.
type Error struct {
	Tag      string   `json:"tag" yaml:"tag"`
	Severity Severity `json:"severity" yaml:"severity"`
	Registry Registry `json:"registry,omitempty" yaml:"registry,omitempty"`
	Ref      string   `json:"ref,omitempty" yaml:"ref,omitempty"`
	Element  string   `json:"element,omitempty" yaml:"element,omitempty"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty"`
	Message  string   `json:"message,omitempty" yaml:"message,omitempty"`
}

func (e Error) Error() string {
	s := fmt.Sprintf("%s tag:%s", e.Severity, e.Tag)
	if e.Element != "" {
		s += " element:" + e.Element
	}
	if e.Path != "" {
		s += " path:" + e.Path
	}
	if e.Registry != RegistryNone {
		s += " registry:" + e.Registry.String()
	}
	if e.Ref != "" {
		s += " ref:" + e.Ref
	}
	if e.Message != "" {
		s += " " + e.Message
	}
	return s
}

// MalformedDocument reports XML that could not be parsed.
func MalformedDocument(opts ...Option) *Error {
	e := &Error{Tag: "malformed-document"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// UnresolvedReference reports ref missing from registry r. It is a
// warning: the referring member is kept as an unexpanded leaf.
func UnresolvedReference(r Registry, ref string, opts ...Option) *Error {
	e := &Error{Tag: "unresolved-reference", Severity: SeverityWarning, Registry: r, Ref: ref}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// MissingTemplates reports a document without a DataTypeTemplates
// section.
func MissingTemplates(opts ...Option) *Error {
	e := &Error{Tag: "missing-templates", Severity: SeverityWarning, Element: "DataTypeTemplates"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsError reports whether err is (or wraps) an *Error, returning it.
func IsError(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}
