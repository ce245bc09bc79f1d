package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/andaru/scl/sclerr"
	"github.com/andaru/scl/tree"
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Format is an output format.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported formats.
var Formats = []Format{FormatText, FormatJSON, FormatYAML, FormatCBOR}

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", errors.Errorf("unknown format %q (want one of %v)", s, Formats)
}

// encMode encodes CBOR deterministically.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.EncOptions{
		Sort:          cbor.SortCanonical,
		IndefLength:   cbor.IndefLengthForbidden,
		NilContainers: cbor.NilContainerAsNull,
	}.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}
}

// Writer writes reports in one format.
type Writer struct {
	Format Format
	// IndentWidth is the number of spaces per level in text output.
	IndentWidth int
}

// NewWriter returns a Writer for f with two space indentation.
func NewWriter(f Format) *Writer { return &Writer{Format: f, IndentWidth: 2} }

// Tree writes nodes to w.
func (rw *Writer) Tree(w io.Writer, nodes []tree.Node) error {
	if rw.Format == FormatText {
		return rw.outline(w, nodes)
	}
	if nodes == nil {
		nodes = []tree.Node{}
	}
	return rw.encode(w, nodes)
}

// Diagnostics writes diags to w, one per line in text output.
func (rw *Writer) Diagnostics(w io.Writer, diags []*sclerr.Error) error {
	if rw.Format == FormatText {
		for _, d := range diags {
			if _, err := fmt.Fprintln(w, d.Error()); err != nil {
				return errors.WithStack(err)
			}
		}
		return nil
	}
	if diags == nil {
		diags = []*sclerr.Error{}
	}
	return rw.encode(w, diags)
}

func (rw *Writer) encode(w io.Writer, v interface{}) error {
	var err error
	switch rw.Format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(v)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(v); err == nil {
			err = enc.Close()
		}
	case FormatCBOR:
		err = encMode.NewEncoder(w).Encode(v)
	default:
		err = errors.Errorf("unknown format %q", rw.Format)
	}
	return errors.WithStack(err)
}

func (rw *Writer) outline(w io.Writer, nodes []tree.Node) (err error) {
	width := rw.IndentWidth
	if width < 1 {
		width = 2
	}
	for _, n := range nodes {
		n.Walk(func(n tree.Node, depth int) bool {
			if err != nil {
				return false
			}
			_, err = fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", depth*width), n.Label)
			return true
		})
		if err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
