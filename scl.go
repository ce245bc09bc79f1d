package scl

import (
	"github.com/andaru/scl/instance"
	"github.com/andaru/scl/sclerr"
	"github.com/andaru/scl/template"
	"github.com/andaru/scl/tree"
	"github.com/andaru/scl/xmlutil"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// Model is a loaded SCL document: its linked templates and the devices
// bound against them. A Model is immutable.
type Model struct {
	Templates *template.Templates
	Devices   []instance.Device

	hasTemplates bool
}

// Load parses text and builds its Model.
func Load(text string) (*Model, error) {
	doc, err := xmlutil.Parse(text)
	if err != nil {
		return nil, errors.Wrap(err, "loading SCL document")
	}
	return Build(doc), nil
}

// Build builds the Model of a parsed document.
func Build(doc *xmlutil.Document) *Model {
	dtt := doc.First("DataTypeTemplates")
	m := &Model{Templates: template.Build(dtt), hasTemplates: dtt != nil}
	m.Devices = instance.Bind(doc.Root(), m.Templates.Nodes)
	glog.V(1).Infof("loaded %d IED, %d LNodeType, %d diagnostics",
		len(m.Devices), m.Templates.Nodes.Len(), len(m.Diagnostics()))
	return m
}

// Bindings returns the logical node bindings of all devices.
func (m *Model) Bindings() []instance.Binding { return instance.Flatten(m.Devices) }

// DeviceTree projects the devices as IED -> LD -> LN trees.
func (m *Model) DeviceTree(opts ...tree.Option) []tree.Node {
	return tree.New(opts...).Devices(m.Devices)
}

// Catalogue projects every LNodeType of the templates.
func (m *Model) Catalogue(opts ...tree.Option) []tree.Node {
	return tree.New(opts...).Catalogue(m.Templates.Nodes)
}

// Diagnostics returns the conditions noticed while loading: a missing
// DataTypeTemplates section, unresolved template references, then
// unresolved lnType references.
func (m *Model) Diagnostics() []*sclerr.Error {
	var diags []*sclerr.Error
	if !m.hasTemplates {
		diags = append(diags, sclerr.MissingTemplates())
	}
	diags = append(diags, m.Templates.Unresolved()...)
	return append(diags, instance.Unresolved(m.Devices)...)
}
