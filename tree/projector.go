package tree

import (
	"github.com/andaru/scl/instance"
	"github.com/andaru/scl/template"
	"github.com/samber/lo"
)

// DefaultMaxDepth is the default bound on DO/SDO/DA/BDA nesting below a
// logical node.
const DefaultMaxDepth = 32

// DefaultMaxNodes is the default number of data objects and attributes
// a single projection expands.
const DefaultMaxNodes = 1 << 20

// Projector projects templates and bindings into display trees. A
// Projector holds no state between calls and may be used concurrently.
type Projector struct {
	maxDepth   int
	maxNodes   int
	markLabels bool
}

// Option is a Projector option function
type Option func(*Projector)

// WithMaxDepth bounds data object and attribute nesting below each
// logical node to n levels. Values below 1 select DefaultMaxDepth.
func WithMaxDepth(n int) Option {
	return func(p *Projector) {
		if n < 1 {
			n = DefaultMaxDepth
		}
		p.maxDepth = n
	}
}

// WithMaxNodes bounds the number of data objects and attributes one
// call to Devices, Bindings or Catalogue expands. Once spent, further
// nodes are truncated leaves. Values below 1 select DefaultMaxNodes.
func WithMaxNodes(n int) Option {
	return func(p *Projector) {
		if n < 1 {
			n = DefaultMaxNodes
		}
		p.maxNodes = n
	}
}

// WithTruncationMarker appends " (truncated)" to the label of
// truncated nodes.
func WithTruncationMarker(on bool) Option { return func(p *Projector) { p.markLabels = on } }

// New returns a Projector configured by opts.
func New(opts ...Option) *Projector {
	p := &Projector{maxDepth: DefaultMaxDepth, maxNodes: DefaultMaxNodes}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Devices projects devices as IED -> LD -> LN trees.
func (p *Projector) Devices(devices []instance.Device) []Node {
	spent := 0
	return lo.Map(devices, func(d instance.Device, _ int) Node {
		return Node{
			Label: deviceLabel(d),
			Kind:  KindDevice,
			Children: lo.Map(d.LogicalDevices, func(ld instance.LogicalDevice, _ int) Node {
				return Node{
					Label:    logicalDeviceLabel(ld),
					Kind:     KindLogicalDevice,
					Children: p.bindings(ld.Bindings, &spent),
				}
			}),
		}
	})
}

// Bindings projects each binding as an LN node whose children are the
// DOs of its LNodeType. Unresolved bindings are leaves.
func (p *Projector) Bindings(bindings []instance.Binding) []Node {
	spent := 0
	return p.bindings(bindings, &spent)
}

func (p *Projector) bindings(bindings []instance.Binding, spent *int) []Node {
	return lo.Map(bindings, func(b instance.Binding, _ int) Node {
		n := Node{Label: bindingLabel(b), Kind: KindLogicalNode}
		if b.Resolved != nil {
			n.Children = p.newWalk(spent).dataObjects(b.Resolved.Objects)
		}
		return n
	})
}

// Catalogue projects every LNodeType of nodes, in document order.
func (p *Projector) Catalogue(nodes *template.Registry[template.NodeType]) []Node {
	spent := 0
	return lo.Map(nodes.All(), func(nt *template.NodeType, _ int) Node {
		return Node{
			Label:    nodeTypeLabel(nt),
			Kind:     KindNodeType,
			Children: p.newWalk(&spent).dataObjects(nt.Objects),
		}
	})
}

// walk is the state of a single logical node expansion: the types being
// expanded on the current path, its depth, and the expansions spent by
// the whole projection.
type walk struct {
	p              *Projector
	openObjects    map[*template.ObjectType]bool
	openAttributes map[*template.AttributeType]bool
	depth          int
	spent          *int
}

func (p *Projector) newWalk(spent *int) *walk {
	return &walk{
		p:              p,
		openObjects:    map[*template.ObjectType]bool{},
		openAttributes: map[*template.AttributeType]bool{},
		spent:          spent,
	}
}

// enter reports whether a node may be expanded below the current path
// and, if so, spends one expansion.
func (w *walk) enter(open bool) bool {
	if open || w.depth >= w.p.maxDepth || *w.spent >= w.p.maxNodes {
		return false
	}
	*w.spent++
	return true
}

func (w *walk) truncate(n *Node) {
	n.Truncated = true
	if w.p.markLabels {
		n.Label += truncatedSuffix
	}
}

func (w *walk) dataObjects(dos []template.ObjectMember) []Node {
	return lo.Map(dos, func(m template.ObjectMember, _ int) Node {
		return w.object(KindDataObject, m.Name, m.Resolved)
	})
}

// object projects a DO or SDO of type t.
func (w *walk) object(kind Kind, name string, t *template.ObjectType) Node {
	n := Node{Label: objectLabel(kind, name, t), Kind: kind}
	if t == nil {
		return n
	}
	if !w.enter(w.openObjects[t]) {
		w.truncate(&n)
		return n
	}

	w.openObjects[t] = true
	w.depth++
	defer func() {
		delete(w.openObjects, t)
		w.depth--
	}()

	for _, sdo := range t.SubObjects {
		n.Children = append(n.Children, w.object(KindSubDataObject, sdo.Name, sdo.Resolved))
	}
	for _, da := range t.Attributes {
		n.Children = append(n.Children, w.attribute(KindDataAttribute, da))
	}
	return n
}

// attribute projects a DA or BDA.
func (w *walk) attribute(kind Kind, m template.AttributeMember) Node {
	n := Node{Label: attributeLabel(kind, m), Kind: kind}
	switch m.Resolved.Kind() {
	case template.RefEnum:
		n.Children = lo.Map(m.Resolved.Enum().Values, func(v template.EnumValue, _ int) Node {
			return Node{Label: enumValueLabel(v), Kind: KindEnumValue}
		})
		if len(n.Children) == 0 {
			n.Children = nil
		}
	case template.RefAttribute:
		t := m.Resolved.Attribute()
		if !w.enter(w.openAttributes[t]) {
			w.truncate(&n)
			return n
		}
		w.openAttributes[t] = true
		w.depth++
		for _, bda := range t.Members {
			n.Children = append(n.Children, w.attribute(KindBasicDataAttribute, bda))
		}
		delete(w.openAttributes, t)
		w.depth--
	case template.RefNone:
	}
	return n
}
