package instance

import (
	"fmt"

	"github.com/andaru/scl/sclerr"
	"github.com/andaru/scl/template"
	"github.com/andaru/scl/xmlutil"
	"github.com/golang/glog"
	"github.com/samber/lo"
)

// Binding is a logical node instance paired with its LNodeType.
type Binding struct {
	Device  string
	LDevice string
	Prefix  string
	Class   string
	Inst    string
	// TypeID is the declared lnType.
	TypeID string
	// Resolved is nil when TypeID names no LNodeType.
	Resolved *template.NodeType
}

// Name returns the logical node name: prefix, class and instance.
func (b Binding) Name() string { return b.Prefix + b.Class + b.Inst }

// LogicalDevice is an LDevice and its bound logical nodes, LN0
// included, in document order.
type LogicalDevice struct {
	Inst     string
	Bindings []Binding
}

// Device is an IED and its logical devices.
type Device struct {
	Name           string
	LogicalDevices []LogicalDevice
}

// Bind binds every IED under root against nodes, in document order.
func Bind(root xmlutil.Element, nodes *template.Registry[template.NodeType]) []Device {
	if root == nil {
		return nil
	}
	return lo.Map(root.Descendants("IED"), func(ied xmlutil.Element, _ int) Device {
		return BindDevice(ied, nodes)
	})
}

// BindDevice binds the logical nodes of a single IED element.
func BindDevice(ied xmlutil.Element, nodes *template.Registry[template.NodeType]) Device {
	d := Device{Name: ied.Attr("name")}
	d.LogicalDevices = lo.Map(ied.Descendants("LDevice"), func(ld xmlutil.Element, _ int) LogicalDevice {
		l := LogicalDevice{Inst: ld.Attr("inst")}
		l.Bindings = lo.Map(ld.Children("LN0", "LN"), func(ln xmlutil.Element, _ int) Binding {
			b := Binding{
				Device:  d.Name,
				LDevice: l.Inst,
				Prefix:  ln.Attr("prefix"),
				Class:   ln.Attr("lnClass"),
				Inst:    ln.Attr("inst"),
				TypeID:  ln.Attr("lnType"),
			}
			if b.TypeID != "" {
				b.Resolved, _ = nodes.Get(b.TypeID)
			}
			return b
		})
		return l
	})
	glog.V(1).Infof("bound IED %q: %d logical nodes", d.Name, len(d.Bindings()))
	return d
}

// Bindings returns the device's bindings across all logical devices.
func (d Device) Bindings() []Binding {
	return lo.FlatMap(d.LogicalDevices, func(ld LogicalDevice, _ int) []Binding { return ld.Bindings })
}

// Flatten returns the bindings of all devices in document order.
func Flatten(devices []Device) []Binding {
	return lo.FlatMap(devices, func(d Device, _ int) []Binding { return d.Bindings() })
}

// Unresolved returns a diagnostic for every binding whose lnType names
// no LNodeType. Bindings without an lnType are not reported.
func Unresolved(devices []Device) []*sclerr.Error {
	return lo.FilterMap(Flatten(devices), func(b Binding, _ int) (*sclerr.Error, bool) {
		if b.TypeID == "" || b.Resolved != nil {
			return nil, false
		}
		return sclerr.UnresolvedReference(sclerr.RegistryNode, b.TypeID,
			sclerr.WithElement("LN"),
			sclerr.WithPath(fmt.Sprintf("IED[%s]/LDevice[%s]/LN[%s]", b.Device, b.LDevice, b.Name()))), true
	})
}
