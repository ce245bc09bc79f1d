package tree

import (
	"strings"

	"github.com/andaru/scl/instance"
	"github.com/andaru/scl/template"
)

func deviceLabel(d instance.Device) string { return "IED: " + d.Name }

func logicalDeviceLabel(ld instance.LogicalDevice) string { return "LD: " + ld.Inst }

func bindingLabel(b instance.Binding) string {
	return "LN: " + b.Name() + " (" + b.TypeID + ")"
}

func nodeTypeLabel(nt *template.NodeType) string {
	return nt.Class + " (" + nt.ID + ")"
}

// objectLabel labels a DO or SDO, with the common data class when its
// type resolved.
func objectLabel(kind Kind, name string, t *template.ObjectType) string {
	s := kind.String() + ": " + name
	if t != nil {
		s += " (" + t.CDC + ")"
	}
	return s
}

// attributeLabel labels a DA or BDA by name and basic type, followed by
// the functional constraint in brackets when there is one.
func attributeLabel(kind Kind, m template.AttributeMember) string {
	var b strings.Builder
	b.WriteString(kind.String())
	b.WriteString(": ")
	b.WriteString(m.Name)
	if m.BasicType != "" {
		b.WriteString(" ")
		b.WriteString(m.BasicType)
	}
	if m.FunctionalConstraint != "" {
		b.WriteString(" [")
		b.WriteString(m.FunctionalConstraint)
		b.WriteString("]")
	}
	return b.String()
}

func enumValueLabel(v template.EnumValue) string { return KindEnumValue.String() + ": " + v.Name }

const truncatedSuffix = " (truncated)"
