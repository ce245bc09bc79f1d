package template

import (
	"fmt"

	"github.com/andaru/scl/sclerr"
	"github.com/andaru/scl/xmlutil"
	"github.com/golang/glog"
)

// Templates is the linked content of a DataTypeTemplates section.
type Templates struct {
	Enums      *Registry[EnumType]
	Attributes *Registry[AttributeType]
	Objects    *Registry[ObjectType]
	Nodes      *Registry[NodeType]

	unresolved []*sclerr.Error
}

// Build builds and links all four registries from the
// DataTypeTemplates element dtt. A nil dtt yields empty registries.
func Build(dtt xmlutil.Element) *Templates {
	t := &Templates{}
	t.Enums = BuildEnumTypes(dtt)
	t.Attributes = BuildAttributeTypes(dtt, t.Enums)
	t.Objects = BuildObjectTypes(dtt, t.Attributes, t.Enums)
	t.Nodes = BuildNodeTypes(dtt, t.Objects)
	t.unresolved = unresolved(t)
	for _, e := range t.unresolved {
		glog.V(2).Info(e)
	}
	return t
}

// Unresolved returns a diagnostic for every member whose type reference
// did not resolve, in document order: DATypes, then DOTypes, then
// LNodeTypes. The slice must not be modified.
func (t *Templates) Unresolved() []*sclerr.Error { return t.unresolved }

func unresolved(t *Templates) (errs []*sclerr.Error) {
	attribute := func(owner string, elem string, m AttributeMember) {
		if m.TypeID == "" || m.Resolved.Kind() != RefNone {
			return
		}
		reg := sclerr.RegistryAttribute
		if m.BasicType == BasicTypeEnum {
			reg = sclerr.RegistryEnum
		}
		errs = append(errs, sclerr.UnresolvedReference(reg, m.TypeID,
			sclerr.WithElement(elem), sclerr.WithPath(path(owner, elem, m.Name))))
	}
	object := func(owner string, elem string, name, ref string, resolved *ObjectType) {
		if ref == "" || resolved != nil {
			return
		}
		errs = append(errs, sclerr.UnresolvedReference(sclerr.RegistryObject, ref,
			sclerr.WithElement(elem), sclerr.WithPath(path(owner, elem, name))))
	}

	for _, at := range t.Attributes.All() {
		owner := fmt.Sprintf("DAType[%s]", at.ID)
		for _, m := range at.Members {
			attribute(owner, "BDA", m)
		}
	}
	for _, ot := range t.Objects.All() {
		owner := fmt.Sprintf("DOType[%s]", ot.ID)
		for _, m := range ot.SubObjects {
			object(owner, "SDO", m.Name, m.TypeID, m.Resolved)
		}
		for _, m := range ot.Attributes {
			attribute(owner, "DA", m)
		}
	}
	for _, nt := range t.Nodes.All() {
		owner := fmt.Sprintf("LNodeType[%s]", nt.ID)
		for _, m := range nt.Objects {
			object(owner, "DO", m.Name, m.TypeID, m.Resolved)
		}
	}
	return errs
}

func path(owner, elem, name string) string {
	return fmt.Sprintf("%s/%s[%s]", owner, elem, name)
}
