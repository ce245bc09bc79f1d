package template

import (
	"github.com/andaru/scl/xmlutil"
	"github.com/golang/glog"
	"github.com/samber/lo"
)

// BuildAttributeTypes builds the DAType registry from the
// DataTypeTemplates element dtt, which may be nil, linking each BDA to
// its DAType or to an EnumType from enums.
func BuildAttributeTypes(dtt xmlutil.Element, enums *Registry[EnumType]) *Registry[AttributeType] {
	var types []*AttributeType
	if dtt != nil {
		types = lo.Map(dtt.Children("DAType"), func(el xmlutil.Element, _ int) *AttributeType {
			return &AttributeType{
				ID:                   el.Attr("id"),
				FunctionalConstraint: el.Attr("fc"),
				Members:              lo.Map(el.Children("BDA"), readAttributeMember),
			}
		})
	}
	reg := newRegistry(types, func(t *AttributeType) string { return t.ID })

	// DATypes may reference any DAType, themselves included, so links
	// are made only once the registry is complete.
	for _, t := range reg.All() {
		for i := range t.Members {
			resolveAttribute(&t.Members[i], reg, enums)
		}
	}
	glog.V(1).Infof("built %d DAType", len(types))
	return reg
}

// readAttributeMember reads a DA or BDA element.
func readAttributeMember(el xmlutil.Element, _ int) AttributeMember {
	m := AttributeMember{
		Name:                 el.Attr("name"),
		BasicType:            el.Attr("bType"),
		ValueKind:            el.Attr("valKind"),
		FunctionalConstraint: el.Attr("fc"),
		TypeID:               el.Attr("type"),
		Value:                el.Attr("val"),
	}
	if val := el.Child("Val"); val != nil {
		m.Value = val.Text()
	}
	return m
}

// resolveAttribute links m by its basic type: Enum attributes against
// enums, everything else against attrs. Unknown ids leave m unresolved.
func resolveAttribute(m *AttributeMember, attrs *Registry[AttributeType], enums *Registry[EnumType]) {
	if m.TypeID == "" {
		return
	}
	if m.BasicType == BasicTypeEnum {
		if t, ok := enums.Get(m.TypeID); ok {
			m.Resolved = EnumTypeRef(t)
		}
		return
	}
	if t, ok := attrs.Get(m.TypeID); ok {
		m.Resolved = AttributeTypeRef(t)
	}
}
