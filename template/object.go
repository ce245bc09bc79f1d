package template

import (
	"github.com/andaru/scl/xmlutil"
	"github.com/golang/glog"
	"github.com/samber/lo"
)

// BuildObjectTypes builds the DOType registry from the
// DataTypeTemplates element dtt, which may be nil.
//
// DAs are resolved against attrs and enums as they are read. SDOs are
// linked after the registry is complete, as pointers into it; cyclic
// SDO structures are kept as they are.
func BuildObjectTypes(dtt xmlutil.Element, attrs *Registry[AttributeType], enums *Registry[EnumType]) *Registry[ObjectType] {
	var types []*ObjectType
	if dtt != nil {
		types = lo.Map(dtt.Children("DOType"), func(el xmlutil.Element, _ int) *ObjectType {
			t := &ObjectType{
				ID:         el.Attr("id"),
				CDC:        el.Attr("cdc"),
				Attributes: lo.Map(el.Children("DA"), readAttributeMember),
				SubObjects: lo.Map(el.Children("SDO"), func(sdo xmlutil.Element, _ int) SubObjectMember {
					return SubObjectMember{Name: sdo.Attr("name"), TypeID: sdo.Attr("type")}
				}),
			}
			for i := range t.Attributes {
				resolveAttribute(&t.Attributes[i], attrs, enums)
			}
			return t
		})
	}
	reg := newRegistry(types, func(t *ObjectType) string { return t.ID })

	for _, t := range reg.All() {
		for i := range t.SubObjects {
			if sdo := &t.SubObjects[i]; sdo.TypeID != "" {
				sdo.Resolved, _ = reg.Get(sdo.TypeID)
			}
		}
	}
	glog.V(1).Infof("built %d DOType", len(types))
	return reg
}
