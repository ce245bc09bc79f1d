package template

import (
	"github.com/andaru/scl/xmlutil"
	"github.com/golang/glog"
	"github.com/samber/lo"
)

// BuildEnumTypes builds the EnumType registry from the
// DataTypeTemplates element dtt, which may be nil.
func BuildEnumTypes(dtt xmlutil.Element) *Registry[EnumType] {
	var types []*EnumType
	if dtt != nil {
		types = lo.Map(dtt.Children("EnumType"), func(el xmlutil.Element, _ int) *EnumType {
			return &EnumType{
				ID:     el.Attr("id"),
				Values: lo.Map(el.Children("EnumVal"), readEnumValue),
			}
		})
	}
	glog.V(1).Infof("built %d EnumType", len(types))
	return newRegistry(types, func(t *EnumType) string { return t.ID })
}

func readEnumValue(el xmlutil.Element, _ int) EnumValue {
	return EnumValue{
		Name:        el.Text(),
		Description: el.Attr("desc"),
		Ord:         el.Attr("ord"),
	}
}
