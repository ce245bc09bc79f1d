package template

import (
	"github.com/andaru/scl/xmlutil"
	"github.com/golang/glog"
	"github.com/samber/lo"
)

// BuildNodeTypes builds the LNodeType registry from the
// DataTypeTemplates element dtt, which may be nil, resolving each DO
// against objects.
func BuildNodeTypes(dtt xmlutil.Element, objects *Registry[ObjectType]) *Registry[NodeType] {
	var types []*NodeType
	if dtt != nil {
		types = lo.Map(dtt.Children("LNodeType"), func(el xmlutil.Element, _ int) *NodeType {
			return &NodeType{
				ID:     el.Attr("id"),
				Prefix: el.Attr("prefix"),
				Class:  el.Attr("lnClass"),
				Inst:   el.Attr("inst"),
				Objects: lo.Map(el.Children("DO"), func(do xmlutil.Element, _ int) ObjectMember {
					m := ObjectMember{Name: do.Attr("name"), TypeID: do.Attr("type")}
					if m.TypeID != "" {
						m.Resolved, _ = objects.Get(m.TypeID)
					}
					return m
				}),
			}
		})
	}
	glog.V(1).Infof("built %d LNodeType", len(types))
	return newRegistry(types, func(t *NodeType) string { return t.ID })
}
