package xmlutil

import (
	"strings"
	"sync"

	"github.com/antchfx/xpath"
)

// selectors caches compiled expressions by source text. Element names
// used by the builders form a small fixed set.
var selectors sync.Map

func compile(expr string) *xpath.Expr {
	if v, ok := selectors.Load(expr); ok {
		return v.(*xpath.Expr)
	}
	v, _ := selectors.LoadOrStore(expr, xpath.MustCompile(expr))
	return v.(*xpath.Expr)
}

// localNameTest returns a predicate matching any of names, e.g.
// local-name()='LN0' or local-name()='LN'.
func localNameTest(names []string) string {
	tests := make([]string, 0, len(names))
	for _, name := range names {
		tests = append(tests, "local-name()='"+name+"'")
	}
	return strings.Join(tests, " or ")
}

func childSelector(names []string) *xpath.Expr {
	return compile("*[" + localNameTest(names) + "]")
}

func descendantSelector(name string) *xpath.Expr {
	return compile("descendant::*[" + localNameTest([]string{name}) + "]")
}
