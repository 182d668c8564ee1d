package vm

import "git.sr.ht/~mango/func/object"

// scope is one level of variable bindings.  Lookups and assignments walk the
// parent chain; declarations only touch the scope itself.
type scope struct {
	vars   map[string]object.Object
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{
		vars:   make(map[string]object.Object),
		parent: parent,
	}
}

func (s *scope) declare(name string, v object.Object) {
	s.vars[name] = v
}

func (s *scope) get(name string) (object.Object, bool) {
	for ; s != nil; s = s.parent {
		if v, ok := s.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// assign rebinds name in the nearest scope that declares it.
func (s *scope) assign(name string, v object.Object) bool {
	for ; s != nil; s = s.parent {
		if _, ok := s.vars[name]; ok {
			s.vars[name] = v
			return true
		}
	}
	return false
}
