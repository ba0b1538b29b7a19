package styledecl

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	tp "github.com/xlab/treeprint"
)

// Dump renders a style declaration as a tree, for debugging. Directional
// composites become branches with their four edges as leaves; plain
// scalar properties become nodes. Every property is shown with its
// current (possibly initial) value; explicitly stored values are marked
// with '*'.
func Dump(s *Style) string {
	printer := tp.New()
	isEdge := make(map[string]bool)
	for _, name := range s.props.dirNames {
		d := s.props.directional[name]
		branch := printer.AddBranch(hyphenate(name))
		for _, edge := range d.edges {
			branch.AddNode(dumpNode(s, edge))
			isEdge[edge] = true
		}
	}
	for _, name := range s.props.declared {
		if !isEdge[name] {
			printer.AddNode(dumpNode(s, name))
		}
	}
	return printer.String()
}

func dumpNode(s *Style, name string) string {
	slot := s.props.slots[name]
	mark := ""
	if _, ok := s.values[name]; ok {
		mark = " *"
	}
	return fmt.Sprintf("%s: %v%s", hyphenate(name), s.getSlot(slot), mark)
}
