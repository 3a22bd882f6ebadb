package view

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/vizr/internal/dataset"
	"github.com/leapstack-labs/vizr/internal/value"
)

const (
	// treeListPreview is how many list elements are drawn before the
	// truncation marker; elements past it are never rendered.
	treeListPreview = 3
	treeScalarMax   = 50
)

// RenderTree renders each record of a dataset as a branch-drawn hierarchy,
// depth-first. Reserved keys are stripped at the top level. Rendering stops
// the instant maxLines is reached. Records are separated by blank lines when
// there is more than one.
func RenderTree(d *dataset.Dataset, maxLines int) []string {
	var lines []string

	for i, rec := range d.Records {
		if len(lines) >= maxLines {
			break
		}
		last := i == len(d.Records)-1
		renderTreeNode(stripReserved(rec), &lines, "", last, maxLines, "", false)
		if len(d.Records) > 1 && !last && len(lines) < maxLines {
			lines = append(lines, "")
		}
	}
	return lines
}

func stripReserved(rec *value.Value) *value.Value {
	out := value.NewMap()
	for _, e := range rec.Entries() {
		if strings.HasPrefix(e.Key, dataset.ReservedPrefix) {
			continue
		}
		out.Set(e.Key, e.Val)
	}
	return out
}

func renderTreeNode(node *value.Value, lines *[]string, prefix string, isLast bool, maxLines int, key string, hasKey bool) {
	if len(*lines) >= maxLines {
		return
	}

	line := ""
	if hasKey {
		connector := "├─ "
		if isLast {
			connector = "└─ "
		}
		line = prefix + connector + key + ": "
	}

	switch node.Kind() {
	case value.KindMap:
		if hasKey {
			*lines = append(*lines, line)
		}
		childPrefix := prefix
		if hasKey {
			childPrefix = prefix + branchPad(isLast)
		}
		entries := node.Entries()
		for i, e := range entries {
			if len(*lines) >= maxLines {
				break
			}
			renderTreeNode(e.Val, lines, childPrefix, i == len(entries)-1, maxLines, e.Key, true)
		}

	case value.KindList:
		items := node.Items()
		*lines = append(*lines, line+fmt.Sprintf("[%d items]", len(items)))
		childPrefix := prefix + branchPad(isLast)
		limit := len(items)
		if limit > treeListPreview {
			limit = treeListPreview
		}
		for i := 0; i < limit; i++ {
			if len(*lines) >= maxLines {
				break
			}
			lastChild := i == limit-1 && len(items) <= treeListPreview
			renderTreeNode(items[i], lines, childPrefix, lastChild, maxLines, fmt.Sprintf("[%d]", i), true)
		}
		if len(items) > treeListPreview && len(*lines) < maxLines {
			*lines = append(*lines, childPrefix+"└─ ...")
		}

	default:
		*lines = append(*lines, line+clipRunes(node.String(), treeScalarMax))
	}
}

func branchPad(isLast bool) string {
	if isLast {
		return "    "
	}
	return "│   "
}
