package site

import (
	"fmt"
	"path"

	radix "github.com/armon/go-radix"
	"github.com/sunwei/pagegen/common/herrors"
)

// targetTree tracks which output writes which file in the publish dir.
type targetTree struct {
	tree *radix.Tree
}

func newTargetTree() *targetTree {
	return &targetTree{tree: radix.New()}
}

// register claims target for owner. It fails with a TargetConflict if the
// target is already claimed, or if one of the two would have to be a
// directory of the other.
func (t *targetTree) register(target, owner string) error {
	target = path.Clean(target)

	conflict := func(other any) error {
		return herrors.NewFileError(herrors.KindTargetConflict, owner, fmt.Errorf("target %q is also written by %s", target, other))
	}

	if other, found := t.tree.Get(target); found {
		return conflict(other)
	}

	var below any
	t.tree.WalkPrefix(target+"/", func(_ string, v any) bool {
		below = v
		return true
	})
	if below != nil {
		return conflict(below)
	}

	for dir := path.Dir(target); dir != "." && dir != "/"; dir = path.Dir(dir) {
		if other, found := t.tree.Get(dir); found {
			return conflict(other)
		}
	}

	t.tree.Insert(target, owner)

	return nil
}

// Len returns the number of registered targets.
func (t *targetTree) Len() int {
	return t.tree.Len()
}
