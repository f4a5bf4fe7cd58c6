package smppcodec

/*
priority.go implements the error-ranking discipline (spec §4.4): a
numeric score over a nested TypeMismatch tree, used by Union to choose
the most informative branch failure, plus a Flatten helper (named in
spec §9) for human-readable diagnostics.
*/

// Priority computes the ranking score for tm per spec §4.4: deeper
// nesting outranks shallower, and at equal depth a composite/list/union
// leaf outranks a scalar leaf, which outranks a constant leaf.
func Priority(tm *TypeMismatch) int {
	return priorityAt(tm, 1)
}

func priorityAt(tm *TypeMismatch, depth int) int {
	if nested, ok := tm.Detail.(*TypeMismatch); ok {
		return priorityAt(nested, depth+1)
	}

	switch tm.Descriptor.(type) {
	case IntDesc, CStringDesc, OctetStringDesc:
		return 3*depth + 1
	case UnionDesc, ListDesc, CompositeDesc:
		return 3*depth + 2
	default: // ConstDesc, or anything unrecognized
		return 3*depth + 0
	}
}

// Flatten walks tm from root to its ranked leaf, returning the chain
// in that order. Callers use this to render "which field, how deep"
// diagnostics without re-implementing the Detail-chasing walk.
func Flatten(tm *TypeMismatch) []*TypeMismatch {
	var path []*TypeMismatch
	cur := tm
	for cur != nil {
		path = append(path, cur)
		nested, ok := cur.Detail.(*TypeMismatch)
		if !ok {
			break
		}
		cur = nested
	}
	return path
}
