package maze

// FindPath returns a shortest path from from to to, inclusive of both ends.
// It returns nil when to cannot be reached, and a single-node path when
// from == to. Neighbours are expanded in the order above, left, right, below,
// so among equal-length paths the one whose first differing step comes
// earliest in that order wins. Only passable nodes are expanded; from itself is
// always the root of the search. Bookkeeping is local to the call.
func FindPath(from, to *Node) []*Node {
	if from == nil || to == nil {
		return nil
	}
	if from == to {
		return []*Node{from}
	}

	prev := map[*Node]*Node{from: nil}
	queue := []*Node{from}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur == to {
			return backtrack(prev, to)
		}

		for _, n := range cur.neighbours {
			if !n.Passable {
				continue
			}
			if _, seen := prev[n]; seen {
				continue
			}
			prev[n] = cur
			queue = append(queue, n)
		}
	}

	return nil
}

func backtrack(prev map[*Node]*Node, to *Node) []*Node {
	var path []*Node
	for n := to; n != nil; n = prev[n] {
		path = append(path, n)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
