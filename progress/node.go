package progress

import (
	"sync"
)

// Observer receives the effective value of the node it was registered on.
type Observer func(value float64)

// tree holds the lock shared by every node created from the same root
type tree struct {
	mu sync.Mutex
}

// Node is one unit of work in a progress tree. A leaf carries its own
// value; an internal node reports the mean of its children.
type Node struct {
	tree      *tree
	parent    *Node
	value     float64
	completed bool
	children  []*Node
	observers []Observer
}

// New creates a root node.
func New() *Node {
	return &Node{tree: &tree{}}
}

// AddChild appends a new leaf. It panics if the node is already completed.
func (n *Node) AddChild() *Node {
	n.tree.mu.Lock()
	child := n.addChildLocked()
	notify := n.collectLocked()
	n.tree.mu.Unlock()

	notify.fire()
	return child
}

// AddChildren appends count leaves in one step, so observers never see a
// partially built fan-out.
func (n *Node) AddChildren(count int) []*Node {
	if count <= 0 {
		return nil
	}

	n.tree.mu.Lock()
	children := make([]*Node, count)
	for i := range children {
		children[i] = n.addChildLocked()
	}
	notify := n.collectLocked()
	n.tree.mu.Unlock()

	notify.fire()
	return children
}

func (n *Node) addChildLocked() *Node {
	if n.completed {
		panic("progress: child added to a completed node")
	}
	child := &Node{tree: n.tree, parent: n}
	n.children = append(n.children, child)
	return child
}

// SetValue updates a leaf. Values are clamped to [0,1] and never move
// backwards; a completed leaf ignores the call.
func (n *Node) SetValue(v float64) error {
	n.tree.mu.Lock()
	if len(n.children) > 0 {
		n.tree.mu.Unlock()
		return ErrNotLeaf
	}
	if n.completed {
		n.tree.mu.Unlock()
		return nil
	}

	v = clamp(v)
	if v <= n.value {
		n.tree.mu.Unlock()
		return nil
	}
	n.value = v
	notify := n.collectLocked()
	n.tree.mu.Unlock()

	notify.fire()
	return nil
}

// MarkCompleted pins the node and all of its descendants at 1 and
// prevents further child creation. Completing twice is a no-op.
func (n *Node) MarkCompleted() {
	n.tree.mu.Lock()
	if n.completed {
		n.tree.mu.Unlock()
		return
	}
	watched := n.watchedDescendantsLocked(nil)
	n.completeLocked()

	// Descendants first, then n and its ancestors
	var notify notification
	for _, w := range watched {
		if w.before == 1 {
			continue
		}
		for _, fn := range w.node.observers {
			notify = append(notify, delivery{fn: fn, value: 1})
		}
	}
	notify = append(notify, n.collectLocked()...)
	n.tree.mu.Unlock()

	notify.fire()
}

// watchedNode is an observed descendant and its value before completion
type watchedNode struct {
	node   *Node
	before float64
}

// watchedDescendantsLocked lists the uncompleted descendants of n that have
// observers, deepest first
func (n *Node) watchedDescendantsLocked(out []watchedNode) []watchedNode {
	for _, child := range n.children {
		if child.completed {
			continue
		}
		out = child.watchedDescendantsLocked(out)
		if len(child.observers) > 0 {
			out = append(out, watchedNode{node: child, before: child.valueLocked()})
		}
	}
	return out
}

func (n *Node) completeLocked() {
	n.completed = true
	n.value = 1
	for _, child := range n.children {
		if !child.completed {
			child.completeLocked()
		}
	}
}

// Observe registers fn to be called with this node's effective value
// whenever this node or any descendant changes. Callbacks run on the
// goroutine that made the change.
func (n *Node) Observe(fn Observer) {
	if fn == nil {
		return
	}
	n.tree.mu.Lock()
	n.observers = append(n.observers, fn)
	n.tree.mu.Unlock()
}

// Value returns the effective value of the node.
func (n *Node) Value() float64 {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.valueLocked()
}

// Completed reports whether MarkCompleted was called on this node or an
// ancestor.
func (n *Node) Completed() bool {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return n.completed
}

// Len returns the number of direct children.
func (n *Node) Len() int {
	n.tree.mu.Lock()
	defer n.tree.mu.Unlock()
	return len(n.children)
}

func (n *Node) valueLocked() float64 {
	if n.completed {
		return 1
	}
	if len(n.children) == 0 {
		return n.value
	}
	var sum float64
	for _, child := range n.children {
		sum += child.valueLocked()
	}
	return sum / float64(len(n.children))
}

// CreateChild implements Tracker.
func (n *Node) CreateChild() Tracker {
	return n.AddChild()
}

// CreateChildren implements Tracker.
func (n *Node) CreateChildren(count int) []Tracker {
	nodes := n.AddChildren(count)
	trackers := make([]Tracker, len(nodes))
	for i, node := range nodes {
		trackers[i] = node
	}
	return trackers
}

type delivery struct {
	fn    Observer
	value float64
}

type notification []delivery

func (d notification) fire() {
	for _, item := range d {
		item.fn(item.value)
	}
}

// collectLocked snapshots the observers of n and its ancestors together with
// the values they must receive. Callbacks are invoked after the lock is
// released so an observer may read the tree.
func (n *Node) collectLocked() notification {
	var out notification
	for node := n; node != nil; node = node.parent {
		if len(node.observers) == 0 {
			continue
		}
		value := node.valueLocked()
		for _, fn := range node.observers {
			out = append(out, delivery{fn: fn, value: value})
		}
	}
	return out
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
