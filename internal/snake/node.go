package snake

// Node is a single snake segment on the board.
// Nodes are chained from tail toward head: Next points at the segment one
// step closer to the head. That orientation makes both ends O(1): a new
// head is linked onto the front, the tail is popped off the back.
type Node struct {
	X, Y int
	Next *Node
}

// arenaSlabNodes is how many nodes each arena slab holds.
const arenaSlabNodes = 256

// nodeArena is a slab allocator for snake segments. Nodes are carved from
// fixed-size slabs with a bump index and there is no per-node free; reset
// reclaims everything wholesale when a game starts over. Steady-state
// movement never touches the arena since the tail node is relinked as the
// new head, so allocation only happens when the snake grows.
type nodeArena struct {
	slabs [][]Node
	used  int // nodes used in the current (last) slab
}

func newNodeArena() *nodeArena {
	return &nodeArena{
		slabs: [][]Node{make([]Node, arenaSlabNodes)},
	}
}

// alloc carves a zeroed node from the arena, growing by one slab when the
// current slab is exhausted.
func (a *nodeArena) alloc() *Node {
	if a.used == arenaSlabNodes {
		a.slabs = append(a.slabs, make([]Node, arenaSlabNodes))
		a.used = 0
	}
	slab := a.slabs[len(a.slabs)-1]
	n := &slab[a.used]
	a.used++
	*n = Node{}
	return n
}

// reset reclaims all nodes at once. The first slab is kept for reuse;
// slabs grown during a long game are released.
func (a *nodeArena) reset() {
	a.slabs = a.slabs[:1]
	a.used = 0
}

// allocated returns the number of live nodes carved since the last reset.
func (a *nodeArena) allocated() int {
	return (len(a.slabs)-1)*arenaSlabNodes + a.used
}
