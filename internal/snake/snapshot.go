package snake

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick    uint64
	Variant string
	Status  Status
	Score   int
	Length  int
	HeadX   int
	HeadY   int
	TailX   int
	TailY   int
	Dir     Direction
	FoodX   int
	FoodY   int
	SpeedMS int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	headX, headY := 0, 0
	if g.head != nil {
		headX, headY = g.head.X, g.head.Y
	}
	tailX, tailY := 0, 0
	if g.tail != nil {
		tailX, tailY = g.tail.X, g.tail.Y
	}

	return Snapshot{
		Tick:    g.tick,
		Variant: string(g.variant),
		Status:  g.status,
		Score:   g.score,
		Length:  g.length,
		HeadX:   headX,
		HeadY:   headY,
		TailX:   tailX,
		TailY:   tailY,
		Dir:     g.direction,
		FoodX:   g.food.X,
		FoodY:   g.food.Y,
		SpeedMS: g.speedMS,
	}
}

// nodeCount walks the body list from tail to head. Used by tests to verify
// the length counter never drifts from the actual chain.
func (g *Game) nodeCount() int {
	count := 0
	for n := g.tail; n != nil; n = n.Next {
		count++
	}
	return count
}
