// Package snake implements the snake game engine: a linked-list body over a
// fixed occupancy grid, arena-allocated segments, and config-driven pacing.
package snake

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/termsnake/internal/config"
	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/registry"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Status represents the current game status.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusPaused
	StatusGameOver
	StatusExit
)

// Variant represents the game variant.
type Variant string

const (
	VariantClassic Variant = "classic" // border walls are fatal
	VariantWrap    Variant = "wrap"    // no walls, board wraps around
)

// Occupancy grid cell kinds. The grid mirrors the board so collision and
// render checks are O(1) instead of walking the body list.
const (
	cellEmpty byte = iota
	cellWall
	cellSnake
	cellFood
)

// Minimum board the engine will shrink down to before declaring the
// terminal too small.
const (
	minBoardW = 10
	minBoardH = 6
)

// Game implements the snake game for one variant.
type Game struct {
	variant Variant
	cfg     config.SnakeConfig
	rng     *rand.Rand
	tick    uint64

	status Status
	score  int

	// Snake body: singly linked from tail toward head.
	head   *Node
	tail   *Node
	length int
	arena  *nodeArena

	direction Direction
	nextDir   Direction // Buffered direction for next move

	food  core.Point
	board [][]byte // [boardH][boardW] occupancy mirror

	boardW, boardH int
	speedMS        int // current move interval in milliseconds
	moveEveryTicks int
	moveTicker     int // Counts ticks until next move
	tickRate       int

	// Screen placement
	screenW, screenH int
	hudHeight        int
	offsetX, offsetY int
	tooSmall         bool
}

// Package-level variables for config/difficulty, set by the CLI before the
// game is created.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the config file path used when a game loads its config.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on top of the config.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a new classic variant game.
func New() *Game {
	return &Game{variant: VariantClassic, status: StatusMenu}
}

// NewWrap creates a new wrap-around variant game.
func NewWrap() *Game {
	return &Game{variant: VariantWrap, status: StatusMenu}
}

func init() {
	registry.Register("classic", func() registry.Game {
		return New()
	})
	registry.Register("wrap", func() registry.Game {
		return NewWrap()
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantWrap {
		return "Snake (Wrap)"
	}
	return "Snake"
}

// SetConfig overrides the configuration the game would otherwise load.
func (g *Game) SetConfig(cfg config.SnakeConfig) {
	g.cfg = cfg
}

// loadConfig resolves the game configuration from the package-level
// path/preset, falling back to built-in defaults.
func loadConfig() config.SnakeConfig {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, config.DifficultyPreset(difficultyPreset))
	return cfg
}

// Reset initializes/restarts the game.
func (g *Game) Reset(rc core.RuntimeConfig) {
	if g.cfg.Board.Width == 0 {
		g.cfg = loadConfig()
	}

	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tick = 0
	g.score = 0
	g.status = StatusPlaying
	g.speedMS = g.cfg.Speed.InitialMS
	g.moveTicker = 0

	g.tickRate = rc.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.recomputePace()

	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH
	g.hudHeight = 2 // Top HUD lines

	// Fit the board to the screen, shrinking from the configured size.
	maxW := g.screenW
	maxH := g.screenH - g.hudHeight - 1
	g.boardW = core.Min(g.cfg.Board.Width, maxW)
	g.boardH = core.Min(g.cfg.Board.Height, maxH)
	if g.boardW < minBoardW || g.boardH < minBoardH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	// Center the board under the HUD
	g.offsetX = (g.screenW - g.boardW) / 2
	g.offsetY = g.hudHeight

	g.buildBoard()
	g.initSnake()
	g.spawnFood()
}

// buildBoard allocates the occupancy grid and places border walls for the
// classic variant. The wrap variant has an open border.
func (g *Game) buildBoard() {
	g.board = make([][]byte, g.boardH)
	for y := range g.board {
		g.board[y] = make([]byte, g.boardW)
	}

	if g.variant == VariantClassic {
		for x := 0; x < g.boardW; x++ {
			g.board[0][x] = cellWall
			g.board[g.boardH-1][x] = cellWall
		}
		for y := 0; y < g.boardH; y++ {
			g.board[y][0] = cellWall
			g.board[y][g.boardW-1] = cellWall
		}
	}
}

// initSnake lays out the starting snake heading right, head in front.
func (g *Game) initSnake() {
	if g.arena == nil {
		g.arena = newNodeArena()
	}
	g.arena.reset()

	length := g.cfg.Snake.InitialLength
	maxLen := g.boardW - 4
	if length > maxLen {
		length = maxLen
	}

	startX := core.Clamp(g.boardW/4, 1, g.boardW-length-2)
	startY := g.boardH / 2

	// Tail at startX, head at startX+length-1; chain links tail toward head.
	var prev *Node
	for i := 0; i < length; i++ {
		n := g.arena.alloc()
		n.X = startX + i
		n.Y = startY
		if prev != nil {
			prev.Next = n
		} else {
			g.tail = n
		}
		prev = n
		g.board[n.Y][n.X] = cellSnake
	}
	g.head = prev
	g.length = length
	g.direction = DirRight
	g.nextDir = DirRight
}

// spawnFood places food at a random empty cell. The occupancy grid
// guarantees food never lands on the snake or a wall.
func (g *Game) spawnFood() {
	var emptyCells []core.Point
	for y := 0; y < g.boardH; y++ {
		for x := 0; x < g.boardW; x++ {
			if g.board[y][x] == cellEmpty {
				emptyCells = append(emptyCells, core.Point{X: x, Y: y})
			}
		}
	}

	if len(emptyCells) == 0 {
		// Snake fills the board; nothing left to eat.
		g.food = core.Point{X: -1, Y: -1}
		return
	}

	g.food = emptyCells[g.rng.Intn(len(emptyCells))]
	g.board[g.food.Y][g.food.X] = cellFood
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionQuit) {
		g.status = StatusExit
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.status == StatusGameOver {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		switch g.status {
		case StatusPlaying:
			g.status = StatusPaused
		case StatusPaused:
			g.status = StatusPlaying
		}
	}

	if g.status != StatusPlaying || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Process direction input (buffer for next move)
	g.processInput(input)

	// Move snake on tick interval
	g.moveTicker++
	if g.moveTicker >= g.moveEveryTicks {
		g.moveTicker = 0
		g.moveSnake()
	}

	return core.StepResult{State: g.State()}
}

// processInput handles direction changes.
func (g *Game) processInput(input core.InputFrame) {
	newDir := g.nextDir

	switch {
	case input.Has(core.ActionUp):
		newDir = DirUp
	case input.Has(core.ActionDown):
		newDir = DirDown
	case input.Has(core.ActionLeft):
		newDir = DirLeft
	case input.Has(core.ActionRight):
		newDir = DirRight
	}

	// Prevent instant reversal
	if !isOpposite(newDir, g.direction) {
		g.nextDir = newDir
	}
}

// isOpposite checks if two directions are opposite.
func isOpposite(d1, d2 Direction) bool {
	return (d1 == DirUp && d2 == DirDown) ||
		(d1 == DirDown && d2 == DirUp) ||
		(d1 == DirLeft && d2 == DirRight) ||
		(d1 == DirRight && d2 == DirLeft)
}

// moveSnake moves the snake one cell in the current direction.
func (g *Game) moveSnake() {
	if g.head == nil {
		return
	}

	// Apply buffered direction
	g.direction = g.nextDir

	newHead := core.Point{X: g.head.X, Y: g.head.Y}
	switch g.direction {
	case DirUp:
		newHead.Y--
	case DirDown:
		newHead.Y++
	case DirLeft:
		newHead.X--
	case DirRight:
		newHead.X++
	}

	if g.variant == VariantWrap {
		newHead.X = (newHead.X + g.boardW) % g.boardW
		newHead.Y = (newHead.Y + g.boardH) % g.boardH
	} else if newHead.X < 0 || newHead.X >= g.boardW ||
		newHead.Y < 0 || newHead.Y >= g.boardH {
		g.status = StatusGameOver
		return
	}

	ate := g.board[newHead.Y][newHead.X] == cellFood

	switch g.board[newHead.Y][newHead.X] {
	case cellWall:
		g.status = StatusGameOver
		return
	case cellSnake:
		// Moving into the tail cell is legal when not growing: the tail
		// vacates it this same move.
		intoVacatingTail := !ate && g.length > 1 &&
			newHead.X == g.tail.X && newHead.Y == g.tail.Y
		if !intoVacatingTail {
			g.status = StatusGameOver
			return
		}
	}

	if ate {
		g.grow(newHead)
	} else {
		g.advance(newHead)
	}
}

// grow links a freshly allocated head node; the tail stays put.
func (g *Game) grow(newHead core.Point) {
	n := g.arena.alloc()
	n.X, n.Y = newHead.X, newHead.Y
	g.head.Next = n
	g.head = n
	g.length++
	g.board[newHead.Y][newHead.X] = cellSnake

	g.score += g.cfg.Scoring.PerFood
	g.speedMS = core.Max(g.cfg.Speed.MinMS, g.speedMS-g.cfg.Speed.AccelMS)
	g.recomputePace()
	g.spawnFood()
}

// advance performs a plain move: the tail node is unlinked and relinked as
// the new head, so no allocation happens.
func (g *Game) advance(newHead core.Point) {
	n := g.tail
	g.board[n.Y][n.X] = cellEmpty
	if g.length > 1 {
		g.tail = n.Next
		n.Next = nil
		g.head.Next = n
		g.head = n
	}
	n.X, n.Y = newHead.X, newHead.Y
	g.board[newHead.Y][newHead.X] = cellSnake
}

// recomputePace converts the ms-per-move speed into simulation ticks.
func (g *Game) recomputePace() {
	g.moveEveryTicks = core.Max(1, g.speedMS*g.tickRate/1000)
}

// isSnakeAt checks if the snake occupies the given point.
func (g *Game) isSnakeAt(p core.Point) bool {
	if p.X < 0 || p.X >= g.boardW || p.Y < 0 || p.Y >= g.boardH {
		return false
	}
	return g.board[p.Y][p.X] == cellSnake
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)

	switch g.status {
	case StatusGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d — press R to restart", g.score))
	case StatusPaused:
		g.renderOverlay(dst, "Paused", "Space to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s — Score: %d  Speed: %dms  Length: %d",
		g.Title(), g.score, g.speedMS, g.length)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws walls, food and the snake from the occupancy grid.
func (g *Game) renderBoard(dst *core.Screen) {
	glyphs := g.cfg.Glyphs
	colors := g.cfg.Colors

	for y := 0; y < g.boardH; y++ {
		for x := 0; x < g.boardW; x++ {
			sx := g.offsetX + x
			sy := g.offsetY + y
			switch g.board[y][x] {
			case cellWall:
				dst.SetColored(sx, sy, glyphs.WallRune(), colors.WallColor())
			case cellFood:
				dst.SetColored(sx, sy, glyphs.FoodRune(), colors.FoodColor())
			case cellSnake:
				dst.SetColored(sx, sy, glyphs.BodyRune(), colors.BodyColor())
			}
		}
	}

	// Head on top of the body
	if g.head != nil {
		dst.SetColored(g.offsetX+g.head.X, g.offsetY+g.head.Y, glyphs.HeadRune(), colors.HeadColor())
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := core.Max(len(line1), len(line2))
	boxW := maxLen + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.status == StatusGameOver,
		Paused:   g.status == StatusPaused,
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game_over"
	case StatusExit:
		return "exit"
	default:
		return "unknown"
	}
}
