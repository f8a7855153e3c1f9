// Package gfx plays the game in a window through ebiten.
package gfx

import (
	"fmt"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

const (
	DefaultCellSize = 32
	hudHeight       = 20
)

var (
	background = color.RGBA{20, 12, 28, 255}
	palette    = map[world.Kind]color.RGBA{
		world.KindFloor:     {52, 40, 60, 255},
		world.KindExit:      {90, 200, 120, 255},
		world.KindFood:      {240, 200, 80, 255},
		world.KindOuterWall: {110, 100, 120, 255},
		world.KindInnerWall: {150, 110, 70, 255},
		world.KindEnemy:     {210, 60, 60, 255},
		world.KindPlayer:    {120, 170, 250, 255},
	}
)

// Color returns the fill color of a kind.
func Color(k world.Kind) color.RGBA {
	return palette[k]
}

// Window is an ebiten.Game. Update pushes key presses into the queue; Draw
// paints the latest presented snapshot. Present may be called from the tick
// loop goroutine while ebiten runs on the main goroutine.
type Window struct {
	queue *input.Queue
	log   *zap.Logger
	cell  int

	snap     atomic.Pointer[world.Snapshot]
	done     chan struct{}
	stopOnce sync.Once
}

// New creates a window drawing cellSize pixel cells.
func New(q *input.Queue, cellSize int, log *zap.Logger) *Window {
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	w := &Window{queue: q, log: log, cell: cellSize, done: make(chan struct{})}
	w.snap.Store(&world.Snapshot{})
	return w
}

// KeyIntent maps a key to an intent. Same bindings as the terminal.
func KeyIntent(k ebiten.Key) input.Intent {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyK:
		return input.MoveUp
	case ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyJ:
		return input.MoveDown
	case ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyH:
		return input.MoveLeft
	case ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyL:
		return input.MoveRight
	case ebiten.KeySpace, ebiten.KeyF, ebiten.KeyEnter:
		return input.Attack
	case ebiten.KeyR:
		return input.Restart
	case ebiten.KeyQ, ebiten.KeyEscape:
		return input.Exit
	}
	return input.None
}

// Present stores snap for the next Draw.
func (w *Window) Present(snap world.Snapshot) {
	w.snap.Store(&snap)
}

// Stop makes the next Update end the ebiten loop.
func (w *Window) Stop() {
	w.stopOnce.Do(func() { close(w.done) })
}

// Run opens the window and blocks until it closes. It must be called from
// the main goroutine. The queue is closed on return.
func (w *Window) Run(title string) error {
	defer w.queue.Close()

	width, height := w.Size(*w.snap.Load())
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	w.log.Debug("window closed")
	return nil
}

func (w *Window) Update() error {
	select {
	case <-w.done:
		return ebiten.Termination
	default:
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if intent := KeyIntent(k); intent != input.None {
			w.queue.Push(intent)
		}
	}
	return nil
}

func (w *Window) Draw(screen *ebiten.Image) {
	snap := w.snap.Load()
	screen.Fill(background)

	switch snap.Screen {
	case world.ScreenStart:
		ebitenutil.DebugPrint(screen, "Scavenger\n\nPress a move or attack key to start, Q to quit.")
		return
	case world.ScreenExit:
		return
	}

	cell := float32(w.cell)
	for _, se := range snap.Entities {
		x := float32(se.Position.X+1) * cell
		y := float32(se.Position.Y+1)*cell + hudHeight
		switch se.Kind {
		case world.KindFood:
			vector.DrawFilledCircle(screen, x+cell/2, y+cell/2, cell/4, Color(se.Kind), false)
		case world.KindEnemy, world.KindPlayer:
			vector.DrawFilledRect(screen, x+cell/8, y+cell/8, cell*3/4, cell*3/4, Color(se.Kind), false)
		default:
			vector.DrawFilledRect(screen, x, y, cell, cell, Color(se.Kind), false)
		}
	}

	status := fmt.Sprintf("Food: %d  HP: %d/%d  Turn %d",
		snap.FoodPoints, snap.PlayerHealth.Current, snap.PlayerHealth.Max, snap.Turn)
	if snap.Screen == world.ScreenGameOver {
		status += "  " + gameOverText(snap.Outcome)
	}
	ebitenutil.DebugPrint(screen, status)
}

func gameOverText(o world.Outcome) string {
	if o == world.OutcomeEscaped {
		return "Escaped! R to play again."
	}
	return "You died. R to restart."
}

// Size returns the window size needed for snap's board plus the wall ring
// and status line.
func (w *Window) Size(snap world.Snapshot) (int, int) {
	width, height := snap.Width, snap.Height
	if width == 0 || height == 0 {
		width, height = 8, 8
	}
	return (width + 2) * w.cell, (height+2)*w.cell + hudHeight
}

func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.Size(*w.snap.Load())
}
