// Package term plays the game in a terminal through tcell.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/plus3/scavenger/internal/input"
	"github.com/plus3/scavenger/internal/world"
)

// board origin on screen; row 0 holds the status line
const (
	originX = 1
	originY = 2
)

type glyph struct {
	r     rune
	style tcell.Style
}

var glyphs = map[world.Kind]glyph{
	world.KindFloor:     {'.', tcell.StyleDefault.Foreground(tcell.ColorDarkGray)},
	world.KindExit:      {'>', tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)},
	world.KindFood:      {'%', tcell.StyleDefault.Foreground(tcell.ColorYellow)},
	world.KindOuterWall: {'█', tcell.StyleDefault.Foreground(tcell.ColorGray)},
	world.KindInnerWall: {'#', tcell.StyleDefault.Foreground(tcell.ColorOlive)},
	world.KindEnemy:     {'E', tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)},
	world.KindPlayer:    {'@', tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)},
}

// Screen draws snapshots and turns key presses into intents.
type Screen struct {
	screen tcell.Screen
	log    *zap.Logger
}

// New initializes the terminal.
func New(log *zap.Logger) (*Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create terminal screen: %w", err)
	}
	return NewWithScreen(screen, log)
}

// NewWithScreen wraps an existing tcell screen, such as a simulation screen.
func NewWithScreen(screen tcell.Screen, log *zap.Logger) (*Screen, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal screen: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return &Screen{screen: screen, log: log}, nil
}

// Close restores the terminal. A running Produce returns afterwards.
func (s *Screen) Close() {
	s.screen.Fini()
}

// KeyIntent maps a key press to an intent: arrows, WASD or hjkl move; space
// or f attacks; r restarts; q, Escape or Ctrl-C exits.
func KeyIntent(ev *tcell.EventKey) input.Intent {
	switch ev.Key() {
	case tcell.KeyUp:
		return input.MoveUp
	case tcell.KeyDown:
		return input.MoveDown
	case tcell.KeyLeft:
		return input.MoveLeft
	case tcell.KeyRight:
		return input.MoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.Exit
	case tcell.KeyEnter:
		return input.Attack
	case tcell.KeyRune:
	default:
		return input.None
	}

	switch ev.Rune() {
	case 'w', 'k':
		return input.MoveUp
	case 's', 'j':
		return input.MoveDown
	case 'a', 'h':
		return input.MoveLeft
	case 'd', 'l':
		return input.MoveRight
	case ' ', 'f':
		return input.Attack
	case 'r':
		return input.Restart
	case 'q':
		return input.Exit
	}
	return input.None
}

// Produce reads terminal events into q until the screen is closed, then
// closes q. Run it on its own goroutine.
func (s *Screen) Produce(q *input.Queue) {
	defer q.Close()
	for {
		switch ev := s.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventKey:
			if intent := KeyIntent(ev); intent != input.None {
				q.Push(intent)
			}
		case *tcell.EventResize:
			w, h := ev.Size()
			s.log.Debug("terminal resized", zap.Int("width", w), zap.Int("height", h))
			s.screen.Sync()
		}
	}
}

// Present draws snap and flushes the terminal.
func (s *Screen) Present(snap world.Snapshot) {
	s.screen.Clear()

	switch snap.Screen {
	case world.ScreenStart:
		s.text(0, 0, "Scavenger", tcell.StyleDefault.Bold(true))
		s.text(0, 2, "Press any move or attack key to start, q to quit.", tcell.StyleDefault)
		s.screen.Show()
		return
	case world.ScreenExit:
		s.screen.Show()
		return
	}

	status := fmt.Sprintf("Food: %d  HP: %d/%d  Day %d  Turn %d",
		snap.FoodPoints, snap.PlayerHealth.Current, snap.PlayerHealth.Max, snap.Level, snap.Turn)
	s.text(0, 0, status, tcell.StyleDefault)

	// entities arrive sorted by draw layer, later ones paint over
	for _, se := range snap.Entities {
		g, ok := glyphs[se.Kind]
		if !ok {
			continue
		}
		s.screen.SetContent(originX+se.Position.X, originY+se.Position.Y, g.r, nil, g.style)
	}

	if snap.Screen == world.ScreenGameOver {
		msg := "You died after %d turns. Press r to restart."
		if snap.Outcome == world.OutcomeEscaped {
			msg = "You escaped after %d turns. Press r to play again."
		}
		s.text(0, originY+snap.Height+2, fmt.Sprintf(msg, snap.Turn), tcell.StyleDefault.Bold(true))
	}
	s.screen.Show()
}

func (s *Screen) text(x, y int, str string, style tcell.Style) {
	for i, r := range []rune(str) {
		s.screen.SetContent(x+i, y, r, nil, style)
	}
}
