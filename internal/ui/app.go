package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"warehouse-crawler/assets"
	"warehouse-crawler/internal/engine"
	"warehouse-crawler/internal/render"
)

// App owns the terminal screen and drives a session from keyboard input.
type App struct {
	screen   tcell.Screen
	renderer *render.Renderer
	session  *engine.Session
	messages []string
}

// New creates an App with the screen initialized and a fresh session.
func New(seed int64) (*App, error) {
	session, err := engine.NewSession(seed)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	return &App{
		screen:   screen,
		renderer: render.NewRenderer(screen),
		session:  session,
		messages: []string{fmt.Sprintf("Clock in. Find the Promotion Amulet on floor %d and get out.", assets.FinalFloor)},
	}, nil
}

// Run is the blocking input loop. It returns when the player quits or the
// run ends.
func (a *App) Run() {
	defer a.screen.Fini()
	a.renderer.DrawFrame(a.session.CurrentView(), a.messages)

	for {
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
			a.renderer.Resize()
		case *tcell.EventKey:
			action := keyToAction(ev)
			if action == ActionQuit {
				return
			}
			if done := a.handle(action); done {
				return
			}
		}
		a.renderer.DrawFrame(a.session.CurrentView(), a.messages)
	}
}

// handle submits one action as a turn. Returns true when the run has ended
// and the end screen has been shown.
func (a *App) handle(action Action) bool {
	intent, ok := actionToIntent(action)
	if !ok {
		return false
	}

	res, err := a.session.Submit(intent)
	if err != nil {
		if engine.IsUserInputError(err) {
			a.push(err.Error())
			return false
		}
		// Generation failures are not recoverable from the keyboard.
		a.push(fmt.Sprintf("fatal: %v", err))
		return false
	}

	for _, e := range res.Events {
		a.push(e.Text)
	}
	if res.State != engine.StatePlaying {
		a.renderer.DrawFrame(a.session.CurrentView(), a.messages)
		a.endScreen(res.State)
		return true
	}
	return false
}

func (a *App) push(msg string) {
	a.messages = append(a.messages, msg)
	if len(a.messages) > 50 {
		a.messages = a.messages[len(a.messages)-50:]
	}
}

// endScreen holds the final frame until a key is pressed.
func (a *App) endScreen(state engine.GameState) {
	text := "TERMINATED. press any key"
	if state == engine.StateVictory {
		text = "PROMOTED! you escaped with the amulet. press any key"
	}
	w, h := a.screen.Size()
	style := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	col := (w - len(text)) / 2
	if col < 0 {
		col = 0
	}
	for i, ch := range text {
		a.screen.SetContent(col+i, h/2, ch, nil, style)
	}
	a.screen.Show()

	for {
		ev := a.screen.PollEvent()
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
		if ev == nil {
			return
		}
	}
}
