package app

import (
	"fmt"
	"log/slog"
	"time"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"

	"github.com/soocke/autodraw-go/config"
	"github.com/soocke/autodraw-go/debug"
	"github.com/soocke/autodraw-go/domain/action"
	"github.com/soocke/autodraw-go/ui/theme"
	"github.com/soocke/autodraw-go/ui/view"
)

const (
	tick = 50 * time.Millisecond
)

type app struct {
	config  *config.Config
	logger  *slog.Logger
	c       *AppContainer
	afterID string
	closing bool
}

func NewApp(title string, width, height int, cfg *config.Config, logger *slog.Logger) *app {
	a := &app{config: cfg, logger: logger}
	a.c = BuildContainer(cfg, logger)
	a.c.Loop.Schedule = a.scheduleUpdate

	App.WmTitle(title)
	WmProtocol(App, "WM_DELETE_WINDOW", a.exitHandler)
	WmGeometry(App, fmt.Sprintf("%dx%d+100+100", width, height))
	return a
}

// Start builds the window, starts the tick loop and blocks in the Tk event loop.
func (a *app) Start() {
	theme.InitStyles()
	c := a.c
	c.RootView.Build(view.Handlers{
		OnLoad:    func() { _ = c.ImagePresenter.Open(view.PickImage()) },
		OnSelect:  func() { _ = c.RegionPresenter.Begin() },
		OnReset:   func() { _ = c.RegionPresenter.Reset() },
		OnPreview: func() { _ = c.DrawPresenter.Preview() },
		OnDraw:    func() { _ = c.DrawPresenter.Start() },
		OnStop:    c.DrawPresenter.Stop,
		OnExit:    a.exitHandler,
	})
	// Fallback for when the main window has focus; the watcher covers the rest.
	Bind(App, "<KeyPress-"+action.Keysym(a.config.StopKey)+">", Command(c.DrawPresenter.Stop))

	if a.config.Debug {
		debug.StartRuntimeLogger(5*time.Second, a.logger)
	}
	a.logger.Info("autodraw started",
		"stop_key", a.config.StopKey,
		"trace", a.config.Trace,
		"order", a.config.Order,
	)
	a.scheduleUpdate()
	App.Wait()
}

func (a *app) exitHandler() {
	if a.closing {
		return
	}
	a.closing = true
	if a.afterID != "" {
		TclAfterCancel(a.afterID)
		a.afterID = ""
	}
	// Unwind a running pass so the button is released before exit.
	a.c.DrawPresenter.Stop()
	a.c.FSM.Close()
	Destroy(App)
}

func (a *app) scheduleUpdate() {
	if a.closing {
		return
	}
	// TclAfter keeps every widget update on Tk's event loop thread.
	a.afterID = TclAfter(tick, a.c.Loop.Tick)
}
