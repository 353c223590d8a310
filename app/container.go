package app

import (
	"log/slog"
	"time"

	"github.com/soocke/autodraw-go/config"
	"github.com/soocke/autodraw-go/domain/action"
	"github.com/soocke/autodraw-go/domain/lineart"
	"github.com/soocke/autodraw-go/domain/session"
	"github.com/soocke/autodraw-go/domain/stroke"
	"github.com/soocke/autodraw-go/ui/model"
	"github.com/soocke/autodraw-go/ui/presenter"
	"github.com/soocke/autodraw-go/ui/theme"
	"github.com/soocke/autodraw-go/ui/view"
)

// AppContainer assembles models, services, presenters and the root view.
type AppContainer struct {
	Config *config.Config
	Logger *slog.Logger

	// Models
	Images  *model.ImageModel
	Region  *model.RegionModel
	Session *model.SessionModel

	// Services
	FSM       session.Contract
	Worker    *presenter.Worker
	RunState  *stroke.RunState
	Extractor *lineart.Extractor
	Planner   *stroke.Planner
	Executor  *stroke.Executor

	// View
	RootView *view.RootView
	Overlay  *view.RegionOverlay

	// Presenters
	ImagePresenter   *presenter.ImagePresenter
	RegionPresenter  *presenter.RegionPresenter
	DrawPresenter    *presenter.DrawPresenter
	SessionPresenter *presenter.SessionPresenter
	FSMPresenter     *presenter.FSMPresenter
	StopWatcher      *presenter.StopWatcher
	Loop             *presenter.Loop
}

// paramsFunc adapts a function to presenter.ParamsSource.
type paramsFunc func() stroke.Params

func (f paramsFunc) Params() stroke.Params { return f() }

// BuildContainer constructs all components. No widgets are created here;
// the root view is built by the app once Tk is ready.
func BuildContainer(cfg *config.Config, logger *slog.Logger) *AppContainer {
	c := &AppContainer{Config: cfg, Logger: logger}
	c.Images = model.NewImageModel()
	c.Region = model.NewRegionModel()
	c.Session = model.NewSessionModel()

	fsm := session.NewFSM(logger)
	c.FSM = fsm
	c.Worker = presenter.NewWorker(logger)
	c.RunState = &stroke.RunState{}
	c.Extractor = lineart.NewExtractor(cfg, logger)
	c.Planner = stroke.NewPlanner(cfg, logger)
	c.Executor = stroke.NewExecutor(action.NewMouse(), c.RunState, cfg, logger)

	c.RootView = view.NewRootView(cfg, logger)
	c.Overlay = view.NewRegionOverlay(time.Duration(cfg.PreviewTTLMs)*time.Millisecond, cfg.PreviewColor, logger)

	c.ImagePresenter = presenter.NewImagePresenter(c.Images, fsm, c.RootView, c.RootView, c.Worker, c.Extractor, logger)
	c.ImagePresenter.LineColor = theme.ColorInk
	c.RegionPresenter = presenter.NewRegionPresenter(c.Region, c.Images, fsm, c.RootView, c.Overlay, c.RootView, c.Worker, logger)
	c.RegionPresenter.LineColor = theme.ColorInk
	c.DrawPresenter = presenter.NewDrawPresenter(presenter.DrawDeps{
		Images:   c.Images,
		Region:   c.Region,
		FSM:      fsm,
		View:     c.RootView,
		Notify:   c.RootView,
		Params:   paramsFunc(c.drawParams),
		Planner:  c.Planner,
		Executor: c.Executor,
		State:    c.RunState,
		Worker:   c.Worker,
		Screen:   action.ScreenSize,
		Logger:   logger,
	})
	c.DrawPresenter.PreviewColor = cfg.PreviewColor
	c.SessionPresenter = presenter.NewSessionPresenter(c.Session, c.RunState, c.RootView)
	c.FSMPresenter = presenter.NewFSMPresenter(c.RootView)
	c.StopWatcher = presenter.NewStopWatcher(cfg.StopKey, c.DrawPresenter.Stop, nil, logger)

	fsm.AddListener(c.FSMPresenter.OnState)
	fsm.AddListener(c.StopWatcher.OnState)
	fsm.AddListener(func(prev, next session.State) {
		logger.Debug("session transition", "from", prev.String(), "to", next.String())
	})
	c.Loop = presenter.NewLoop(c.SessionPresenter, c.FSMPresenter, c.RegionPresenter, c.Worker, nil)
	return c
}

func (c *AppContainer) drawParams() stroke.Params {
	if c.RootView != nil && c.RootView.Params != nil {
		return c.RootView.Params.Params()
	}
	return stroke.ParamsFromConfig(c.Config)
}

