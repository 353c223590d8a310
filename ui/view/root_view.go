package view

import (
	"image"
	"log/slog"

	"github.com/soocke/autodraw-go/config"
	"github.com/soocke/autodraw-go/domain/session"
	"github.com/soocke/autodraw-go/ui/model"
	"github.com/soocke/autodraw-go/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Handlers are invoked on button presses.
type Handlers struct {
	OnLoad    func()
	OnSelect  func()
	OnReset   func()
	OnPreview func()
	OnDraw    func()
	OnStop    func()
	OnExit    func()
}

// RootView composes the main window and implements the view contracts the
// presenters depend on.
type RootView struct {
	cfg    *config.Config
	logger *slog.Logger
	Dialogs

	// Subviews
	Session SessionStats
	Params  ParamsPanel
	Panes   ImagePanes

	// Widgets
	StateLabel  *TLabelWidget
	ImageLabel  *LabelWidget
	RegionLabel *LabelWidget
	StatsLabel  *LabelWidget

	loadBtn    *ButtonWidget
	selectBtn  *ButtonWidget
	resetBtn   *ButtonWidget
	previewBtn *ButtonWidget
	drawBtn    *TButtonWidget
	stopBtn    *TButtonWidget
}

func NewRootView(cfg *config.Config, logger *slog.Logger) *RootView {
	return &RootView{cfg: cfg, logger: logger}
}

// Build constructs the layout and wires h to the buttons.
func (rv *RootView) Build(h Handlers) {
	if rv == nil {
		return
	}
	// Row 0: session stats, state label
	top := Frame()
	Grid(top, Row(0), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	rv.Session = NewSessionStats(top, 0, 0)
	rv.StateLabel = TLabel(Style(theme.StyleStateLabel), Txt("State: "+session.StateEmpty.String()))
	Grid(rv.StateLabel, In(top), Row(0), Column(3), Sticky("we"), Padx("0.4m"))

	// Row 1: actions
	btnFrame := Frame()
	Grid(btnFrame, Row(1), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
	button := func(col int, label string, cmd func()) *ButtonWidget {
		b := Button(Txt(label), Command(cmd))
		Grid(b, In(btnFrame), Row(0), Column(col), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
		return b
	}
	rv.loadBtn = button(0, "Load Image", h.OnLoad)
	rv.selectBtn = button(1, "Select Region", h.OnSelect)
	rv.resetBtn = button(2, "Reset Region", h.OnReset)
	rv.previewBtn = button(3, "Preview Strokes", h.OnPreview)
	rv.drawBtn = TButton(Style(theme.StylePrimaryButton), Txt("Start Drawing"), Command(h.OnDraw))
	Grid(rv.drawBtn, In(btnFrame), Row(0), Column(4), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	rv.stopBtn = TButton(Style(theme.StyleDangerButton), Txt("Stop ["+rv.stopKey()+"]"), Command(h.OnStop))
	Grid(rv.stopBtn, In(btnFrame), Row(0), Column(5), Sticky("we"), Padx("0.2m"), Pady("0.2m"))
	exitBtn := Button(Txt("Exit"), Command(h.OnExit))
	Grid(exitBtn, In(btnFrame), Row(0), Column(6), Sticky("we"), Padx("0.2m"), Pady("0.2m"))

	// Row 2: parameters and status lines
	form := Frame()
	Grid(form, Row(2), Column(0), Columnspan(4), Sticky("we"), Padx("0.3m"))
	rv.Params = NewParamsPanel(rv.cfg)
	row := rv.Params.Build(form, 0)
	label := func(text string) *LabelWidget {
		l := Label(Txt(text), Anchor("w"))
		Grid(l, In(form), Row(row), Column(0), Columnspan(2), Sticky("w"), Padx("0.4m"), Pady("0.1m"))
		row++
		return l
	}
	rv.ImageLabel = label("Image: <none>")
	rv.RegionLabel = label("Region: <none>")
	rv.StatsLabel = label("")

	// Row 3: original and line-art panes
	rv.Panes = NewImagePanes(3)
	rv.SetControls(session.StateEmpty)
}

func (rv *RootView) stopKey() string {
	if rv.cfg == nil {
		return "SPACE"
	}
	return rv.cfg.StopKey
}

// SetStateLabel updates the state label text.
func (rv *RootView) SetStateLabel(text string) {
	if rv != nil && rv.StateLabel != nil {
		rv.StateLabel.Configure(Txt(text))
	}
}

// SetControls enables the buttons that make sense in st.
func (rv *RootView) SetControls(st session.State) {
	if rv == nil || rv.loadBtn == nil {
		return
	}
	idle := !st.Busy() && st != session.StateSelecting
	hasArt := st == session.StateLoaded || st == session.StateReady
	enable(rv.loadBtn.Window, idle)
	enable(rv.selectBtn.Window, idle)
	enable(rv.resetBtn.Window, idle)
	enable(rv.previewBtn.Window, idle && hasArt)
	enable(rv.drawBtn.Window, st == session.StateReady)
	enable(rv.stopBtn.Window, st == session.StateDrawing)
	if rv.Params != nil {
		rv.Params.SetEditable(idle)
	}
}

func enable(w *Window, on bool) {
	state := "disabled"
	if on {
		state = "normal"
	}
	w.Configure(State(state))
}

// ShowOriginal proxies to the original pane.
func (rv *RootView) ShowOriginal(img image.Image) {
	if rv != nil && rv.Panes != nil {
		rv.Panes.ShowOriginal(img)
	}
}

// ShowLineArt proxies to the line-art pane.
func (rv *RootView) ShowLineArt(img image.Image) {
	if rv != nil && rv.Panes != nil {
		rv.Panes.ShowLineArt(img)
	}
}

func (rv *RootView) SetImageLabel(text string)  { setText(rv.ImageLabel, text) }
func (rv *RootView) SetRegionLabel(text string) { setText(rv.RegionLabel, text) }
func (rv *RootView) SetStats(text string)       { setText(rv.StatsLabel, text) }

func setText(l *LabelWidget, text string) {
	if l != nil {
		l.Configure(Txt(text))
	}
}

// SetSession updates the pass timing and counters.
func (rv *RootView) SetSession(st model.SessionStats) {
	if rv == nil || rv.Session == nil {
		return
	}
	rv.Session.SetSession(st)
}

// HideMain withdraws the main window while the region overlay is open.
func (rv *RootView) HideMain() { WmWithdraw(App) }

// ShowMain brings the main window back.
func (rv *RootView) ShowMain() { WmDeiconify(App) }
