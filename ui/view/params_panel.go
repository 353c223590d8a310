package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/soocke/autodraw-go/config"
	"github.com/soocke/autodraw-go/domain/stroke"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ParamsPanel holds the draw parameter fields. Values are read once per pass.
type ParamsPanel interface {
	Build(parent *FrameWidget, startRow int) (endRow int)
	SetEditable(enabled bool)
	Params() stroke.Params
}

type paramsPanel struct {
	defaults  stroke.Params
	speed     *TextWidget
	precision *TextWidget
}

// NewParamsPanel seeds the fields from the speed and precision in cfg.
func NewParamsPanel(cfg *config.Config) ParamsPanel {
	return &paramsPanel{defaults: stroke.ParamsFromConfig(cfg)}
}

func (v *paramsPanel) Build(parent *FrameWidget, startRow int) (row int) {
	row = startRow
	makeRow := func(label, value string) *TextWidget {
		lbl := Label(Txt(label), Anchor("w"))
		Grid(lbl, In(parent), Row(row), Column(0), Sticky("w"), Padx("0.4m"), Pady("0.15m"))
		w := Text(Height(1), Width(16))
		Grid(w, In(parent), Row(row), Column(1), Sticky("we"), Padx("0.4m"), Pady("0.15m"))
		w.Delete("1.0", END)
		w.Insert("1.0", value)
		row++
		return w
	}
	v.speed = makeRow(fmt.Sprintf("Speed (%.1f-%.0f)", config.MinSpeed, config.MaxSpeed), strconv.FormatFloat(v.defaults.Speed, 'f', -1, 64))
	v.precision = makeRow(fmt.Sprintf("Precision (%d-%d, higher skips more points)", config.MinPrecision, config.MaxPrecision), strconv.Itoa(v.defaults.Precision))
	return row
}

func (v *paramsPanel) SetEditable(enabled bool) {
	state := "disabled"
	if enabled {
		state = "normal"
	}
	for _, w := range []*TextWidget{v.speed, v.precision} {
		if w != nil {
			w.Configure(State(state))
		}
	}
}

// Params parses the fields, falling back to the configured values.
func (v *paramsPanel) Params() stroke.Params {
	return stroke.ParseParams(text(v.speed), text(v.precision), v.defaults)
}

func text(w *TextWidget) string {
	if w == nil {
		return ""
	}
	return strings.TrimSpace(strings.Join(w.Get("1.0", END), ""))
}
