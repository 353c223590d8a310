package view

import (
	"fmt"
	"time"

	"github.com/soocke/autodraw-go/ui/model"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// SessionStats shows the current pass, the total drawing time and the pass counters.
type SessionStats interface {
	SetSession(st model.SessionStats)
}

type sessionStats struct {
	passLbl  *LabelWidget
	totalLbl *LabelWidget
	countLbl *LabelWidget
}

// NewSessionStats places the pass label at (row, startCol) of parent and the
// total and counter labels next to it.
func NewSessionStats(parent *FrameWidget, row, startCol int) SessionStats {
	s := &sessionStats{passLbl: Label(Width(18)), totalLbl: Label(Width(14)), countLbl: Label(Width(20))}
	Grid(s.passLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
	Grid(s.totalLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	Grid(s.countLbl, In(parent), Row(row), Column(startCol+2), Sticky("w"), Padx("0.2m"))
	s.SetSession(model.SessionStats{})
	return s
}

func (s *sessionStats) SetSession(st model.SessionStats) {
	if s == nil || s.passLbl == nil {
		return
	}
	pass := "Drawing: " + clock(st.Pass)
	if st.Stopping {
		pass = "Stopping: " + clock(st.Pass)
	}
	s.passLbl.Configure(Txt(pass))
	s.totalLbl.Configure(Txt("Total: " + clock(st.Total)))
	s.countLbl.Configure(Txt(fmt.Sprintf("Passes: %d (%d stopped)", st.Passes, st.Stopped)))
}

// clock formats d as mm:ss.
func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
