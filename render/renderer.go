// Package render draws snapshots to a tcell screen. It consumes only
// the immutable per-tick snapshot; it never touches live simulation
// state.
package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/soramame/chordfall/component"
	"github.com/soramame/chordfall/constant"
	"github.com/soramame/chordfall/core"
	"github.com/soramame/chordfall/engine"
)

// hudRows is the number of terminal rows reserved below the field.
const hudRows = 7

var enemyGlyphs = map[component.EnemyType]rune{
	component.EnemySlime:   's',
	component.EnemyBat:     'b',
	component.EnemyWolf:    'w',
	component.EnemyGolem:   'G',
	component.EnemySpecter: 'S',
	component.EnemyDragon:  'D',
}

// Renderer scales world coordinates onto the terminal grid.
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer wraps an initialized screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders one snapshot.
func (r *Renderer) Draw(snap engine.Snapshot) {
	r.screen.Clear()
	w, h := r.screen.Size()
	fieldH := h - hudRows
	if fieldH < 1 || w < 10 {
		r.screen.Show()
		return
	}

	toCell := func(x, y float32) (int, int) {
		cx := int(x / constant.MapWidth * float32(w-1))
		cy := int(y / constant.MapHeight * float32(fieldH-1))
		return cx, cy
	}

	plain := tcell.StyleDefault
	for _, c := range snap.Coins {
		x, y := toCell(c.Pos[0], c.Pos[1])
		r.screen.SetContent(x, y, 'o', nil, plain.Foreground(tcell.ColorYellow))
	}
	for _, it := range snap.Items {
		x, y := toCell(it.Pos[0], it.Pos[1])
		r.screen.SetContent(x, y, '+', nil, plain.Foreground(tcell.ColorGreen))
	}
	for _, p := range snap.Projectiles {
		x, y := toCell(p.Pos[0], p.Pos[1])
		r.screen.SetContent(x, y, '*', nil, plain.Foreground(tcell.ColorAqua))
	}
	for _, p := range snap.EnemyProjectiles {
		x, y := toCell(p.Pos[0], p.Pos[1])
		r.screen.SetContent(x, y, 'x', nil, plain.Foreground(tcell.ColorRed))
	}
	for _, l := range snap.Lightnings {
		x, y := toCell(l.Pos[0], l.Pos[1])
		r.screen.SetContent(x, y, '!', nil, plain.Foreground(tcell.ColorWhite))
	}
	for _, sw := range snap.Shockwaves {
		x, y := toCell(sw.Pos[0], sw.Pos[1])
		r.screen.SetContent(x, y, ')', nil, plain.Foreground(tcell.ColorSilver))
	}
	for _, e := range snap.Enemies {
		x, y := toCell(e.Pos[0], e.Pos[1])
		style := plain.Foreground(tcell.ColorRed)
		if e.Boss {
			style = style.Bold(true)
		}
		r.screen.SetContent(x, y, enemyGlyphs[e.Type], nil, style)
	}
	for _, d := range snap.DamageTexts {
		x, y := toCell(d.Pos[0], d.Pos[1])
		r.drawText(x, y, fmt.Sprintf("%d", d.Amount), plain.Foreground(tcell.ColorOrange))
	}

	px, py := toCell(snap.Player.Pos[0], snap.Player.Pos[1])
	r.screen.SetContent(px, py, '@', nil, plain.Foreground(tcell.ColorLime).Bold(true))

	r.drawHUD(snap, w, fieldH)

	if snap.Selection != nil {
		r.drawSelection(snap.Selection, w, fieldH)
	}
	if snap.Over {
		msg := fmt.Sprintf(" GAME OVER: %s  wave %d, level %d ",
			snap.OverReason, snap.Wave.Number, snap.Player.Level)
		r.drawText((w-len(msg))/2, fieldH/2, msg,
			plain.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkRed).Bold(true))
	}

	r.screen.Show()
}

func (r *Renderer) drawHUD(snap engine.Snapshot, w, top int) {
	plain := tcell.StyleDefault
	p := snap.Player

	line1 := fmt.Sprintf("HP %d/%d  Lv %d  XP %d  Wave %d  Kills %d/%d  Time %2.0fs",
		p.Stats.Health, p.Stats.MaxHealth, p.Level, p.Experience,
		snap.Wave.Number, snap.Wave.Kills, snap.Wave.Quota,
		snap.Wave.TimeLeft().Seconds())
	r.drawText(0, top, line1, plain)

	if len(p.Effects) > 0 {
		names := make([]string, 0, len(p.Effects))
		for _, e := range p.Effects {
			names = append(names, e.Kind.String())
		}
		r.drawText(0, top+1, "FX: "+strings.Join(names, " "), plain.Foreground(tcell.ColorTeal))
	}

	for lane := core.LaneA; lane < core.LaneCount; lane++ {
		v := snap.Slots[lane]
		y := top + 2 + int(lane)

		switch {
		case !v.Enabled:
			r.drawText(0, y, fmt.Sprintf("%s --", lane), plain.Foreground(tcell.ColorGray))
		case v.OnCooldown:
			r.drawText(0, y, fmt.Sprintf("%s [cooldown]", lane), plain.Foreground(tcell.ColorGray))
		default:
			style := plain
			if v.Hinted {
				style = style.Bold(true)
			}
			r.drawText(0, y, fmt.Sprintf("%s %-8s %s next:%-8s %s",
				lane, v.Current, bar(v.ProgressFrac, 8), v.Next, bar(v.TimerFrac, 10)), style)
		}
	}
}

func (r *Renderer) drawSelection(sel *engine.SelectionView, w, fieldH int) {
	plain := tcell.StyleDefault.Background(tcell.ColorDarkBlue).Foreground(tcell.ColorWhite)
	y := fieldH/2 - len(sel.Options)/2 - 1
	r.drawText(4, y, fmt.Sprintf(" LEVEL UP (%d pending)  play a chord %s ",
		sel.Pending, bar(sel.TimerFrac, 10)), plain.Bold(true))
	for i, opt := range sel.Options {
		r.drawText(4, y+1+i, fmt.Sprintf(" %-22s %-8s %s ",
			opt.Name, opt.Chord, bar(opt.Progress, 6)), plain)
	}
}

func (r *Renderer) drawText(x, y int, s string, style tcell.Style) {
	for i, ch := range s {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

// bar renders a fraction as a fixed-width meter.
func bar(frac float64, width int) string {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(width))
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}
