package app

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Bold(true)
	styleDim     = tcell.StyleDefault.Dim(true)
	styleMatch   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleInput   = tcell.StyleDefault.Reverse(true)
)

func (a *App) draw() {
	a.screen.Clear()
	width, height := a.screen.Size()

	a.drawText(0, 0, styleHeader, "hotbind key tester  ("+a.cfg.Platform.String()+")")
	a.drawText(0, 1, styleDim, a.status)

	row := 3
	a.drawText(0, row, styleDefault, "last key: "+a.lastEvent)
	row++
	if a.lastMatch != "" {
		a.drawText(0, row, styleMatch, "matched:  "+a.lastMatch)
	} else if a.lastEvent != "" {
		a.drawText(0, row, styleDim, "matched:  (none)")
	}
	row += 2

	fieldStyle := styleDim
	if a.inputMode {
		fieldStyle = styleInput
	}
	field := "text field: " + string(a.inputText)
	if a.inputMode {
		field += "_"
	}
	a.drawText(0, row, fieldStyle, runewidth.FillRight(field, width))
	row += 2

	if a.showSheet {
		for _, line := range CheatsheetLines(a.registry.Shortcuts(), a.cfg.Platform) {
			if row >= height {
				break
			}
			a.drawText(0, row, styleDefault, line)
			row++
		}
	}

	a.screen.Show()
}

func (a *App) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		a.screen.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
}
