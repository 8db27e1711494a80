package game

import "github.com/gdamore/tcell/v2"

var (
	stylePlayer  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleShot    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleInvader = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleWreck   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)
