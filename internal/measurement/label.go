package measurement

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// LabelState selects the border of a label
type LabelState int

const (
	LabelNormal LabelState = iota
	LabelHovered
	LabelSelected
)

var labelBackground = rl.NewColor(20, 20, 20, 220)

// Label is a boxed text tag drawn in screen space
type Label struct {
	Text       string
	ScreenPos  rl.Vector2 // center of the text
	BaseColor  rl.Color
	HoverColor rl.Color
	State      LabelState
}

func (l *Label) style() (rl.Color, float32) {
	switch l.State {
	case LabelSelected:
		return rl.Yellow, 3
	case LabelHovered:
		return l.HoverColor, 2.5
	default:
		return l.BaseColor, 2
	}
}

// Draw renders the label and returns its bounding rectangle
func (l *Label) Draw(font rl.Font, fontSize, padding float32) rl.Rectangle {
	color, border := l.style()
	size := rl.MeasureTextEx(font, l.Text, fontSize, 1)
	origin := rl.Vector2{X: l.ScreenPos.X - size.X/2, Y: l.ScreenPos.Y - size.Y/2}

	rect := rl.Rectangle{
		X:      origin.X - padding,
		Y:      origin.Y - padding,
		Width:  size.X + 2*padding,
		Height: size.Y + 2*padding,
	}
	rl.DrawRectangleRec(rect, labelBackground)
	rl.DrawRectangleLinesEx(rect, border, color)
	rl.DrawTextEx(font, l.Text, origin, fontSize, 1, color)
	return rect
}
