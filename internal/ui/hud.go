//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"lights-out/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the board.
type HUD struct {
	puzzle   core.Puzzle
	width    int
	snapshot core.ParameterSnapshot

	controls    []hudControlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
	offsetX     int
}

// NewHUD constructs a HUD for the provided puzzle and panel width.
func NewHUD(puzzle core.Puzzle, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{puzzle: puzzle, width: width}
	if provider, ok := puzzle.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	if setter, ok := puzzle.(core.IntParameterSetter); ok {
		h.intSetter = setter
	}
	if setter, ok := puzzle.(core.FloatParameterSetter); ok {
		h.floatSetter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the parameter snapshot and handles clicks on the panel,
// which starts at offsetX. It reports whether a parameter changed.
func (h *HUD) Update(offsetX int) bool {
	if h == nil || h.width <= 0 {
		return false
	}
	h.offsetX = offsetX
	h.refresh()
	if !h.handleInput() {
		return false
	}
	h.refresh()
	return true
}

func (h *HUD) refresh() {
	provider, ok := h.puzzle.(core.ParameterProvider)
	if !ok {
		h.snapshot = core.ParameterSnapshot{}
		return
	}
	h.snapshot = provider.Parameters()
	for i := range h.controls {
		h.controls[i].load(h.snapshot)
	}
}

// Draw paints the panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || h.width <= 0 || height <= 0 {
		return
	}
	vector.DrawFilledRect(screen, float32(offsetX), 0, float32(h.width), float32(height), panelColor, false)
	face := basicfont.Face7x13
	text.Draw(screen, "Lights Out", face, offsetX+panelPadding, panelPadding+headerBaseline, titleColor)

	for i := range h.controls {
		state := &h.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(screen, state.control.Label, face, offsetX+panelPadding, labelY, labelColor)
		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		valueWidth := text.BoundString(face, state.value).Dx()
		text.Draw(screen, state.value, face, offsetX+state.minusRect.Min.X-buttonGap-valueWidth, labelY, valueColor)
		h.drawButton(screen, state.minusRect.Add(image.Pt(offsetX, 0)), "-", state.hasValue && h.canAdjust(state, -1))
		h.drawButton(screen, state.plusRect.Add(image.Pt(offsetX, 0)), "+", state.hasValue && h.canAdjust(state, 1))
	}

	y := controlsTop + len(h.controls)*lineHeight + statusSpacing
	for _, group := range h.snapshot.Groups {
		for _, param := range group.Params {
			if h.isControl(param.Key) {
				continue
			}
			text.Draw(screen, param.Label+": "+param.Value, face, offsetX+panelPadding, y, mutedColor)
			y += statusLine
		}
	}
	text.Draw(screen, "R replay  N new  Q quit", face, offsetX+panelPadding, height-panelPadding, mutedColor)
}

func (h *HUD) isControl(key string) bool {
	for i := range h.controls {
		if h.controls[i].control.Key == key {
			return true
		}
	}
	return false
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return false
	}
	pt := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		if !state.hasValue {
			continue
		}
		if pt.In(state.minusRect) {
			return h.applyAdjustment(state, -1)
		}
		if pt.In(state.plusRect) {
			return h.applyAdjustment(state, 1)
		}
	}
	return false
}

func (h *HUD) applyAdjustment(state *hudControlState, direction int) bool {
	if !h.canAdjust(state, direction) {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		return h.intSetter.SetIntParameter(state.control.Key, state.intValue+direction*intStep(state.control))
	case core.ParamTypeFloat:
		target := state.floatValue + float64(direction)*floatStep(state.control)
		target = math.Round(target*1000) / 1000
		if state.control.HasMin {
			target = math.Max(target, state.control.Min)
		}
		if state.control.HasMax {
			target = math.Min(target, state.control.Max)
		}
		return h.floatSetter.SetFloatParameter(state.control.Key, target)
	}
	return false
}

func (h *HUD) canAdjust(state *hudControlState, direction int) bool {
	if state == nil || direction == 0 {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return false
		}
		target := float64(state.intValue + direction*intStep(state.control))
		return inBounds(state.control, target)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return false
		}
		if direction < 0 && state.control.HasMin {
			return state.floatValue > state.control.Min+1e-9
		}
		if direction > 0 && state.control.HasMax {
			return state.floatValue < state.control.Max-1e-9
		}
		return true
	default:
		return false
	}
}

func (h *HUD) drawButton(dst *ebiten.Image, rect image.Rectangle, label string, enabled bool) {
	bg, fg := buttonColor, labelColor
	if !enabled {
		bg, fg = buttonDisabledColor, mutedColor
	}
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()), bg, false)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

func (s *hudControlState) load(snap core.ParameterSnapshot) {
	s.hasValue = false
	s.value = "--"
	param, ok := snap.Lookup(s.control.Key)
	if !ok {
		return
	}
	switch s.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		s.intValue = parsed
		s.value = strconv.Itoa(parsed)
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		s.floatValue = parsed
		s.value = strconv.FormatFloat(parsed, 'f', 2, 64)
	default:
		return
	}
	s.hasValue = true
}

func intStep(ctrl core.ParameterControl) int {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	return step
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func inBounds(ctrl core.ParameterControl, v float64) bool {
	if ctrl.HasMin && v < ctrl.Min {
		return false
	}
	if ctrl.HasMax && v > ctrl.Max {
		return false
	}
	return true
}

var (
	panelColor          = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor          = color.RGBA{R: 250, G: 210, B: 90, A: 255}
	labelColor          = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor          = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	buttonColor         = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonDisabledColor = color.RGBA{R: 32, G: 34, B: 40, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 24
	statusLine     = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
