package vg

// LineCap specifies the shape of line endpoints.
type LineCap uint8

const (
	// LineCapButt specifies a flat line cap.
	LineCapButt LineCap = iota
	// LineCapRound specifies a rounded line cap.
	LineCapRound
	// LineCapSquare specifies a square line cap.
	LineCapSquare
)

// LineJoin specifies the shape of line joins.
type LineJoin uint8

const (
	// LineJoinMiter specifies a sharp (mitered) join.
	LineJoinMiter LineJoin = iota
	// LineJoinRound specifies a rounded join.
	LineJoinRound
	// LineJoinBevel specifies a beveled join.
	LineJoinBevel
)

// CanvasState is the plain style record a canvas carries and snapshots
// on Save. Value semantics: copies share nothing but the Pattern
// reference.
type CanvasState struct {
	CompositeOp CompositeOp
	BlendMode   BlendMode
	LineCap     LineCap
	LineJoin    LineJoin
	LineWidth   float64
	MiterLimit  float64
	Pattern     Pattern
}

// DefaultCanvasState returns the style a fresh canvas starts with.
func DefaultCanvasState() CanvasState {
	return CanvasState{
		CompositeOp: CompositeSrcOver,
		BlendMode:   BlendNormal,
		LineCap:     LineCapButt,
		LineJoin:    LineJoinMiter,
		LineWidth:   1.0,
		MiterLimit:  10.0,
		Pattern:     NewSolidPattern(Black),
	}
}

// Canvas is the drawing-surface contract rasterizer backends implement.
// The style accessors and path building are provided by CanvasBase;
// Stroke and Fill are the backend's concern.
type Canvas interface {
	// State returns the live style record.
	State() *CanvasState

	// Save pushes a copy of the live state onto the LIFO stack.
	Save()

	// Restore pops the most recent saved state into the live state.
	// A no-op when the stack is empty.
	Restore()

	// Path building, delegated to an internally held Path.
	MoveTo(pt Vec)
	LineTo(pt Vec)
	QuadTo(ctrl, target Vec)
	CubicTo(ctrl1, ctrl2, target Vec)
	ClosePath()

	// Path returns the canvas's path.
	Path() *Path

	// Stroke scan-converts the path outline with the live style.
	Stroke()

	// Fill scan-converts the path interior with the live style.
	Fill()
}

// CanvasBase carries the live state, the save/restore stack, and the
// path; embed it in a rasterizer backend and add Stroke and Fill to
// satisfy Canvas.
//
// The zero value is ready to use except for the style record, which
// starts zeroed; NewCanvasBase seeds it with DefaultCanvasState.
type CanvasBase struct {
	state CanvasState
	stack []CanvasState
	path  Path
}

// NewCanvasBase creates a canvas base with the default style.
func NewCanvasBase() *CanvasBase {
	return &CanvasBase{state: DefaultCanvasState()}
}

// State returns the live style record.
func (c *CanvasBase) State() *CanvasState {
	return &c.state
}

// Save pushes a copy of the live state onto the stack.
func (c *CanvasBase) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recent saved state and replaces the live state.
// A no-op when the stack is empty.
func (c *CanvasBase) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Depth returns the number of saved states on the stack.
func (c *CanvasBase) Depth() int {
	return len(c.stack)
}

// MoveTo starts a new subpath at pt.
func (c *CanvasBase) MoveTo(pt Vec) {
	c.path.MoveTo(pt)
}

// LineTo appends a line segment to pt.
func (c *CanvasBase) LineTo(pt Vec) {
	c.path.LineTo(pt)
}

// QuadTo appends a flattened quadratic Bézier curve.
func (c *CanvasBase) QuadTo(ctrl, target Vec) {
	c.path.QuadTo(ctrl, target)
}

// CubicTo appends a flattened cubic Bézier curve.
func (c *CanvasBase) CubicTo(ctrl1, ctrl2, target Vec) {
	c.path.CubicTo(ctrl1, ctrl2, target)
}

// ClosePath closes the current subpath.
func (c *CanvasBase) ClosePath() {
	c.path.ClosePath()
}

// Path returns the canvas's path.
func (c *CanvasBase) Path() *Path {
	return &c.path
}

// SetPattern sets the fill/stroke pattern.
func (c *CanvasBase) SetPattern(p Pattern) {
	c.state.Pattern = p
}

// SetColor sets a solid fill/stroke color.
func (c *CanvasBase) SetColor(col Color) {
	c.state.Pattern = NewSolidPattern(col)
}

// SetLineWidth sets the stroke width.
func (c *CanvasBase) SetLineWidth(w float64) {
	c.state.LineWidth = w
}

// SetCompositeOp sets the Porter-Duff operator used when painting.
func (c *CanvasBase) SetCompositeOp(op CompositeOp) {
	c.state.CompositeOp = op
}

// SetBlendMode sets the blend mode used when painting.
func (c *CanvasBase) SetBlendMode(m BlendMode) {
	c.state.BlendMode = m
}
