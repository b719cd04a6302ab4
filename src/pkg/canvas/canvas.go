// Package canvas implements the graphical interaction surface: an
// Ebitengine window that draws the scene as boxes and connector lines
// and turns key presses into session commands. The key map follows the
// original editor: Tab adds a child, Enter adds a sibling, the arrow
// keys navigate, Ctrl+Up/Down reorder siblings, Delete removes the
// active subtree, and typing edits the active node's text.
package canvas

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"

	"mindflow/src/pkg/model"
	"mindflow/src/pkg/session"
)

const (
	boxPaddingX = 12
	boxPaddingY = 6
)

var (
	backgroundColor = color.RGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xFF}
	boxFillColor    = color.RGBA{R: 0x2D, G: 0x2D, B: 0x2D, A: 0xFF}
	boxBorderColor  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	activeColor     = color.RGBA{R: 0x00, G: 0x78, B: 0xD4, A: 0xFF}
	lineColor       = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	textColor       = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// nodeTween animates one node from its displayed position to its
// layout target.
type nodeTween struct {
	x, y *gween.Tween
}

// Editor is the ebiten.Game driving the mind map window.
type Editor struct {
	session *session.Session
	cfg     model.CanvasConfig
	face    *text.GoTextFace

	scene     []model.SceneNode
	displayed map[int]model.Point
	tweens    map[int]*nodeTween
	runes     []rune

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewEditor creates the graphical editor over the given session.
func NewEditor(sess *session.Session, cfg model.CanvasConfig) (*Editor, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	e := &Editor{
		session:   sess,
		cfg:       cfg,
		face:      &text.GoTextFace{Source: source, Size: cfg.FontSize},
		displayed: make(map[int]model.Point),
		tweens:    make(map[int]*nodeTween),
		stopCh:    make(chan struct{}),
	}
	e.scene = sess.Controller.RenderScene()
	for _, node := range e.scene {
		e.displayed[node.ID] = node.Pos
	}
	return e, nil
}

// Run opens the window and blocks until the editor is closed.
func (e *Editor) Run() error {
	ebiten.SetWindowSize(e.cfg.Width, e.cfg.Height)
	ebiten.SetWindowTitle("Mindflow")
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("canvas terminated: %w", err)
	}
	return nil
}

// Stop requests the editor to terminate. The next Update returns
// ebiten.Termination, which closes the window through the normal game
// loop teardown. Safe to call from another goroutine and more than once.
func (e *Editor) Stop() {
	e.stopOnce.Do(func() { close(e.stopCh) })
}

// Update handles input and advances position tweens. It implements
// ebiten.Game.
func (e *Editor) Update() error {
	select {
	case <-e.stopCh:
		return ebiten.Termination
	default:
	}

	if err := e.handleInput(); err != nil {
		return err
	}

	for id, tw := range e.tweens {
		x, doneX := tw.x.Update(1)
		y, doneY := tw.y.Update(1)
		e.displayed[id] = model.Point{X: float64(x), Y: float64(y)}
		if doneX && doneY {
			delete(e.tweens, id)
		}
	}
	return nil
}

// handleInput maps key presses to session commands.
func (e *Editor) handleInput() error {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		return e.dispatch("node", "child")
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		return e.dispatch("node", "sibling")
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		return e.dispatch("node", "delete")
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		return e.dispatch("nav", "parent")
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		return e.dispatch("nav", "first")
	case inpututil.IsKeyJustPressed(ebiten.KeyUp) && ctrl:
		return e.dispatch("node", "up")
	case inpututil.IsKeyJustPressed(ebiten.KeyDown) && ctrl:
		return e.dispatch("node", "down")
	case inpututil.IsKeyJustPressed(ebiten.KeyUp):
		return e.dispatch("nav", "prev")
	case inpututil.IsKeyJustPressed(ebiten.KeyDown):
		return e.dispatch("nav", "next")
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		return e.editActiveText(func(s string) string {
			r := []rune(s)
			if len(r) == 0 {
				return s
			}
			return string(r[:len(r)-1])
		})
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	}

	e.runes = ebiten.AppendInputChars(e.runes[:0])
	if len(e.runes) > 0 {
		typed := string(e.runes)
		return e.editActiveText(func(s string) string { return s + typed })
	}
	return nil
}

// editActiveText applies an edit function to the active node's text.
func (e *Editor) editActiveText(edit func(string) string) error {
	for _, node := range e.scene {
		if node.Active {
			return e.dispatch("node", "text", "--id", fmt.Sprint(node.ID), edit(node.Text))
		}
	}
	return nil
}

// dispatch runs a command through the session and refreshes the scene,
// starting tweens toward any moved positions.
func (e *Editor) dispatch(scope, operation string, args ...string) error {
	_, err := e.session.CommandRun(model.Command{Scope: scope, Operation: operation, Args: args})
	if err != nil {
		if errors.Is(err, session.ErrExit) {
			return ebiten.Termination
		}
		// Structural refusals (deleting the root, reordering past a
		// boundary) leave the tree unchanged; the frontend just keeps
		// drawing.
		return nil
	}
	e.refreshScene()
	return nil
}

// refreshScene re-reads the scene and retargets tweens. New nodes spawn
// at their parent's displayed position and glide to their slot; removed
// nodes disappear immediately.
func (e *Editor) refreshScene() {
	e.scene = e.session.Controller.RenderScene()

	alive := make(map[int]bool, len(e.scene))
	duration := float32(e.cfg.TweenFrames)
	if duration <= 0 {
		duration = 1
	}

	for _, node := range e.scene {
		alive[node.ID] = true
		from, known := e.displayed[node.ID]
		if !known {
			if parent, ok := e.displayed[node.ParentID]; ok {
				from = parent
			} else {
				from = node.Pos
			}
			e.displayed[node.ID] = from
		}
		if from == node.Pos {
			delete(e.tweens, node.ID)
			continue
		}
		e.tweens[node.ID] = &nodeTween{
			x: gween.New(float32(from.X), float32(node.Pos.X), duration, ease.OutQuad),
			y: gween.New(float32(from.Y), float32(node.Pos.Y), duration, ease.OutQuad),
		}
	}

	for id := range e.displayed {
		if !alive[id] {
			delete(e.displayed, id)
			delete(e.tweens, id)
		}
	}
}

// Draw renders connector lines first, then every node as a box with its
// label, the active node with a thick blue border. It implements
// ebiten.Game.
func (e *Editor) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cx := float64(e.cfg.Width) / 2
	cy := float64(e.cfg.Height) / 2

	// Connector lines below the boxes.
	for _, node := range e.scene {
		if node.ParentID == 0 {
			continue
		}
		pos := e.displayed[node.ID]
		parentPos, ok := e.displayed[node.ParentID]
		if !ok {
			continue
		}
		vector.StrokeLine(screen,
			float32(cx+pos.X), float32(cy+pos.Y),
			float32(cx+parentPos.X), float32(cy+parentPos.Y),
			1, lineColor, true)
	}

	for _, node := range e.scene {
		pos := e.displayed[node.ID]
		e.drawNode(screen, node, cx+pos.X, cy+pos.Y)
	}
}

// drawNode draws one node box centered at (x, y).
func (e *Editor) drawNode(screen *ebiten.Image, node model.SceneNode, x, y float64) {
	w, h := text.Measure(node.Text, e.face, e.face.Size*1.2)
	boxW := float32(w) + 2*boxPaddingX
	boxH := float32(h) + 2*boxPaddingY
	left := float32(x) - boxW/2
	top := float32(y) - boxH/2

	vector.DrawFilledRect(screen, left, top, boxW, boxH, boxFillColor, true)
	if node.Active {
		vector.StrokeRect(screen, left, top, boxW, boxH, 2, activeColor, true)
	} else {
		vector.StrokeRect(screen, left, top, boxW, boxH, 1, boxBorderColor, true)
	}

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x-w/2, y-h/2)
	opts.ColorScale.ScaleWithColor(textColor)
	text.Draw(screen, node.Text, e.face, opts)
}

// Layout reports the logical screen size. It implements ebiten.Game.
func (e *Editor) Layout(_, _ int) (int, int) {
	return e.cfg.Width, e.cfg.Height
}
