package main

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"sync/atomic"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/mandelzoom"
)

// defaultView matches the classic opening frame: the whole set at 500px,
// depth and intensity 200.
var defaultView = mandel.ViewState{
	Corner:     complex(-2, -2),
	Size:       4,
	Resolution: 500,
	Depth:      200,
	Intensity:  200,
}

// markColor is the border color of the zoom-region box.
var markColor = color.RGBA{R: 225, A: 255}

// session holds the per-connection explorer state: the current view, the
// navigation history and the last rendered frame. Gestures are read and
// handled one at a time, so renders are naturally serialized; gestures
// arriving while a render is in flight queue up on the websocket.
type session struct {
	conn     *websocket.Conn
	renderer mandel.Renderer

	view    mandel.ViewState
	history mandel.History
	frame   *image.RGBA

	// writeMu serializes websocket writes; progress updates are sent
	// from render worker goroutines.
	writeMu sync.Mutex
}

func newSession(conn *websocket.Conn, workers int) *session {
	return &session{
		conn:     conn,
		renderer: mandel.Renderer{Workers: workers},
		view:     defaultView,
	}
}

// run renders the initial view and then serves gestures until the
// connection drops or ctx is cancelled.
func (s *session) run(ctx context.Context) error {
	defer s.conn.Close(websocket.StatusNormalClosure, "session ended")

	if err := s.renderCurrent(ctx); err != nil {
		return err
	}

	for {
		var g mandel.Gesture
		if err := wsjson.Read(ctx, s.conn, &g); err != nil {
			return err
		}
		if err := s.handle(ctx, g); err != nil {
			return err
		}
	}
}

// handle applies one gesture. Rejected gestures (degenerate selections,
// empty history, bad parameters) surface as status or error updates and
// never end the session; the prior view state is retained.
func (s *session) handle(ctx context.Context, g mandel.Gesture) error {
	switch g.Type {
	case mandel.GestureZoom:
		sub, err := s.view.DeriveSubView(image.Pt(g.X0, g.Y0), image.Pt(g.X1, g.Y1))
		if errors.Is(err, mandel.ErrDegenerateSelection) {
			return s.sendStatus(ctx, "selection has no area; ignored")
		}
		if err != nil {
			return s.sendError(ctx, err)
		}
		s.history.Push(s.view)
		s.view = sub
		return s.renderCurrent(ctx)

	case mandel.GestureBack:
		prev, err := s.history.Pop()
		if errors.Is(err, mandel.ErrEmptyHistory) {
			return s.sendStatus(ctx, "cannot go further back in history")
		}
		s.view = prev
		return s.renderCurrent(ctx)

	case mandel.GestureRedraw:
		return s.renderCurrent(ctx)

	case mandel.GestureParams:
		// Panel edits update the view but take effect on the next
		// redraw or zoom, like the original property panel.
		v := s.view
		v.Resolution = g.Resolution
		v.Depth = g.Depth
		v.Intensity = g.Intensity
		if err := v.Validate(); err != nil {
			return s.sendError(ctx, err)
		}
		s.view = v
		return nil

	case mandel.GesturePos:
		label := s.view.CoordinateLabel(image.Pt(g.X, g.Y))
		return s.sendStatus(ctx, "mouse position: "+label)

	case mandel.GestureMark:
		return s.mark(ctx, g)

	default:
		return s.sendStatus(ctx, "unknown gesture: "+g.Type)
	}
}

// mark redraws the last frame with the selection's zoom-region box on top.
// The rectangle goes through the pixel→complex mapping and back, the same
// round trip a committed zoom would take.
func (s *session) mark(ctx context.Context, g mandel.Gesture) error {
	if s.frame == nil {
		return nil
	}
	box, err := s.view.DeriveSubView(image.Pt(g.X0, g.Y0), image.Pt(g.X1, g.Y1))
	if err != nil {
		// Degenerate drag starts are normal; nothing to draw yet.
		return nil
	}
	rect := s.view.ZoomRegionRect(box.Corner, box.Size)

	marked := image.NewRGBA(s.frame.Rect)
	copy(marked.Pix, s.frame.Pix)
	mandel.DrawRegionBox(marked, rect, markColor)
	return s.sendFrame(ctx, marked)
}

// renderCurrent renders s.view, streams progress, and pushes the finished
// frame followed by the view parameters it was rendered from.
func (s *session) renderCurrent(ctx context.Context) error {
	r := s.renderer

	var lastTenth atomic.Int64
	lastTenth.Store(-1)
	r.Progress = func(done, total int) {
		tenth := int64(done * 10 / total)
		if prev := lastTenth.Swap(tenth); prev == tenth && done != total {
			return
		}
		// Best effort: a broken connection surfaces on the next read.
		_ = s.sendUpdate(ctx, mandel.Update{Type: mandel.UpdateProgress, Done: done, Total: total})
	}

	grid, err := r.Render(ctx, s.view)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return s.sendError(ctx, err)
	}

	cm, err := mandel.NewColorMap(s.view.Depth, s.view.Intensity)
	if err != nil {
		return s.sendError(ctx, err)
	}

	s.frame = grid.RGBA(cm)
	if err := s.sendFrame(ctx, s.frame); err != nil {
		return err
	}
	return s.sendUpdate(ctx, mandel.ViewUpdate(s.view))
}

func (s *session) sendStatus(ctx context.Context, text string) error {
	return s.sendUpdate(ctx, mandel.Update{Type: mandel.UpdateStatus, Text: text})
}

func (s *session) sendError(ctx context.Context, err error) error {
	return s.sendUpdate(ctx, mandel.Update{Type: mandel.UpdateError, Text: err.Error()})
}

func (s *session) sendUpdate(ctx context.Context, u mandel.Update) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return wsjson.Write(ctx, s.conn, u)
}

func (s *session) sendFrame(ctx context.Context, img *image.RGBA) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.Write(ctx, websocket.MessageBinary, mandel.EncodeFrame(img))
}
