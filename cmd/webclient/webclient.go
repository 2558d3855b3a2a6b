//go:build js && wasm

// webclient.go is the WASM front end of the interactive Mandelbrot
// explorer. It forwards mouse gestures and property-panel edits to the
// server over a websocket and draws the frames the server pushes back.
// All fractal math and view bookkeeping happens server-side; this client
// is deliberately thin.

package main

import (
	"encoding/json"
	"image"
	"syscall/js"

	mandel "github.com/marben/mandelzoom"
)

type app struct {
	ws js.Value

	// view is the state the latest frame was rendered from, as confirmed
	// by the server.
	view  mandel.ViewState
	frame *image.RGBA

	dragging         bool
	originX, originY int
}

func main() {
	logScreenf("starting web client...")

	// Figure out the server address to open WebSocket
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	wsURL := proto + "://" + host + "/ws"

	a := &app{}
	a.ws = js.Global().Get("WebSocket").New(wsURL)
	a.ws.Set("binaryType", "arraybuffer")
	a.ws.Set("onopen", js.FuncOf(func(js.Value, []js.Value) any {
		logScreenf("connected to %s", wsURL)
		return nil
	}))
	a.ws.Set("onclose", js.FuncOf(func(js.Value, []js.Value) any {
		setStatus("connection closed")
		return nil
	}))
	a.ws.Set("onmessage", js.FuncOf(a.onMessage))

	a.bindCanvas()
	a.bindPanel()

	// Prevent Go program from exiting
	select {}
}

// send marshals a gesture and ships it to the server.
func (a *app) send(g mandel.Gesture) {
	b, err := json.Marshal(g)
	if err != nil {
		logScreenf("marshal gesture: %v", err)
		return
	}
	a.ws.Call("send", string(b))
}

// onMessage dispatches server messages: text frames carry JSON updates,
// binary frames carry raw RGBA images.
func (a *app) onMessage(this js.Value, args []js.Value) any {
	data := args[0].Get("data")
	if data.Type() == js.TypeString {
		a.handleUpdate([]byte(data.String()))
		return nil
	}

	img, err := mandel.DecodeFrame(arrayBufferToBytes(data))
	if err != nil {
		logScreenf("bad frame: %v", err)
		return nil
	}
	a.frame = img
	drawFrame(img)
	return nil
}

func (a *app) handleUpdate(b []byte) {
	var u mandel.Update
	if err := json.Unmarshal(b, &u); err != nil {
		logScreenf("bad update: %v", err)
		return
	}

	switch u.Type {
	case mandel.UpdateView:
		view := u.View()
		if view.Resolution != a.view.Resolution {
			initCanvas(view.Resolution, view.Resolution, "#3a3a6e")
			if a.frame != nil {
				drawFrame(a.frame)
			}
		}
		a.view = view
		setPanelValue("resolution", view.Resolution)
		setPanelValue("depth", view.Depth)
		setPanelValue("intensity", view.Intensity)
	case mandel.UpdateStatus:
		setStatus(u.Text)
	case mandel.UpdateProgress:
		setProgress(u.Done, u.Total)
	case mandel.UpdateError:
		setStatus(u.Text)
		logScreenf("server: %s", u.Text)
	default:
		logScreenf("unknown update type %q", u.Type)
	}
}

// bindCanvas wires the zoom gestures: left-drag selects a square region,
// releasing commits the zoom (or, with Ctrl held, only marks the region),
// double-click redraws, right-click goes back through history.
func (a *app) bindCanvas() {
	canvas := js.Global().Get("document").Call("getElementById", "view")

	canvas.Call("addEventListener", "mousedown", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		if e.Get("button").Int() == 0 {
			a.dragging = true
			a.originX = e.Get("offsetX").Int()
			a.originY = e.Get("offsetY").Int()
		}
		return nil
	}))

	canvas.Call("addEventListener", "mousemove", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		x, y := e.Get("offsetX").Int(), e.Get("offsetY").Int()
		if a.dragging {
			drawSelection(a.frame, squareRect(a.originX, a.originY, x, y))
		} else {
			a.send(mandel.Gesture{Type: mandel.GesturePos, X: x, Y: y})
		}
		return nil
	}))

	canvas.Call("addEventListener", "mouseup", js.FuncOf(func(this js.Value, args []js.Value) any {
		e := args[0]
		if e.Get("button").Int() != 0 || !a.dragging {
			return nil
		}
		a.dragging = false
		rect := squareRect(a.originX, a.originY, e.Get("offsetX").Int(), e.Get("offsetY").Int())
		if a.frame != nil {
			drawFrame(a.frame) // clear the rubber band
		}

		gesture := mandel.GestureZoom
		if e.Get("ctrlKey").Bool() {
			gesture = mandel.GestureMark
		}
		a.send(mandel.Gesture{
			Type: gesture,
			X0:   rect.Min.X, Y0: rect.Min.Y,
			X1: rect.Max.X, Y1: rect.Max.Y,
		})
		return nil
	}))

	canvas.Call("addEventListener", "dblclick", js.FuncOf(func(this js.Value, args []js.Value) any {
		a.send(mandel.Gesture{Type: mandel.GestureRedraw})
		return nil
	}))

	canvas.Call("addEventListener", "contextmenu", js.FuncOf(func(this js.Value, args []js.Value) any {
		args[0].Call("preventDefault")
		a.send(mandel.Gesture{Type: mandel.GestureBack})
		return nil
	}))
}

// bindPanel forwards property edits to the server; they take effect on
// the next redraw or zoom.
func (a *app) bindPanel() {
	doc := js.Global().Get("document")
	onChange := js.FuncOf(func(js.Value, []js.Value) any {
		resolution, ok1 := panelValue("resolution")
		depth, ok2 := panelValue("depth")
		intensity, ok3 := panelValue("intensity")
		if !ok1 || !ok2 || !ok3 {
			return nil
		}
		a.send(mandel.Gesture{
			Type:       mandel.GestureParams,
			Resolution: resolution,
			Depth:      depth,
			Intensity:  intensity,
		})
		return nil
	})
	for _, id := range []string{"resolution", "depth", "intensity"} {
		doc.Call("getElementById", id).Call("addEventListener", "change", onChange)
	}
}

// squareRect turns a drag from (ox, oy) to (x, y) into a square selection
// anchored at the drag origin, spanning the larger of the two deltas in
// the direction of the drag.
func squareRect(ox, oy, x, y int) image.Rectangle {
	dx, dy := x-ox, y-oy
	dmax := dx
	if dmax < 0 {
		dmax = -dmax
	}
	if dy > dmax {
		dmax = dy
	} else if -dy > dmax {
		dmax = -dy
	}

	px, py := ox+dmax, oy+dmax
	if dx < 0 {
		px = ox - dmax
	}
	if dy < 0 {
		py = oy - dmax
	}
	return image.Rect(ox, oy, px, py)
}
