//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
)

func canvasContext() js.Value {
	document := js.Global().Get("document")
	canvas := document.Call("getElementById", "view")
	return canvas.Call("getContext", "2d")
}

// initCanvas resizes the canvas and clears it to a neutral color while the
// first frame is rendering.
func initCanvas(width, height int, color string) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "view")

	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")
	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}

// drawFrame copies a decoded RGBA frame onto the canvas.
//
// The Go pixel buffer is copied into a JS Uint8ClampedArray, wrapped in an
// ImageData and put on the canvas in one call.
func drawFrame(img *image.RGBA) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))
	js.CopyBytesToJS(jsData, img.Pix)

	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	canvasContext().Call("putImageData", imageData, 0, 0)
}

// drawSelection restores the frame and strokes the rubber-band square on
// top of it.
func drawSelection(frame *image.RGBA, rect image.Rectangle) {
	if frame != nil {
		drawFrame(frame)
	}
	ctx := canvasContext()
	ctx.Set("strokeStyle", "#e10000")
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", rect.Min.X, rect.Min.Y, rect.Dx(), rect.Dy())
}

// arrayBufferToBytes copies a JS ArrayBuffer into a Go byte slice.
func arrayBufferToBytes(data js.Value) []byte {
	u8 := js.Global().Get("Uint8Array").New(data)
	b := make([]byte, u8.Get("byteLength").Int())
	js.CopyBytesToGo(b, u8)
	return b
}
