//go:build js && wasm

package main

import (
	"fmt"
	"strconv"
	"syscall/js"
)

// logScreenf appends a formatted message to the log element in the DOM.
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// setStatus replaces the status-bar text (coordinate readout, warnings).
func setStatus(text string) {
	js.Global().Get("document").Call("getElementById", "status").Set("textContent", text)
}

// setProgress updates the render progress bar.
func setProgress(done, total int) {
	bar := js.Global().Get("document").Call("getElementById", "progress")
	bar.Set("max", total)
	bar.Set("value", done)
}

// panelValue reads an integer input from the property panel. Returns
// (0, false) while the field is empty or not a number.
func panelValue(id string) (int, bool) {
	v := js.Global().Get("document").Call("getElementById", id).Get("value").String()
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

// setPanelValue pushes a server-confirmed parameter back into the panel.
func setPanelValue(id string, n int) {
	js.Global().Get("document").Call("getElementById", id).Set("value", n)
}
