package mandel

import (
	"encoding/binary"
	"fmt"
	"image"
)

// Wire protocol between the interactive client and the server. Control
// messages travel as JSON over the websocket; rendered frames travel as
// binary messages so the client can copy them straight into a canvas.

// Gesture types sent by the client.
const (
	GestureZoom   = "zoom"   // commit the selection rectangle as the new view
	GestureBack   = "back"   // pop the navigation history
	GestureRedraw = "redraw" // re-render the current view with current params
	GestureParams = "params" // update resolution/depth/intensity
	GesturePos    = "pos"    // pointer moved; request a coordinate readout
	GestureMark   = "mark"   // draw the zoom-region box without committing
)

// Update types sent by the server.
const (
	UpdateView     = "view"     // the view the latest frame was rendered from
	UpdateStatus   = "status"   // status-bar text, e.g. coordinate readout
	UpdateProgress = "progress" // render progress counts
	UpdateError    = "error"    // a rejected gesture or failed render
)

// Gesture is a control message from the interactive client. Which fields
// are meaningful depends on Type: zoom and mark carry the selection
// rectangle, pos carries the pointer position, params carries the image
// parameters.
type Gesture struct {
	Type string `json:"type"`

	// Selection rectangle in pixel coordinates, top-left inclusive,
	// bottom-right exclusive.
	X0 int `json:"x0"`
	Y0 int `json:"y0"`
	X1 int `json:"x1"`
	Y1 int `json:"y1"`

	// Pointer position.
	X int `json:"x"`
	Y int `json:"y"`

	// Image parameters.
	Resolution int `json:"resolution"`
	Depth      int `json:"depth"`
	Intensity  int `json:"intensity"`
}

// Update is a control message from the server.
type Update struct {
	Type string `json:"type"`

	Text string `json:"text,omitempty"`

	// Progress counts (completed and total block rows).
	Done  int `json:"done,omitempty"`
	Total int `json:"total,omitempty"`

	// View parameters, valid for UpdateView.
	Re         float64 `json:"re,omitempty"`
	Im         float64 `json:"im,omitempty"`
	Size       float64 `json:"size,omitempty"`
	Resolution int     `json:"resolution,omitempty"`
	Depth      int     `json:"depth,omitempty"`
	Intensity  int     `json:"intensity,omitempty"`
}

// ViewUpdate describes v as an UpdateView message.
func ViewUpdate(v ViewState) Update {
	return Update{
		Type:       UpdateView,
		Re:         real(v.Corner),
		Im:         imag(v.Corner),
		Size:       v.Size,
		Resolution: v.Resolution,
		Depth:      v.Depth,
		Intensity:  v.Intensity,
	}
}

// View reconstructs the ViewState carried by an UpdateView message.
func (u Update) View() ViewState {
	return ViewState{
		Corner:     complex(u.Re, u.Im),
		Size:       u.Size,
		Resolution: u.Resolution,
		Depth:      u.Depth,
		Intensity:  u.Intensity,
	}
}

// frameHeaderLen is the size of the binary frame prefix: width and height
// as big-endian uint32.
const frameHeaderLen = 8

// EncodeFrame serializes img as a binary frame message: an 8-byte
// width/height header followed by raw RGBA pixels in row-major order.
func EncodeFrame(img *image.RGBA) []byte {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	buf := make([]byte, frameHeaderLen+4*w*h)
	binary.BigEndian.PutUint32(buf[0:4], uint32(w))
	binary.BigEndian.PutUint32(buf[4:8], uint32(h))
	dst := buf[frameHeaderLen:]
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*w]
		copy(dst[y*4*w:], row)
	}
	return buf
}

// DecodeFrame parses a binary frame message produced by EncodeFrame.
func DecodeFrame(b []byte) (*image.RGBA, error) {
	if len(b) < frameHeaderLen {
		return nil, fmt.Errorf("frame too short: %d bytes", len(b))
	}
	w := int(binary.BigEndian.Uint32(b[0:4]))
	h := int(binary.BigEndian.Uint32(b[4:8]))
	if w < 0 || h < 0 || len(b) != frameHeaderLen+4*w*h {
		return nil, fmt.Errorf("frame size mismatch: %dx%d with %d payload bytes", w, h, len(b)-frameHeaderLen)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, b[frameHeaderLen:])
	return img, nil
}
