package tmux

import (
	"encoding/hex"
	"fmt"
)

// maxMouseCoord is the largest column or line an X10 mouse report can
// carry in one byte.
const maxMouseCoord = 0xff - 0x20

// MouseClick encodes a left button press and release at the 1-indexed
// column and line as X10 mouse reports.
func MouseClick(column, line int) ([]byte, error) {
	if column < 1 || line < 1 || column > maxMouseCoord || line > maxMouseCoord {
		return nil, fmt.Errorf("position %d:%d is outside the mouse reporting range", line, column)
	}
	x := byte(0x20 + column)
	y := byte(0x20 + line)
	return []byte{
		0x1b, '[', 'M', ' ', x, y, // press
		0x1b, '[', 'M', '#', x, y, // release
	}, nil
}

// HexArgs splits b into the two-digit hex words send-keys -H expects.
func HexArgs(b []byte) []string {
	args := make([]string, len(b))
	for i := range b {
		args[i] = hex.EncodeToString(b[i : i+1])
	}
	return args
}
