package render

import (
	"bytes"
	"os/exec"

	"github.com/matzehuels/deviationview/pkg/errors"
)

const rsvgTool = "rsvg-convert"

// ToPDF converts SVG bytes to PDF with rsvg-convert.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func ToPDF(svg []byte) ([]byte, error) {
	if !RSVGAvailable() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"pdf export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin")
	}

	cmd := exec.Command(rsvgTool, "-f", "pdf")
	cmd.Stdin = bytes.NewReader(svg)
	var out, stderr bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "%s: %s", rsvgTool, stderr.String())
	}
	return out.Bytes(), nil
}

// RSVGAvailable reports whether rsvg-convert is on PATH.
func RSVGAvailable() bool {
	_, err := exec.LookPath(rsvgTool)
	return err == nil
}
