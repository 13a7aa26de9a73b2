// Package icon renders the clock's decorative image as terminal text.
package icon

import (
	"fmt"
	"image"
	"strings"

	"github.com/blacktop/go-termimg"
	"github.com/disintegration/imaging"

	apperrors "github.com/julianstephens/adhanclock/internal/errors"
)

// Load decodes the image at path and renders it to fit widthCells x
// heightCells using protocol ("halfblocks", "kitty", "sixel", "iterm2" or
// "none"). The result is meant to be computed once and reused every frame.
func Load(path, protocol string, widthCells, heightCells int) (string, error) {
	if protocol == "none" || path == "" {
		return "", nil
	}
	img, err := imaging.Open(path)
	if err != nil {
		return "", fmt.Errorf("open icon: %v: %w", err, apperrors.ErrAssetLoad)
	}
	return Render(img, protocol, widthCells, heightCells)
}

// Render renders img with the given protocol.
func Render(img image.Image, protocol string, widthCells, heightCells int) (string, error) {
	if img == nil {
		return "", fmt.Errorf("image is nil: %w", apperrors.ErrAssetLoad)
	}
	if widthCells <= 0 || heightCells <= 0 {
		return "", nil
	}

	switch protocol {
	case "kitty":
		return renderTermimg(img, termimg.Kitty, widthCells, heightCells)
	case "sixel":
		return renderTermimg(img, termimg.Sixel, widthCells, heightCells)
	case "iterm2":
		return renderTermimg(img, termimg.ITerm2, widthCells, heightCells)
	case "none":
		return "", nil
	default:
		// Each cell holds two vertical pixels.
		fitted := imaging.Fit(img, widthCells, heightCells*2, imaging.Lanczos)
		return renderHalfblocks(fitted), nil
	}
}

func renderTermimg(img image.Image, proto termimg.Protocol, widthCells, heightCells int) (string, error) {
	ti := termimg.New(img)
	if ti == nil {
		return "", fmt.Errorf("go-termimg: failed to create image wrapper")
	}
	ti.Protocol(proto).Size(widthCells, heightCells).Scale(termimg.ScaleFit)
	return ti.Render()
}

// renderHalfblocks draws two pixel rows per line using the upper half block
// with 24-bit foreground and background colors. Transparent pixels show the
// terminal background.
func renderHalfblocks(img *image.NRGBA) string {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return ""
	}

	var b strings.Builder
	b.Grow(w * (h/2 + 1) * 30)

	for y := 0; y < h; y += 2 {
		if y > 0 {
			b.WriteString("\x1b[0m\n")
		}
		for x := 0; x < w; x++ {
			top := img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)
			var bot = top
			bot.A = 0
			if y+1 < h {
				bot = img.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y+1)
			}

			switch {
			case top.A == 0 && bot.A == 0:
				b.WriteString("\x1b[0m ")
			case top.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▄", bot.R, bot.G, bot.B)
			case bot.A == 0:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[49m▀", top.R, top.G, top.B)
			default:
				fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm▀",
					top.R, top.G, top.B, bot.R, bot.G, bot.B)
			}
		}
	}
	b.WriteString("\x1b[0m")
	return b.String()
}
