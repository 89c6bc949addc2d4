package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"

	"camview/pkg/capture"
)

// renderer owns the offscreen image the decoded frame is uploaded to and
// the scratch RGBA buffer, both reused across frames.
type renderer struct {
	offscreen *ebiten.Image
	rgba      []byte
	drawOpts  ebiten.DrawImageOptions
}

// draw uploads the frame and blits it: a pixel-for-pixel copy when the
// frame matches the drawable area, otherwise a stretch to fill it. The
// stretch ignores aspect on purpose; aspect is maintained by resizing the
// window itself, not by letterboxing the blit.
func (r *renderer) draw(screen *ebiten.Image, f *capture.Frame, sameSize bool) {
	if f == nil || f.Width == 0 || f.Height == 0 {
		return
	}

	need := f.Width * f.Height * 4
	if cap(r.rgba) < need {
		r.rgba = make([]byte, need)
	}
	rgba := r.rgba[:need]

	si, di := 0, 0
	for p := 0; p < f.Width*f.Height; p++ {
		rgba[di] = f.Pix[si]
		rgba[di+1] = f.Pix[si+1]
		rgba[di+2] = f.Pix[si+2]
		rgba[di+3] = 0xff
		si += 3
		di += 4
	}

	if r.offscreen == nil ||
		r.offscreen.Bounds().Dx() != f.Width ||
		r.offscreen.Bounds().Dy() != f.Height {
		r.offscreen = ebiten.NewImage(f.Width, f.Height)
	}
	r.offscreen.WritePixels(rgba)

	r.drawOpts = ebiten.DrawImageOptions{}
	if sameSize {
		r.drawOpts.Filter = ebiten.FilterNearest
	} else {
		sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
		r.drawOpts.GeoM.Scale(
			float64(sw)/float64(f.Width),
			float64(sh)/float64(f.Height),
		)
		r.drawOpts.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(r.offscreen, &r.drawOpts)
}
