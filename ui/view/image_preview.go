package view

import (
	"image"

	"github.com/soocke/autodraw-go/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// ImagePanes shows the loaded picture next to its line art.
type ImagePanes interface {
	ShowOriginal(img image.Image)
	ShowLineArt(img image.Image)
}

const (
	paneW = 400
	paneH = 400
)

type pane struct {
	label *LabelWidget
	photo *Img
}

type imagePanes struct {
	original pane
	lineArt  pane
}

// NewImagePanes grids two captioned panes into row of the main window.
func NewImagePanes(row int) ImagePanes {
	v := &imagePanes{}
	v.original = newPane("Original", row, 0)
	v.lineArt = newPane("Line art", row, 2)
	return v
}

func newPane(caption string, row, col int) pane {
	frame := Frame(Borderwidth(1), Relief("groove"))
	Grid(frame, Row(row), Column(col), Columnspan(2), Sticky("nsew"), Padx("0.4m"), Pady("0.4m"))
	Grid(Label(Txt(caption)), In(frame), Row(0), Column(0), Sticky("w"))
	blank := images.Tint(image.NewGray(image.Rect(0, 0, paneW, paneH)), "")
	photo := NewPhoto(Data(images.EncodePNG(blank)))
	lbl := Label(Image(photo), Borderwidth(1), Relief("sunken"))
	Grid(lbl, In(frame), Row(1), Column(0))
	return pane{label: lbl, photo: photo}
}

func (v *imagePanes) ShowOriginal(img image.Image) { v.original.show(img) }
func (v *imagePanes) ShowLineArt(img image.Image)  { v.lineArt.show(img) }

// show scales img into the pane and frees the previous photo.
func (p *pane) show(img image.Image) {
	if p.label == nil || img == nil {
		return
	}
	data := images.EncodePNG(images.ScaleToFit(img, paneW, paneH))
	if p.photo != nil {
		p.photo.Delete()
	}
	p.photo = NewPhoto(Data(data))
	p.label.Configure(Image(p.photo))
}
