package assets

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

const labelFontSize = 16

var (
	LabelFont *text.GoTextFace
)

func init() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	LabelFont = &text.GoTextFace{
		Source: fontSource,
		Size:   labelFontSize,
	}
}
