package scenes

import (
	"image/color"

	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// hudFace 界面文字字体（7x13 点阵）
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// hudLineHeight 一行文字的高度
const hudLineHeight = 13

// worldToScreen 世界坐标（原点在中心，Y 向上）转屏幕坐标（原点在左上，Y 向下）
func worldToScreen(p utils.Vec2) (float32, float32) {
	return float32(p.X + config.HalfWidth), float32(config.HalfHeight - p.Y)
}

// screenToWorld 屏幕坐标转世界坐标
func screenToWorld(x, y int) utils.Vec2 {
	return utils.V2(float64(x)-config.HalfWidth, config.HalfHeight-float64(y))
}

// drawText 在屏幕坐标 (x, y) 绘制文本，(x, y) 为左上角
func drawText(screen *ebiten.Image, str string, x, y float64, clr color.Color) {
	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	opts.LineSpacing = hudLineHeight
	text.Draw(screen, str, hudFace, opts)
}

// drawCenteredText 水平居中绘制文本
func drawCenteredText(screen *ebiten.Image, str string, y float64, clr color.Color) {
	w, _ := text.Measure(str, hudFace, hudLineHeight)
	drawText(screen, str, (config.ScreenWidth-w)/2, y, clr)
}
