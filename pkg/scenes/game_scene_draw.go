package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/decker502/invasion/pkg/components"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 实体绘制尺寸（像素）
const (
	tankWidth     = 16
	tankHeight    = 6
	turretLength  = 6
	cityHeight    = 8
	rubbleHeight  = 2
	ufoRadius     = 5
	missileHead   = 1.5
	lockArmLength = 3
)

// explosionFrameRadius 没有火焰时按动画帧显示的爆炸半径
var explosionFrameRadius = [...]float32{3, 6, 9, 12}

// Draw 绘制战斗画面和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	stage := s.sim.Stage()
	bg := config.ColorFromVec(stage.BgColor)
	fg := config.ColorFromVec(stage.FgColor)
	trail := config.ColorFromVec(stage.TrailColor)
	textColor := config.ColorFromVec(stage.TextColor)

	screen.Fill(bg)
	_, groundTop := worldToScreen(utils.V2(0, config.GroundY))
	vector.DrawFilledRect(screen, 0, groundTop, config.ScreenWidth, config.GroundHeight, fg, false)

	for _, e := range s.sim.World().All() {
		switch e.Kind {
		case components.KindCity:
			s.drawCity(screen, e, fg)
		case components.KindTank:
			s.drawTank(screen, e, fg)
		case components.KindMissile:
			s.drawMissile(screen, e, trail, fg)
		case components.KindUfo:
			x, y := worldToScreen(e.Position)
			vector.DrawFilledCircle(screen, x, y, ufoRadius, fg, true)
			vector.DrawFilledRect(screen, x-ufoRadius*2, y, ufoRadius*4, 2, fg, false)
		case components.KindTargetLock:
			x, y := worldToScreen(e.Position)
			vector.StrokeLine(screen, x-lockArmLength, y-lockArmLength, x+lockArmLength, y+lockArmLength, 1, textColor, false)
			vector.StrokeLine(screen, x-lockArmLength, y+lockArmLength, x+lockArmLength, y-lockArmLength, 1, textColor, false)
		case components.KindExplosion:
			s.drawExplosion(screen, e, fg)
		}
	}

	s.drawHUD(screen, textColor)
}

func (s *GameScene) drawCity(screen *ebiten.Image, e *components.Entity, clr color.Color) {
	x, y := worldToScreen(e.Position)
	h := float32(cityHeight)
	if e.Health.IsDestroyed() {
		h = rubbleHeight
	}
	vector.DrawFilledRect(screen, x-config.CityHalfWidth, y-h, 2*config.CityHalfWidth, h, clr, false)
}

func (s *GameScene) drawTank(screen *ebiten.Image, e *components.Entity, clr color.Color) {
	if e.Health.IsDestroyed() {
		return
	}
	x, y := worldToScreen(e.Position)
	vector.DrawFilledRect(screen, x-tankWidth/2, y-tankHeight, tankWidth, tankHeight, clr, false)
	vector.StrokeLine(screen, x, y-tankHeight, x, y-tankHeight-turretLength, 2, clr, false)
}

func (s *GameScene) drawMissile(screen *ebiten.Image, e *components.Entity, trail, head color.Color) {
	ox, oy := worldToScreen(e.Missile.Origin)
	x, y := worldToScreen(e.Position)
	vector.StrokeLine(screen, ox, oy, x, y, 1, trail, false)
	vector.DrawFilledCircle(screen, x, y, missileHead, head, true)
}

func (s *GameScene) drawExplosion(screen *ebiten.Image, e *components.Entity, clr color.Color) {
	x, y := worldToScreen(e.Position)
	r := float32(e.Explosion.Radius)
	if r == 0 && e.Animation != nil {
		frame := e.Animation.Frame
		if frame >= 0 && frame < len(explosionFrameRadius) {
			r = explosionFrameRadius[frame]
		}
	}
	if r > 0 {
		vector.DrawFilledCircle(screen, x, y, r, clr, true)
	}
}

// drawHUD 绘制分数、波次、弹药、城市数以及暂停/失败提示
func (s *GameScene) drawHUD(screen *ebiten.Image, clr color.Color) {
	status := fmt.Sprintf("SCORE %d   WAVE %d   AMMO %d   CITIES %d",
		s.sim.Score(), s.sim.Wave()+1, s.sim.Ammo(), s.sim.CitiesAlive())
	drawText(screen, status, 4, 2, clr)

	best := s.highScores.Get(s.sim.Stage().Name)
	drawText(screen, fmt.Sprintf("BEST %d", max(best.Score, s.sim.Score())), 4, 2+hudLineHeight, clr)

	switch {
	case s.sim.Phase() == game.PhaseDefeat:
		drawCenteredText(screen, "THE CITY HAS FALLEN", config.HalfHeight-2*hudLineHeight, clr)
		if s.newBest {
			drawCenteredText(screen, "NEW BEST!", config.HalfHeight-hudLineHeight, clr)
		}
		drawCenteredText(screen, "R: RETRY   ESC: BACK", config.HalfHeight, clr)
	case s.sim.Paused():
		drawCenteredText(screen, "PAUSED", config.HalfHeight-hudLineHeight, clr)
	case s.sim.Phase() == game.PhaseWaveComplete:
		drawCenteredText(screen, fmt.Sprintf("WAVE %d", s.sim.Wave()+1), config.HalfHeight-hudLineHeight, clr)
		if remaining, ok := s.sim.NextWaveIn(); ok {
			drawCenteredText(screen, fmt.Sprintf("NEXT WAVE IN %.0f", math.Ceil(remaining)), config.HalfHeight, clr)
		}
	}
}
