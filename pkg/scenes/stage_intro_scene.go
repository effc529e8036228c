package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// StageIntroScene 关卡开场画面
// 显示关卡名称、介绍文字和最佳记录；空格/回车/鼠标点击开始，Tab 切换到下一关
type StageIntroScene struct {
	sceneManager *game.SceneManager
	highScores   *game.HighScoreManager
	stage        *config.StageConfig
	stagePath    string
	stagePaths   []string // 所有可选关卡，用于 Tab 切换
	seed         int64
}

// NewStageIntroScene 创建关卡开场场景
//
// 参数：
//
//	sm - 场景管理器
//	highScores - 最高分管理器
//	stage - 已加载的关卡配置
//	stagePath - 关卡文件路径（重新进入时使用；最高分按关卡名称记录）
//	stagePaths - 所有关卡文件路径
//	seed - 随机种子
func NewStageIntroScene(sm *game.SceneManager, highScores *game.HighScoreManager, stage *config.StageConfig,
	stagePath string, stagePaths []string, seed int64) *StageIntroScene {
	return &StageIntroScene{
		sceneManager: sm,
		highScores:   highScores,
		stage:        stage,
		stagePath:    stagePath,
		stagePaths:   stagePaths,
		seed:         seed,
	}
}

// Update 处理开始/切换关卡输入
func (s *StageIntroScene) Update(deltaTime float64) {
	clicked, _, _ := utils.IsJustTouchedOrClicked()
	switch {
	case clicked,
		inpututil.IsKeyJustPressed(ebiten.KeySpace),
		inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		s.start()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		if next := s.nextStagePath(); next != "" {
			s.sceneManager.LoadStage(next)
		}
	}
}

// start 进入战斗
func (s *StageIntroScene) start() {
	log.Printf("[StageIntroScene] Starting stage %q", s.stage.Name)
	s.sceneManager.SwitchTo(NewGameScene(s.sceneManager, s.highScores, s.stage, s.stagePath, s.seed))
}

// nextStagePath 返回下一个关卡路径，只有一个关卡时返回空串
func (s *StageIntroScene) nextStagePath() string {
	if len(s.stagePaths) < 2 {
		return ""
	}
	for i, p := range s.stagePaths {
		if p == s.stagePath {
			return s.stagePaths[(i+1)%len(s.stagePaths)]
		}
	}
	return s.stagePaths[0]
}

// Draw 绘制开场画面
func (s *StageIntroScene) Draw(screen *ebiten.Image) {
	screen.Fill(config.ColorFromVec(s.stage.BgColor))
	textColor := config.ColorFromVec(s.stage.TextColor)

	y := config.HalfHeight - 3*hudLineHeight
	drawCenteredText(screen, s.stage.Name, y, textColor)
	if s.stage.Bread != "" {
		drawCenteredText(screen, s.stage.Bread, y+2*hudLineHeight, textColor)
	}

	best := s.highScores.Get(s.stage.Name)
	if best.Score > 0 || best.Wave > 0 {
		drawCenteredText(screen, fmt.Sprintf("BEST %d  (WAVE %d)", best.Score, best.Wave+1), y+4*hudLineHeight, textColor)
	}

	hint := "PRESS SPACE TO START"
	if len(s.stagePaths) > 1 {
		hint += "  |  TAB: NEXT STAGE"
	}
	drawCenteredText(screen, hint, config.ScreenHeight-2*hudLineHeight, textColor)
}
