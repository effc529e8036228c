package scenes

import (
	"log"

	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/simulation"
	"github.com/decker502/invasion/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputIntent 一帧的玩家意图，由键鼠输入转换而来
type inputIntent struct {
	fire      bool
	target    utils.Vec2 // 发射目标（世界坐标）
	direction float64    // 坦克移动方向：-1 左，1 右，0 停
	pause     bool
	reset     bool
	back      bool // 返回关卡开场画面
}

// GameScene 战斗场景
// 持有一局模拟，把输入转成模拟调用，并把模拟状态画出来
type GameScene struct {
	sceneManager *game.SceneManager
	highScores   *game.HighScoreManager
	sim          *simulation.Simulation
	stagePath    string

	recorded bool // 本局结果已提交
	newBest  bool // 本局刷新了最佳记录
}

// NewGameScene 创建战斗场景
func NewGameScene(sm *game.SceneManager, highScores *game.HighScoreManager, stage *config.StageConfig,
	stagePath string, seed int64) *GameScene {
	return &GameScene{
		sceneManager: sm,
		highScores:   highScores,
		sim:          simulation.New(stage, seed),
		stagePath:    stagePath,
	}
}

// Update 读取输入并推进模拟
func (s *GameScene) Update(deltaTime float64) {
	s.step(readInput(), deltaTime)
}

// readInput 读取键鼠输入
func readInput() inputIntent {
	in := inputIntent{
		pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		reset: inpututil.IsKeyJustPressed(ebiten.KeyR),
		back:  inpututil.IsKeyJustPressed(ebiten.KeyEscape),
	}

	if pressed, x, y := utils.IsJustTouchedOrClicked(); pressed {
		in.fire = true
		in.target = screenToWorld(x, y)
	} else if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.fire = true
		in.target = screenToWorld(utils.GetPointerPosition())
	}

	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.direction--
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.direction++
	}
	return in
}

// step 应用输入并推进一帧
func (s *GameScene) step(in inputIntent, deltaTime float64) {
	if in.back {
		s.recordResult()
		s.sceneManager.LoadStage(s.stagePath)
		return
	}
	if in.pause && s.sim.Phase() != game.PhaseDefeat {
		paused := s.sim.TogglePause()
		log.Printf("[GameScene] Paused=%v", paused)
	}
	if in.reset && s.sim.Phase() == game.PhaseDefeat {
		s.sim.Reset()
		s.recorded = false
		s.newBest = false
	}

	s.sim.SetTankDirection(in.direction)
	if in.fire {
		s.sim.Fire(in.target)
	}

	events := s.sim.Update(deltaTime)
	for _, wc := range events.WaveCompleted {
		log.Printf("[GameScene] Wave %d reached, score %d", wc.Wave, s.sim.Score())
	}
	if events.Defeat {
		s.recordResult()
	}
}

// recordResult 提交本局结果，每局只提交一次
func (s *GameScene) recordResult() bool {
	if s.recorded {
		return true
	}
	s.recorded = true

	improved, err := s.highScores.Record(s.sim.Stage().Name, s.sim.Score(), s.sim.Wave())
	if err != nil {
		log.Printf("[GameScene] Warning: failed to save high score: %v", err)
		return false
	}
	s.newBest = improved
	return true
}

// SaveOnExit 实现 game.Saveable：退出时提交本局结果
func (s *GameScene) SaveOnExit() bool {
	return s.recordResult()
}
