// Package app 提供游戏应用的核心包装器
//
// 该包将游戏初始化逻辑从 main 包提取出来：加载关卡列表、打开存档、创建场景管理器，
// 并实现 ebiten.Game 接口驱动场景以固定步长更新。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/embedded"
	"github.com/decker502/invasion/pkg/game"
	"github.com/decker502/invasion/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// fixedDeltaTime 每个 tick 的模拟步长（ebiten 默认 60 TPS）
const fixedDeltaTime = 1.0 / 60.0

// stageGlob 嵌入资源中的关卡文件
const stageGlob = "data/stages/*.stage.yaml"

// Config 定义应用启动配置
type Config struct {
	// Debug 启用日志输出
	Debug bool
	// StagePath 启动时进入的关卡文件
	StagePath string
	// Seed 随机种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager *game.SceneManager
}

// NewApp 创建并初始化游戏应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
// 起始关卡加载失败时返回错误。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Debug {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// 存档不可用时只在内存中记录最高分
	gdataManager, err := gdata.Open(gdata.Config{AppName: "invasion"})
	if err != nil {
		log.Printf("[App] Warning: save data unavailable: %v", err)
		gdataManager = nil
	}
	highScores := game.NewHighScoreManager(gdataManager)

	stagePaths := listStages(cfg.StagePath)
	log.Printf("[App] %d stages available", len(stagePaths))

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(stagePath string) game.Scene {
		stage, err := config.LoadStageConfig(stagePath)
		if err != nil {
			log.Printf("[App] Failed to load stage: %v", err)
			return nil
		}
		return scenes.NewStageIntroScene(sceneManager, highScores, stage, stagePath, stagePaths, cfg.Seed)
	})

	// 起始关卡先单独校验一次，把错误原样返回给调用方
	if _, err := config.LoadStageConfig(cfg.StagePath); err != nil {
		return nil, fmt.Errorf("failed to load starting stage: %w", err)
	}
	if !sceneManager.LoadStage(cfg.StagePath) {
		return nil, fmt.Errorf("failed to enter stage %s", cfg.StagePath)
	}

	return &App{
		sceneManager: sceneManager,
	}, nil
}

// listStages 返回嵌入资源中的关卡文件，起始关卡不在其中时放在最前面
func listStages(start string) []string {
	var paths []string
	if embedded.IsInitialized() {
		found, err := embedded.Glob(stageGlob)
		if err != nil {
			log.Printf("[App] Warning: failed to list stages: %v", err)
		}
		paths = found
	}
	for _, p := range paths {
		if p == start {
			return paths
		}
	}
	return append([]string{start}, paths...)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	a.sceneManager.Update(fixedDeltaTime)
	return nil
}

// Draw 绘制游戏画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 缩放时使用最近邻采样保持像素风格，四周留黑
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(config.ScreenWidth), int(config.ScreenHeight)
}

// GetSceneManager 返回场景管理器
// 用于在游戏关闭时保存最高分
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}
