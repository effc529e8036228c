package main

import (
	"fmt"
	"log"
	"os"

	"github.com/decker502/invasion/pkg/app"
	"github.com/decker502/invasion/pkg/config"
	"github.com/decker502/invasion/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	programConfig, err := config.ParseProgramConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "A problem occurred when parsing args: %v\n", err)
		os.Exit(1)
	}

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Debug:     programConfig.Debug,
		StagePath: programConfig.StagePath,
		Seed:      programConfig.Seed,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	ebiten.SetWindowSize(int(config.ScreenWidth)*2, int(config.ScreenHeight)*2)
	ebiten.SetWindowTitle("Invasion")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 退出前保存最高分
	gameApp.GetSceneManager().SaveOnExit()

	if runErr != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(runErr)
	}
}
