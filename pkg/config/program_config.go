package config

import (
	"flag"
	"fmt"
	"io"
)

// ProgramConfig 命令行参数解析结果
type ProgramConfig struct {
	// Debug 启用调试日志和调试绘制
	Debug bool
	// StagePath 关卡文件路径
	StagePath string
	// Seed 随机种子，相同种子和相同输入得到相同的对局
	Seed int64
}

// ParseProgramConfig 解析命令行参数（不含程序名）
//
// 支持 -d / -debug 开启调试，-stage 指定关卡文件，-seed 指定随机种子
// 不接受多余的位置参数
func ParseProgramConfig(args []string) (*ProgramConfig, error) {
	cfg := &ProgramConfig{}

	fs := flag.NewFlagSet("invasion", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cfg.Debug, "d", false, "enable debug mode")
	fs.BoolVar(&cfg.Debug, "debug", false, "enable debug mode")
	fs.StringVar(&cfg.StagePath, "stage", DefaultStagePath, "stage file to play")
	fs.Int64Var(&cfg.Seed, "seed", DefaultRandomSeed, "random seed")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unknown argument %q", fs.Arg(0))
	}
	return cfg, nil
}
