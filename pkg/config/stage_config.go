package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/decker502/invasion/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// 默认配色
var (
	// DarkColor 默认背景色
	DarkColor = []int{49, 47, 40}
	// LightColor 默认前景/文字色
	LightColor = []int{217, 215, 208}
)

// StageConfig 关卡配置数据结构
// 定义了一关的难度曲线基础参数和配色，加载后不再修改
//
// 所有随波次变化的数值都通过方法按波次号计算，见 Difficulty
type StageConfig struct {
	Name  string `yaml:"name"`  // 关卡名称，如 "Outskirts"
	Bread string `yaml:"bread"` // 关卡介绍文字（开场画面显示）

	SpawnIntervalSecs float64 `yaml:"spawnIntervalSecs"` // 敌人生成间隔基数（秒）
	SplitIntervalSecs float64 `yaml:"splitIntervalSecs"` // 导弹分裂判定间隔基数（秒）
	EnemiesCountBase  float64 `yaml:"enemiesCount"`      // 每波敌人数量基数
	MissileSpawnMin   int     `yaml:"missileSpawnMin"`   // 每次生成导弹数量下限基数
	MissileSpawnMax   int     `yaml:"missileSpawnMax"`   // 每次生成导弹数量上限基数（含）
	MissileSpeedBase  float64 `yaml:"missileSpeed"`      // 敌方导弹速度基数（像素/秒）
	UfoSpeedBase      float64 `yaml:"ufoSpeed"`          // UFO 速度基数（像素/秒）

	DropBombChanceBase float64 `yaml:"dropBombChance"` // UFO 每次判定投弹的概率基数
	UfoChanceBase      float64 `yaml:"ufoChance"`      // 每次生成出现 UFO 的概率基数
	SplitChanceBase    float64 `yaml:"splitChance"`    // 导弹分裂概率基数
	MaxSplitBase       int     `yaml:"maxSplit"`       // 分裂产生的导弹数量基数

	DifficultyBase float64 `yaml:"difficultyBase"` // 难度系数基数，默认 1.0
	DifficultyRate float64 `yaml:"difficultyRate"` // 每波难度系数增量

	TextColor  []int `yaml:"textColor"`  // 文字颜色 [r, g, b]
	BgColor    []int `yaml:"bgColor"`    // 背景颜色 [r, g, b]
	FgColor    []int `yaml:"fgColor"`    // 前景颜色 [r, g, b]
	TrailColor []int `yaml:"trailColor"` // 导弹尾迹颜色 [r, g, b]
}

// LoadStageConfig 加载关卡配置
// 优先从嵌入资源读取，不存在时回退到本地文件系统
//
// 参数：
//
//	path - 关卡配置文件路径，如 "data/stages/a.stage.yaml"
//
// 返回：
//
//	*StageConfig - 解析后的关卡配置对象
//	error - 如果文件读取、解析或验证失败，返回错误信息
func LoadStageConfig(path string) (*StageConfig, error) {
	var (
		data []byte
		err  error
	)
	if embedded.IsInitialized() && embedded.Exists(path) {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read stage config file %s: %w", path, err)
	}

	return ParseStageConfig(data, path)
}

// ParseStageConfig 解析 YAML 格式的关卡配置
// source 仅用于错误信息
func ParseStageConfig(data []byte, source string) (*StageConfig, error) {
	var stage StageConfig
	if err := yaml.Unmarshal(data, &stage); err != nil {
		return nil, fmt.Errorf("failed to parse stage config YAML from %s: %w", source, err)
	}

	// 应用默认值
	applyStageDefaults(&stage)

	// 验证必填字段
	if err := validateStageConfig(&stage); err != nil {
		return nil, fmt.Errorf("invalid stage config in %s: %w", source, err)
	}

	return &stage, nil
}

// applyStageDefaults 为缺失的可选字段设置默认值
func applyStageDefaults(stage *StageConfig) {
	if stage.DifficultyBase == 0 {
		stage.DifficultyBase = 1.0
	}
	if len(stage.BgColor) == 0 {
		stage.BgColor = DarkColor
	}
	if len(stage.FgColor) == 0 {
		stage.FgColor = LightColor
	}
	if len(stage.TextColor) == 0 {
		stage.TextColor = LightColor
	}
	if len(stage.TrailColor) == 0 {
		stage.TrailColor = LightColor
	}
}

// validateStageConfig 验证关卡配置的完整性和合法性
func validateStageConfig(stage *StageConfig) error {
	if stage.Name == "" {
		return fmt.Errorf("stage name is required")
	}

	if stage.SpawnIntervalSecs <= 0 {
		return fmt.Errorf("spawnIntervalSecs must be positive, got %v", stage.SpawnIntervalSecs)
	}
	if stage.SplitIntervalSecs <= 0 {
		return fmt.Errorf("splitIntervalSecs must be positive, got %v", stage.SplitIntervalSecs)
	}
	if stage.EnemiesCountBase < 1 {
		return fmt.Errorf("enemiesCount must be at least 1, got %v", stage.EnemiesCountBase)
	}

	if stage.MissileSpawnMin < 0 {
		return fmt.Errorf("missileSpawnMin cannot be negative, got %d", stage.MissileSpawnMin)
	}
	if stage.MissileSpawnMin > stage.MissileSpawnMax {
		return fmt.Errorf("missileSpawnMin (%d) cannot exceed missileSpawnMax (%d)", stage.MissileSpawnMin, stage.MissileSpawnMax)
	}

	if stage.MissileSpeedBase <= 0 {
		return fmt.Errorf("missileSpeed must be positive, got %v", stage.MissileSpeedBase)
	}
	if stage.UfoSpeedBase <= 0 {
		return fmt.Errorf("ufoSpeed must be positive, got %v", stage.UfoSpeedBase)
	}

	chances := []struct {
		name  string
		value float64
	}{
		{"dropBombChance", stage.DropBombChanceBase},
		{"ufoChance", stage.UfoChanceBase},
		{"splitChance", stage.SplitChanceBase},
	}
	for _, c := range chances {
		if c.value < 0 || c.value > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", c.name, c.value)
		}
	}

	// 第 0 波既不生成导弹也不生成 UFO 时，生成计数永远不会增长，本波无法结束
	if stage.MissileSpawnMax == 0 && stage.UfoChanceBase == 0 {
		return fmt.Errorf("stage spawns no enemies: missileSpawnMax and ufoChance are both 0")
	}

	if stage.MaxSplitBase < 0 {
		return fmt.Errorf("maxSplit cannot be negative, got %d", stage.MaxSplitBase)
	}

	if stage.DifficultyBase <= 0 {
		return fmt.Errorf("difficultyBase must be positive, got %v", stage.DifficultyBase)
	}
	// 难度增量为负会让每波敌人数量递减
	if stage.DifficultyRate < 0 {
		return fmt.Errorf("difficultyRate cannot be negative, got %v", stage.DifficultyRate)
	}

	colors := []struct {
		name  string
		value []int
	}{
		{"textColor", stage.TextColor},
		{"bgColor", stage.BgColor},
		{"fgColor", stage.FgColor},
		{"trailColor", stage.TrailColor},
	}
	for _, c := range colors {
		if len(c.value) != 3 {
			return fmt.Errorf("%s must have exactly 3 components, got %d", c.name, len(c.value))
		}
		for i, v := range c.value {
			if v < 0 || v > 255 {
				return fmt.Errorf("%s[%d] must be between 0 and 255, got %d", c.name, i, v)
			}
		}
	}

	return nil
}

// ========== 按波次计算的派生参数 ==========

// Difficulty 难度系数：difficultyBase + wave * difficultyRate
func (s *StageConfig) Difficulty(wave int) float64 {
	return s.DifficultyBase + float64(wave)*s.DifficultyRate
}

// SpawnInterval 第 wave 波的敌人生成间隔（秒）
// 不设下限
func (s *StageConfig) SpawnInterval(wave int) float64 {
	return s.SpawnIntervalSecs / s.Difficulty(wave)
}

// SplitInterval 第 wave 波的分裂判定间隔（秒）
func (s *StageConfig) SplitInterval(wave int) float64 {
	return s.SplitIntervalSecs / s.Difficulty(wave)
}

// EnemiesCount 第 wave 波需要生成的敌人总数（截断取整）
func (s *StageConfig) EnemiesCount(wave int) int {
	return int(s.EnemiesCountBase * s.Difficulty(wave))
}

// MissileSpawnMinAt 第 wave 波每次生成的导弹数量下限
func (s *StageConfig) MissileSpawnMinAt(wave int) int {
	return s.MissileSpawnMin + wave/4
}

// MissileSpawnMaxAt 第 wave 波每次生成的导弹数量上限（含）
func (s *StageConfig) MissileSpawnMaxAt(wave int) int {
	return max(s.MissileSpawnMax+wave/2, s.MissileSpawnMinAt(wave))
}

// MissileSpeed 第 wave 波的敌方导弹速度
func (s *StageConfig) MissileSpeed(wave int) float64 {
	return s.MissileSpeedBase + float64(wave)*s.DifficultyRate*2.0
}

// UfoSpeed 第 wave 波的 UFO 速度
// 不设上限
func (s *StageConfig) UfoSpeed(wave int) float64 {
	return s.UfoSpeedBase + float64(wave)*s.DifficultyRate*3.3
}

// SplitChance 第 wave 波的分裂概率，最大 1.0
func (s *StageConfig) SplitChance(wave int) float64 {
	return min(1.0, s.SplitChanceBase+0.01*float64(wave))
}

// UfoChance 第 wave 波出现 UFO 的概率，最大 1.0
func (s *StageConfig) UfoChance(wave int) float64 {
	return min(1.0, s.UfoChanceBase+0.01*float64(wave))
}

// DropBombChance 第 wave 波 UFO 投弹概率，最大 1.0
func (s *StageConfig) DropBombChance(wave int) float64 {
	return min(1.0, s.DropBombChanceBase+0.01*float64(wave))
}

// MaxSplit 第 wave 波一枚导弹分裂出的数量
func (s *StageConfig) MaxSplit(wave int) int {
	return s.MaxSplitBase + wave/10
}

// ColorFromVec 将 [r, g, b] 转换为颜色，格式不对时返回白色
func ColorFromVec(c []int) color.RGBA {
	if len(c) != 3 {
		return color.RGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}
