package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// HighScore 单个关卡的最佳记录
type HighScore struct {
	Score int `yaml:"score"` // 最高分
	Wave  int `yaml:"wave"`  // 最远到达的波次
}

// HighScoreTable 按关卡名称索引的最佳记录
type HighScoreTable struct {
	Stages map[string]HighScore `yaml:"stages"`
}

// HighScoreManager 最高分管理器
// 负责最佳记录的加载、保存和内存管理
type HighScoreManager struct {
	gdataManager *gdata.Manager // gdata 跨平台存储管理器，可为 nil（降级模式）
	table        *HighScoreTable
}

// 存储路径常量
const (
	scoresObject   = "scores"
	scoresProperty = "best"
)

// newHighScoreTable 返回空记录表
func newHighScoreTable() *HighScoreTable {
	return &HighScoreTable{Stages: make(map[string]HighScore)}
}

// NewHighScoreManager 创建最高分管理器
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式，只保存在内存）
//
// 返回：
//   - *HighScoreManager: 管理器实例，加载失败时使用空记录表
func NewHighScoreManager(gdataManager *gdata.Manager) *HighScoreManager {
	hm := &HighScoreManager{
		gdataManager: gdataManager,
		table:        newHighScoreTable(),
	}

	if err := hm.Load(); err != nil {
		log.Printf("[HighScoreManager] Warning: Failed to load high scores: %v (starting empty)", err)
	}

	return hm
}

// Load 从 gdata 加载记录
// gdataManager 为 nil 或记录不存在时使用空记录表
func (hm *HighScoreManager) Load() error {
	if hm.gdataManager == nil {
		hm.table = newHighScoreTable()
		return nil
	}

	if !hm.gdataManager.ObjectPropExists(scoresObject, scoresProperty) {
		hm.table = newHighScoreTable()
		return nil
	}

	data, err := hm.gdataManager.LoadObjectProp(scoresObject, scoresProperty)
	if err != nil {
		hm.table = newHighScoreTable()
		return fmt.Errorf("failed to load high scores: %w", err)
	}

	var loaded HighScoreTable
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		hm.table = newHighScoreTable()
		return fmt.Errorf("failed to unmarshal high scores: %w", err)
	}
	if loaded.Stages == nil {
		loaded.Stages = make(map[string]HighScore)
	}

	hm.table = &loaded
	log.Printf("[HighScoreManager] Loaded %d stage records", len(loaded.Stages))
	return nil
}

// Save 保存记录到 gdata
// gdataManager 为 nil 时直接返回 nil
func (hm *HighScoreManager) Save() error {
	if hm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(hm.table)
	if err != nil {
		return fmt.Errorf("failed to marshal high scores: %w", err)
	}

	if err := hm.gdataManager.SaveObjectProp(scoresObject, scoresProperty, data); err != nil {
		return fmt.Errorf("failed to save high scores: %w", err)
	}

	log.Printf("[HighScoreManager] High scores saved")
	return nil
}

// Get 返回关卡的最佳记录，没有记录时返回零值
func (hm *HighScoreManager) Get(stage string) HighScore {
	return hm.table.Stages[stage]
}

// Record 提交一局的结果
// 分数和波次分别取最大值；有任意一项刷新时返回 true 并保存
func (hm *HighScoreManager) Record(stage string, score, wave int) (bool, error) {
	best := hm.table.Stages[stage]
	improved := false
	if score > best.Score {
		best.Score = score
		improved = true
	}
	if wave > best.Wave {
		best.Wave = wave
		improved = true
	}
	if !improved {
		return false, nil
	}

	hm.table.Stages[stage] = best
	log.Printf("[HighScoreManager] New best for %s: score=%d wave=%d", stage, best.Score, best.Wave)
	return true, hm.Save()
}
