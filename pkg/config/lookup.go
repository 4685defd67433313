package config

// centeredOffsets 表外数量的回退：单发居中
var centeredOffsets = []float64{0}

// lookupOffsets 按数量查表，表中没有时回退为单发居中，不视为错误
func lookupOffsets(table map[int][]float64, count int) []float64 {
	if offsets, ok := table[count]; ok && len(offsets) > 0 {
		return offsets
	}
	return centeredOffsets
}

// PlayerBulletOffsets 玩家一次齐射的水平偏移
func (c *GameConfig) PlayerBulletOffsets(count int) []float64 {
	return lookupOffsets(c.Player.BulletOffsets, count)
}

// WingmanBulletOffsets 僚机一次齐射的水平偏移
func (c *GameConfig) WingmanBulletOffsets(count int) []float64 {
	return lookupOffsets(c.Wingman.BulletOffsets, count)
}

// BossBulletOffsets 头目在指定弹幕等级下的水平偏移
func (c *GameConfig) BossBulletOffsets(level int) []float64 {
	return lookupOffsets(c.Boss.BulletOffsets, level)
}

// WingmanFormation 返回指定僚机数量的编队位置，数量不在表中时返回 nil
func (c *GameConfig) WingmanFormation(count int) []FormationSlot {
	return c.Wingman.Formations[count]
}

// BossLevelForHealth 生命值对应的弹幕等级（阶梯函数）
// 默认配置下：>400000 为 1，(300000,400000] 为 2，……，<=100000 为 5
func (c *GameConfig) BossLevelForHealth(health int) int {
	level := 1
	for _, threshold := range c.Boss.LevelThresholds {
		if health <= threshold {
			level++
		}
	}
	return level
}
