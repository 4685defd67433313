package game

import "time"

// Clock 单调递增的游戏时钟，返回游戏开始后的毫秒数
type Clock interface {
	Now() int64
}

// RealClock 基于系统单调时钟
type RealClock struct {
	start time.Time
}

// NewRealClock 以当前时刻为零点创建时钟
func NewRealClock() *RealClock {
	return &RealClock{start: time.Now()}
}

// Now 返回自创建以来经过的毫秒数
func (c *RealClock) Now() int64 {
	return time.Since(c.start).Milliseconds()
}

// ManualClock 手动推进的时钟，用于测试和无窗口模拟
type ManualClock struct {
	now int64
}

// NewManualClock 创建从 start 毫秒开始的手动时钟
func NewManualClock(start int64) *ManualClock {
	return &ManualClock{now: start}
}

// Now 返回当前时间
func (c *ManualClock) Now() int64 {
	return c.now
}

// Advance 推进 ms 毫秒
func (c *ManualClock) Advance(ms int64) {
	c.now += ms
}

// Set 设置为指定时间
func (c *ManualClock) Set(ms int64) {
	c.now = ms
}

// TickDuration 按逻辑帧率计算一帧的毫秒数
func TickDuration(tps int) int64 {
	if tps <= 0 {
		return 0
	}
	return int64(1000 / tps)
}
