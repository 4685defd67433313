package game

// Point 屏幕坐标点
type Point struct {
	X float64
	Y float64
}

// InputState 一帧的输入快照
//
// 由场景层从窗口事件采集，模拟层只读取这个结构，不直接访问键盘鼠标。
type InputState struct {
	MoveLeft  bool    // 左移键按住
	MoveRight bool    // 右移键按住
	Clicks    []Point // 本帧发生的鼠标点击
	Quit      bool    // 退出请求
}
