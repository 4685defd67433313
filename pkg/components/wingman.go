package components

// WingmanComponent 僚机标记
// 僚机不自主移动也不自主开火：位置每帧由玩家编队表重算，发射时机与数量跟随玩家
type WingmanComponent struct{}
