// Package assets 负责图片资源的加载与缓存
package assets

import (
	_ "image/png" // Register PNG decoder
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// DefaultImageDir 图片资源的默认目录
const DefaultImageDir = "assets/images"

// ResourceManager 集中管理图片资源
//
// 图片按资源名（如 "player"）加载，对应文件为 <imageDir>/<name>.png。
// 加载成功的图片会被缓存；加载失败只记录一次警告并返回 nil，
// 调用方据此改用纯色矩形占位，游戏逻辑不受影响。
//
// 非线程安全：只在游戏主循环中使用。
type ResourceManager struct {
	imageDir   string
	imageCache map[string]*ebiten.Image // 资源名 -> 图片
	missing    map[string]bool          // 加载失败过的资源名，避免每帧重复读盘
}

// NewResourceManager 创建资源管理器
// imageDir 为空时使用 DefaultImageDir
func NewResourceManager(imageDir string) *ResourceManager {
	if imageDir == "" {
		imageDir = DefaultImageDir
	}
	return &ResourceManager{
		imageDir:   imageDir,
		imageCache: make(map[string]*ebiten.Image),
		missing:    make(map[string]bool),
	}
}

// ImagePath 返回资源名对应的文件路径
func (rm *ResourceManager) ImagePath(name string) string {
	return filepath.Join(rm.imageDir, name+".png")
}

// LoadImage 加载并缓存图片
// 文件缺失或无法解码时记录警告并返回 nil
func (rm *ResourceManager) LoadImage(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	if img, exists := rm.imageCache[name]; exists {
		return img
	}
	if rm.missing[name] {
		return nil
	}

	path := rm.ImagePath(name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("[ResourceManager] Warning: failed to load image %s: %v, falling back to placeholder", path, err)
		rm.missing[name] = true
		return nil
	}

	rm.imageCache[name] = img
	return img
}

// GetImage 只查询缓存，不触发加载
func (rm *ResourceManager) GetImage(name string) *ebiten.Image {
	return rm.imageCache[name]
}

// IsMissing 资源是否已确认缺失
func (rm *ResourceManager) IsMissing(name string) bool {
	return rm.missing[name]
}

// Preload 预加载一组图片，返回成功加载的数量
func (rm *ResourceManager) Preload(names ...string) int {
	loaded := 0
	for _, name := range names {
		if rm.LoadImage(name) != nil {
			loaded++
		}
	}
	log.Printf("[ResourceManager] Preloaded %d/%d images from %s", loaded, len(names), rm.imageDir)
	return loaded
}
