//go:build mobile

// embed.go - 移动端数据嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// go:embed 无法引用上级目录，构建前先复制配置文件：
//
//	go generate ./mobile
//	go build -tags mobile ./mobile
package mobile

import "embed"

//go:generate mkdir -p data
//go:generate cp ../data/game.yaml data/game.yaml

//go:embed data/game.yaml
var dataFS embed.FS
