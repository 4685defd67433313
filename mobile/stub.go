//go:build !mobile

// 桌面构建下 mobile 包只剩这个空壳，
// 让 go build ./... 与 go vet ./... 在不带 -tags mobile 时也能通过。
package mobile

// Dummy 与 mobile.go 中的同名函数保持一致
func Dummy() {}
