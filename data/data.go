// Package data 嵌入游戏的 YAML 配置文件
//
// embed 指令只能嵌入本包目录及其子目录的文件，
// 因此配置文件与本文件放在同一目录，桌面端和移动端共用。
package data

import "embed"

// FS 包含 tuning.yaml 与 catalog.yaml
//
//go:embed *.yaml
var FS embed.FS
