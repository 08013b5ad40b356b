//go:build release

package main

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed all:templates
var embedTemplatesFS embed.FS

//go:embed all:static
var embedStaticFS embed.FS

func init() {
	log.Println("发布模式: 使用嵌入的模板和静态文件")
	templatesFS = mustSub(embedTemplatesFS, "templates")
	staticFS = mustSub(embedStaticFS, "static")
}

func mustSub(fsys embed.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		log.Fatalf("无法创建嵌入目录 %s 的子文件系统: %v", dir, err)
	}
	return sub
}
