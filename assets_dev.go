//go:build !release

package main

import (
	"log"
	"os"
)

// In development templates and static files are read from disk on every
// request, so edits show up without a rebuild.
func init() {
	for _, dir := range []string{"templates", "static"} {
		if _, err := os.Stat(dir); err != nil {
			log.Fatalf("找不到目录 %s，请在项目根目录下运行: %v", dir, err)
		}
	}
	log.Println("调试模式: 从文件系统加载模板和静态文件")
	templatesFS = os.DirFS("templates")
	staticFS = os.DirFS("static")
}
