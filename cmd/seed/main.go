// Command seed writes generated posts into a content directory for load
// testing the blog.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"folio/internal/models"
	"folio/internal/repository"

	"github.com/gosimple/slug"
)

const body = `
# Performance test post

This post was generated by the seed command to load test the blog.

## Widgets

<PESVisualization />

<MathEquation label="Energy">E = \hbar \omega</MathEquation>

## Lists

- item one
- item **two**
- item *three*

## Code

` + "```go" + `
package main

import "fmt"

func main() {
	fmt.Println("Hello, World!")
}
` + "```" + `

## Long text

Lorem ipsum dolor sit amet, consectetur adipiscing elit. Sed non risus. Suspendisse lectus tortor, dignissim sit amet, adipiscing nec, ultricies sed, dolor. Cras elementum ultrices diam. Maecenas ligula massa, varius a, semper congue, euismod non, mi. Proin porttitor, orci nec nonummy molestie, enim est eleifend mi, non fermentum diam nisl sit amet erat.

Pellentesque habitant morbi tristique senectus et netus et malesuada fames ac turpis egestas. Vestibulum tortor quam, feugiat vitae, ultricies eget, tempor sit amet, ante. Donec eu libero sit amet quam egestas semper. See [the docs](https://example.com) for more.
`

var tags = [][]string{
	{"Computational Chemistry", "DFT"},
	{"Quantum Chemistry"},
	{"Reaction Mechanisms", "Computational Chemistry"},
	{"Python"},
}

func main() {
	dir := flag.String("dir", repository.DefaultContentDir, "output directory")
	total := flag.Int("n", 1000, "number of posts to generate")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("创建目录失败: %v", err)
	}

	log.Printf("准备生成 %d 篇文章...", *total)
	start := time.Now()
	for i := 1; i <= *total; i++ {
		title := fmt.Sprintf("Performance Test Post %d", i)
		post := &models.Post{
			PostMeta: models.PostMeta{
				Title:       title,
				Excerpt:     fmt.Sprintf("Generated post number %d.", i),
				PublishedAt: start.Add(-time.Duration(i) * time.Hour).UTC().Truncate(time.Second),
				Tags:        tags[i%len(tags)],
				Featured:    i%50 == 0,
			},
			Content: fmt.Sprintf("This is the content of post %d.\n%s", i, body),
		}

		data, err := repository.MarshalPost(post)
		if err != nil {
			log.Printf("生成文章失败 %d: %v", i, err)
			continue
		}
		path := filepath.Join(*dir, slug.Make(title)+repository.DefaultExtension)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			log.Fatalf("写入文件失败 %s: %v", path, err)
		}

		if i%100 == 0 {
			log.Printf("已生成 %d/%d 篇文章...", i, *total)
		}
	}
	log.Printf("成功生成 %d 篇文章。", *total)
}
