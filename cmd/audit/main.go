// Command audit checks every blog content file and reports the ones that
// fail to load. It exits with status 1 when any file is malformed or is
// skipped because its name is not a valid slug.
package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"folio/internal/repository"
)

func main() {
	dir := flag.String("dir", repository.DefaultContentDir, "blog content directory")
	ext := flag.String("ext", repository.DefaultExtension, "content file extension")
	quiet := flag.Bool("q", false, "only print files with problems")
	flag.Parse()

	repo := repository.NewPostRepository(repository.PostRepositoryConfig{
		Dir:       *dir,
		Extension: *ext,
	})

	results := repo.Audit()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	malformed, skipped := 0, 0
	for _, r := range results {
		switch r.Status {
		case repository.StatusMalformed:
			malformed++
		case repository.StatusSkipped:
			skipped++
		default:
			if *quiet {
				continue
			}
		}

		detail := ""
		if r.OK() {
			detail = r.Post.Title
		} else if r.Err != nil {
			detail = r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.Slug, r.Status, detail)
	}
	w.Flush()

	fmt.Printf("%s: %d files, %d malformed, %d skipped\n", repo.Dir(), len(results), malformed, skipped)
	if malformed > 0 || skipped > 0 {
		os.Exit(1)
	}
}
