// Command mapdeprotect reconstructs tag-class identifiers in a
// protected map image and writes the result to a new file.
//
// Argument handling here is intentionally bare: per the core package's
// scope, richer CLI ergonomics (flag validation, help text, config
// files) are an external collaborator's job, not this system's.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/retrosector/deprotect/mapimage"
)

func main() {
	rename := flag.Bool("rename", false, "also synthesize placeholder names for deprotected tags")
	flag.Parse()
	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: mapdeprotect [-rename] <input.map> <output.map>")
		os.Exit(2)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	h, err := mapimage.OpenPath(args[0])
	if err != nil {
		logger.Error("open failed", "path", args[0], "err", err)
		os.Exit(1)
	}
	if h.Err != nil {
		logger.Error("invalid map", "path", args[0], "err", h.Err)
		os.Exit(1)
	}

	out, report, err := mapimage.Deprotect(h)
	if err != nil {
		logger.Error("deprotect failed", "err", err)
		os.Exit(1)
	}
	logger.Info("deprotect complete",
		"tags_visited", report.TagsVisited,
		"edges_pruned", report.EdgesPruned,
		"unknown_discriminants", report.UnknownDiscriminants,
	)

	if *rename {
		out, err = mapimage.Rename(out, nil, nil)
		if err != nil {
			logger.Error("rename failed", "err", err)
			os.Exit(1)
		}
		logger.Info("rename complete")
	}

	if err := mapimage.Save(args[1], out); err != nil {
		logger.Error("save failed", "path", args[1], "err", err)
		os.Exit(1)
	}
}
