package common

import (
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/90mp11/ProjectReportCreator/lib/consoles"
	"github.com/90mp11/ProjectReportCreator/lib/utils"
)

// FindAndImportFiles expands the patterns, which can use ** globs, and
// runs process on every match. A pattern matching nothing is an error,
// since that is almost always a typo.
func FindAndImportFiles(console consoles.Console, name string, patterns []string, process func(string) error) error {
	console.Printf("Finding %v...\n", name)

	var queue []string

	for _, pattern := range patterns {
		pattern, err := utils.PathAbs(pattern)
		if err != nil {
			return err
		}

		files, err := doublestar.FilepathGlob(pattern, doublestar.WithFilesOnly())
		if err != nil {
			return errors.Wrapf(err, "invalid pattern %v", pattern)
		}

		if len(files) == 0 {
			return errors.Errorf("no files match %v", pattern)
		}

		queue = append(queue, files...)
	}

	queue = lo.Uniq(queue)
	sort.Strings(queue)

	console.Printf("Importing %v...\n", name)

	return ImportFiles(queue, process)
}

// ImportFiles runs process on each file behind a progress bar.
func ImportFiles(queue []string, process func(string) error) error {
	bar := utils.NewProgressBar(len(queue))

	for _, file := range queue {
		bar.Describe(utils.TruncateFilename(file))

		err := process(file)
		if err != nil {
			return err
		}

		_ = bar.Add(1)
	}

	return nil
}
