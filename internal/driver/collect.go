package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
)

// collectFiles expands paths into a sorted, de-duplicated file list.
// Directories are walked recursively, keeping files whose extension is in
// exts and skipping directories whose base name is in exclude. Files named
// explicitly are always kept.
func collectFiles(ctx context.Context, paths, exts, exclude []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}
		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if d.IsDir() {
				if path != p && slices.Contains(exclude, d.Name()) {
					return fs.SkipDir
				}
				return nil
			}
			if slices.Contains(exts, filepath.Ext(path)) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	sort.Strings(files)
	return files, nil
}
