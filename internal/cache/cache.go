// Package cache prunes stale artifacts from the cache and temp directories.
package cache

import (
	"os"
	"path/filepath"
	"time"

	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/log"
	"github.com/huestep/huestep/util"
)

// TTL is how long an interrupted write may linger before it is removed.
const TTL = 24 * time.Hour

// CollectGarbage removes leftover ".tmp" files older than TTL under each dir.
// It returns the number of removed files.
func CollectGarbage(dirs ...string) int {
	fs := filesystem.API()
	var removed int

	for _, dir := range dirs {
		_ = fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}

			if filepath.Ext(path) != ".tmp" || time.Since(info.ModTime()) <= TTL {
				return nil
			}

			if err := fs.Remove(path); err != nil {
				log.Warnf("could not remove %s: %s", path, err)
				return nil
			}

			removed++
			return nil
		})
	}

	if removed > 0 {
		log.Infof("removed %s", util.Quantify(removed, "stale file", "stale files"))
	}

	return removed
}
