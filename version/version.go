// Package version checks for newer huestep releases.
package version

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/huestep/huestep/constant"
	"github.com/huestep/huestep/filesystem"
	"github.com/huestep/huestep/log"
	"github.com/huestep/huestep/util"
	"github.com/huestep/huestep/where"
	"github.com/metafates/gache"
)

// ReleasesURL points at the latest tagged release of the project.
const ReleasesURL = "https://api.github.com/repos/huestep/huestep/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

var client = &http.Client{Timeout: 5 * time.Second}

// Latest returns the newest released version without the leading "v".
// Results are cached for two days.
func Latest() (version string, err error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	version, err = fetch(context.Background(), ReleasesURL)
	if err != nil {
		log.Warnf("version check failed: %s", err)
		return "", err
	}

	_ = versionCacher.Set(version)
	return version, nil
}

func fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", constant.Huestep+"/"+constant.Version)

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var release struct {
		TagName string `json:"tag_name"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	return strings.TrimPrefix(release.TagName, "v"), nil
}
