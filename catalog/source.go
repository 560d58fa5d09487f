package catalog

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	getter "github.com/hashicorp/go-getter"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// Resolve turns a configured catalog source into a local directory. Local
// directories are used in place; anything else is treated as a go-getter URL
// (git::, https://, file://, s3://, ...) and fetched into the workspace.
func Resolve(ctx context.Context, source, workspace string) (string, error) {
	expanded, err := expandPath(source)
	if err == nil {
		if info, statErr := os.Stat(expanded); statErr == nil && info.IsDir() {
			return expanded, nil
		}
	}

	pwd, err := os.Getwd()
	if err != nil {
		pwd = "."
	}

	detected, err := getter.Detect(source, pwd, getter.Detectors)
	if err != nil {
		return "", errors.NewCatalogError("cannot resolve catalog source %q: %v", source, err)
	}

	dst := filepath.Join(workspace, "catalog")
	log := logger.ComponentLogger("catalog.fetch")
	log.Infow("fetching remote catalog",
		logger.FieldCatalog, source,
		logger.FieldPath, dst)

	client := &getter.Client{
		Ctx:  ctx,
		Src:  detected,
		Dst:  dst,
		Pwd:  pwd,
		Mode: getter.ClientModeDir,
	}
	if err := client.Get(); err != nil {
		return "", errors.WithHint(
			errors.NewCatalogError("failed to fetch catalog from %q: %v", source, err),
			"check the catalog.source URL and network access")
	}

	return dst, nil
}

// expandPath handles ~ expansion; go-getter doesn't do this.
func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to get home directory")
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrap(err, "failed to get home directory")
		}
		return home, nil
	}
	return filepath.Abs(path)
}
