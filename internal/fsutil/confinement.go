// Package fsutil keeps generated output inside its target directory.
package fsutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnsafePath classifies every rejection made by this package.
var ErrUnsafePath = errors.New("unsafe path")

// ConfineRelPath ensures that joining root and relTarget results in a path that is physically
// underneath the resolved path of root. It protects against symlink traversal and backslash bypass.
// The target MUST be relative.
func ConfineRelPath(root, relTarget string) (string, error) {
	if strings.Contains(relTarget, "\\") {
		return "", fmt.Errorf("%w: contains backslash: %q", ErrUnsafePath, relTarget)
	}

	cleanRel := filepath.Clean(relTarget)
	if filepath.IsAbs(cleanRel) {
		return "", fmt.Errorf("%w: must be relative: %q", ErrUnsafePath, relTarget)
	}
	// Segment-based so that names like "a..b" remain valid.
	if cleanRel == ".." || strings.HasPrefix(cleanRel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: traversal attempt: %q", ErrUnsafePath, relTarget)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("invalid root path: %w", err)
	}
	realRoot, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("resolve root: %w", err)
		}
		realRoot = absRoot
	}

	return resolveAndCheck(realRoot, filepath.Join(realRoot, cleanRel))
}

// SegmentDir returns root/name after checking that name is exactly one
// non-dot path segment. Content identifiers become directory names through it.
func SegmentDir(root, name string) (string, error) {
	switch {
	case strings.TrimSpace(name) == "":
		return "", fmt.Errorf("%w: empty segment", ErrUnsafePath)
	case name == "." || name == "..":
		return "", fmt.Errorf("%w: dot segment %q", ErrUnsafePath, name)
	case strings.ContainsAny(name, "/\\\x00"):
		return "", fmt.Errorf("%w: separator in segment %q", ErrUnsafePath, name)
	}
	return ConfineRelPath(root, name)
}

// resolveAndCheck resolves symlinks on fullPath (or its parent when it does
// not exist yet) and ensures the result stays within realRoot.
func resolveAndCheck(realRoot, fullPath string) (string, error) {
	realPath := fullPath
	if _, err := os.Lstat(fullPath); err == nil {
		rp, err := filepath.EvalSymlinks(fullPath)
		if err != nil {
			return "", fmt.Errorf("resolve path: %w", err)
		}
		realPath = rp
	} else if rp, err := filepath.EvalSymlinks(filepath.Dir(fullPath)); err == nil {
		realPath = filepath.Join(rp, filepath.Base(fullPath))
	}

	rel, err := filepath.Rel(realRoot, realPath)
	if err != nil {
		return "", fmt.Errorf("rel computation failed: %w", err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: escapes root via symlinks: %s", ErrUnsafePath, realPath)
	}
	return realPath, nil
}

// IsRegularFile checks if path exists and is a regular file (not directory, device, etc).
func IsRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("not a regular file: %s", path)
	}
	return nil
}
