package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// splitName splits a grouped color name into its group segments and the
// color set's base name.
func splitName(name string) (groups []string, base string, err error) {
	if name == "" {
		return nil, "", fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	segs := strings.Split(name, "/")
	for _, s := range segs {
		if s == "" || s == "." || s == ".." {
			return nil, "", fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return segs[:len(segs)-1], segs[len(segs)-1], nil
}

// Locate finds the color set for name inside the catalog rooted at fsys
// and decodes its Contents.json.
//
// name may contain "/"-separated group segments. Each group must exist as a
// directory; the final segment names the color set, matched exactly
// (case-sensitive) against "<segment>.colorset". Entry names are compared in
// Unicode NFC so decomposed file names still match.
//
// Every call reads storage; nothing is cached.
func Locate(fsys fs.FS, name string) (Definition, error) {
	groups, base, err := splitName(name)
	if err != nil {
		return Definition{}, err
	}

	dir := "."
	for _, g := range groups {
		dir = path.Join(dir, g)
		info, err := fs.Stat(fsys, dir)
		if err != nil || !info.IsDir() {
			return Definition{}, fmt.Errorf("%w: %s", ErrGroupNotFound, dir)
		}
	}

	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %s: %w", ErrGroupNotFound, dir, err)
	}

	want := norm.NFC.String(base + ColorSetExt)
	var setDir string
	for _, e := range entries {
		if norm.NFC.String(e.Name()) == want {
			setDir = path.Join(dir, e.Name())
			break
		}
	}
	if setDir == "" {
		return Definition{}, fmt.Errorf("%w: %s", ErrColorSetNotFound, name)
	}

	data, err := fs.ReadFile(fsys, path.Join(setDir, ContentsFile))
	if err != nil {
		return Definition{}, fmt.Errorf("%w: %s: %w", ErrContentsUnreadable, setDir, err)
	}

	def, err := Decode(data)
	if err != nil {
		return Definition{}, fmt.Errorf("%s: %w", setDir, err)
	}
	return def, nil
}

// List returns the names of every color set in the catalog rooted at fsys,
// with groups joined by "/", in lexical order.
func List(fsys fs.FS) ([]string, error) {
	var names []string
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			if p == "." {
				return err
			}
			// Unreadable subtrees are skipped.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.IsDir() || p == "." {
			return nil
		}
		if strings.HasSuffix(d.Name(), ColorSetExt) {
			names = append(names, strings.TrimSuffix(p, ColorSetExt))
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

// IsNotFound reports whether err means the color set does not exist, as
// opposed to existing but being unreadable or malformed.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGroupNotFound) ||
		errors.Is(err, ErrColorSetNotFound) ||
		errors.Is(err, ErrInvalidName)
}
