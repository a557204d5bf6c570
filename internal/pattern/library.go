package pattern

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed library/*.rle
var library embed.FS

// Library returns the built-in patterns as a filesystem of name.rle files.
func Library() fs.FS {
	sub, err := fs.Sub(library, "library")
	if err != nil {
		panic(err)
	}
	return sub
}

// Builtins lists the built-in pattern names, without extension.
func Builtins() []string {
	entries, _ := fs.ReadDir(library, "library")
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}
	sort.Strings(names)
	return names
}

// BuiltinFile maps a built-in pattern name to its file in Library.
func BuiltinFile(name string) string { return name + ".rle" }
