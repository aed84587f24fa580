package asset

import (
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultDir is the piece directory picked up from the working directory
const DefaultDir = "pieces"

// SourceEmbedded names the built-in set in Set.Source
const SourceEmbedded = "embedded"

// LoadAuto loads with priority: explicit dir, ./pieces if present, embedded defaults
func LoadAuto(dir string) (*Set, error) {
	// Priority 1: Custom path from CLI
	if dir != "" {
		return LoadDir(dir)
	}

	// Priority 2: Default external directory
	if fileExists(path.Join(DefaultDir, BoardFile)) {
		return LoadDir(DefaultDir)
	}

	// Priority 3: Embedded fallback
	return LoadDefault()
}

// LoadDefault builds the embedded chess set
func LoadDefault() (*Set, error) {
	return Load(DefaultFiles, SourceEmbedded)
}

// LoadDir reads board.toml and <TYPE>.toml files from a directory
func LoadDir(dir string) (*Set, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrapf(err, "piece directory %s", dir)
	}
	return LoadFS(os.DirFS(dir), dir)
}

// LoadFS reads the top-level .toml files of fsys
func LoadFS(fsys fs.FS, source string) (*Set, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", source)
	}

	files := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		data, err := fs.ReadFile(fsys, e.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "read %s/%s", source, e.Name())
		}
		files[e.Name()] = string(data)
	}
	return Load(files, source)
}

func fileExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && !info.IsDir()
}

func warnUndecoded(name string, md toml.MetaData) {
	for _, key := range md.Undecoded() {
		log.Printf("asset: %s: unknown key %s", name, key.String())
	}
}
