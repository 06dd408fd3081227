package main

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

// Check is for errors the program cannot recover from, which in this program
// means errors during startup. Once the robot is running, errors are logged
// and the eyes keep going.
func Check(e error) {
	if e != nil {
		panic(e)
	}
}

// CleanAssetPath turns a path from an event or a config file into a path
// usable with an FS: forward slashes, no "./" prefix.
func CleanAssetPath(name string) string {
	return path.Clean(strings.TrimPrefix(filepath.ToSlash(name), "./"))
}

func LoadImage(fsys FS, name string) (img image.Image, err error) {
	name = CleanAssetPath(name)
	file, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image %s: %w", name, err)
	}
	defer CloseFile(file)

	img, _, err = image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", name, err)
	}
	return img, nil
}

func CloseFile(f fs.File) {
	_ = f.Close()
}

func FileExists(fsys FS, name string) bool {
	file, err := fsys.Open(name)
	if err == nil {
		CloseFile(file)
		return true
	} else {
		return false
	}
}

// DiskFS returns the folder root as an FS.
func DiskFS(root string) FS {
	return os.DirFS(root).(FS)
}

// NewLogger builds the text logger used everywhere. Unknown levels fall back
// to info.
func NewLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

// FolderWatcher detects when files in a folder change. It is used in
// developer mode to reload the config while the robot runs.
type FolderWatcher struct {
	Folder string
	times  []time.Time
}

// FolderContentsChanged compares the modification times of the files in the
// folder with the ones seen on the previous call. The first call only
// records the times. An unreadable folder counts as unchanged.
func (f *FolderWatcher) FolderContentsChanged() bool {
	if f.Folder == "" {
		return false
	}

	files, err := os.ReadDir(f.Folder)
	if err != nil {
		return false
	}
	first := f.times == nil
	if len(files) != len(f.times) {
		f.times = make([]time.Time, len(files))
	}
	changed := false
	for idx, file := range files {
		info, err := file.Info()
		if err != nil {
			continue
		}
		if f.times[idx] != info.ModTime() {
			changed = true
			f.times[idx] = info.ModTime()
		}
	}
	return changed && !first
}
