package main

import "io/fs"

// FS groups together the filesystem interfaces that are common between
// embed.FS and what os.DirFS() returns. Config, scripts and images are all
// read through an FS, so the robot works the same with the data folder on
// disk or embedded in the binary.
type FS interface {
	fs.FS
	fs.ReadFileFS
	fs.ReadDirFS
}
