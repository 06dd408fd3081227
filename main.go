package main

import (
	"embed"
	"log/slog"
	"os"
	"time"
)

//go:embed data/*
var embeddedFiles embed.FS

func main() {
	devModeEnabled := len(os.Args) == 2 && os.Args[1] == "developer-mode-enabled"

	// Use the data folder next to the executable if there is one, so the
	// config can be edited on the device. Otherwise use the embedded copy.
	var fsys FS
	onDisk := FileExists(DiskFS("."), "data")
	if onDisk {
		fsys = DiskFS(".")
	} else {
		fsys = &embeddedFiles
	}

	cfg, err := LoadConfig(fsys, devModeEnabled)
	Check(err)
	log := NewLogger(cfg.LogLevel)
	log.Info("starting",
		slog.String("config", ConfigFile(devModeEnabled)),
		slog.Bool("embedded", !onDisk),
		slog.Any("modules", cfg.EnabledModules))

	robot := NewRobot(cfg, fsys, SystemClock{}, &EbitenInput{},
		uint64(time.Now().UnixNano()), log)
	if devModeEnabled && onDisk {
		robot.WatchFolder("data")
	}
	Check(robot.Run())
}
