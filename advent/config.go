package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os/user"
	"path/filepath"

	"github.com/vaughan0/go-ini"
)

const defaultInput = "input"

// config holds per-day settings read from an INI file such as
//
//	[day11]
//	input = /home/me/aoc/2024/11.txt
type config struct {
	file ini.File
}

func defaultConfigPath() string {
	u, err := user.Current()
	if err != nil || u.HomeDir == "" {
		return ""
	}
	return filepath.Join(u.HomeDir, ".advent.ini")
}

// loadConfig reads the INI file at name. If required is false, a missing
// file yields an empty config.
func loadConfig(name string, required bool) (*config, error) {
	if name == "" {
		return &config{file: make(ini.File)}, nil
	}
	f, err := ini.LoadFile(name)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return &config{file: make(ini.File)}, nil
		}
		return nil, fmt.Errorf("error loading config (%s): %s", name, err)
	}
	return &config{file: f}, nil
}

// inputPath picks the input file for a day: the command-line argument if
// given, else the day's configured input, else ./input.
func (c *config) inputPath(day string, arg string) string {
	if arg != "" {
		return arg
	}
	if p, ok := c.file.Get("day"+day, "input"); ok && p != "" {
		return p
	}
	return defaultInput
}
