/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config centralizes the few knobs the core and its CLI need:
// log level, evaluation weights, and the starting position. There is no
// search section - the search driver that would consume one is out of
// scope for this core.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"chesscore/util"
)

// globally available config values
var (
	// LogLevel is the general log level, set by default or overridden by
	// the config file.
	LogLevel = 4

	// Settings is the global configuration, populated by Setup from a
	// TOML file on top of the package defaults set by each section's init.
	Settings conf

	initialized = false
)

type conf struct {
	Log  logConfiguration
	Eval evalConfiguration
	Core coreConfiguration
}

// Setup reads path (a TOML file) over the section defaults. A relative path
// is resolved against the working directory, the executable's directory and
// the user's home directory, in that order, before falling back to path as
// given. Safe to call more than once; only the first call has effect. A
// missing or malformed file is not fatal - the defaults already set by each
// section's init remain in place, and the error is only reported.
func Setup(path string) {
	if initialized {
		return
	}
	if path != "" {
		resolved, err := util.ResolveFile(path)
		if err != nil {
			resolved = path
		}
		if _, err := toml.DecodeFile(resolved, &Settings); err != nil {
			fmt.Println(err)
		}
	}
	setupLogLvl()
	initialized = true
}
