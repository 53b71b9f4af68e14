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

// chesscore is a minimal CLI over the core: load a FEN, print the board,
// evaluate it, and optionally run a profiled perft. It is not a UCI
// front-end - that is a separate external collaborator wired on top of
// this core.
package main

import (
	"flag"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"chesscore/config"
	"chesscore/evaluator"
	"chesscore/logging"
	"chesscore/movegen"
	"chesscore/notation"
	"chesscore/util"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "", "path to a config.toml settings file (optional)")
	fen := flag.String("fen", "", "FEN of the position to load (default: the config's Core.StartFEN)")
	perftDepth := flag.Int("perft", 0, "run perft to this depth and print the result (0 disables)")
	cpuProfile := flag.Bool("profile", false, "wrap the perft run in a CPU profile (written to the working directory)")
	flag.Parse()

	config.Setup(*configFile)
	if *fen == "" {
		*fen = config.Settings.Core.StartFEN
	}
	log := logging.GetLog("chesscore")

	p, err := notation.ToPosition(*fen)
	if err != nil {
		out.Printf("could not parse fen %q: %v\n", *fen, err)
		return
	}

	out.Print(p.StringBoard())
	out.Printf("fen            : %s\n", notation.FromPosition(p))

	eval := evaluator.NewEvaluator()
	value := eval.Evaluate(p)
	out.Printf("evaluation     : %s\n", value.String())

	if *perftDepth > 0 {
		if *cpuProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		log.Infof("running perft to depth %d on %s", *perftDepth, *fen)
		start := time.Now()
		nodes := movegen.Perft(p, *perftDepth)
		elapsed := time.Since(start)
		out.Printf("perft(%d)       : %d nodes\n", *perftDepth, nodes)
		out.Printf("time           : %s\n", elapsed)
		nps := nodes * uint64(time.Second) / uint64(util.Max64(int64(elapsed), 1))
		out.Printf("nps            : %d\n", nps)
	}
}
