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

package config

// evalConfiguration holds the evaluator's weights. The material and
// mobility scores are each expressed as a percentage of the raw count -
// MaterialWeight/MobilityWeight are that percentage, out of 100.
type evalConfiguration struct {
	MaterialWeight int
	MobilityWeight int

	BishopPairBonus int

	KnightMobilityWeight int
	BishopMobilityWeight int
	RookMobilityWeight   int
	QueenMobilityWeight  int

	Tempo int
}

// sets defaults which might be overwritten by config file
func init() {
	Settings.Eval.MaterialWeight = 100
	Settings.Eval.MobilityWeight = 80

	Settings.Eval.BishopPairBonus = 50

	Settings.Eval.KnightMobilityWeight = 4
	Settings.Eval.BishopMobilityWeight = 5
	Settings.Eval.RookMobilityWeight = 2
	Settings.Eval.QueenMobilityWeight = 1

	Settings.Eval.Tempo = 1
}
