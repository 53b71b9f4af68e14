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

// Package notation converts between Forsyth-Edwards Notation and a
// position.Position. It is the only place a Position gets built from
// anything other than an empty board plus make/undo.
package notation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"chesscore/position"
	. "chesscore/types"
)

// StartFEN is the standard chess starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ErrMalformedFEN reports a structurally invalid FEN: wrong field count,
// disallowed characters, an en-passant square on the wrong rank, or a
// non-numeric clock. Returned wrapped with detail via fmt.Errorf("%w: ...").
var ErrMalformedFEN = errors.New("notation: malformed fen")

var (
	placementChars   = regexp.MustCompile(`^[1-8pPnNbBrRqQkK/]+$`)
	activeColorChars = regexp.MustCompile(`^[wb]$`)
	castlingChars    = regexp.MustCompile(`^[KQkqA-Ha-h]+$`)
	enPassantChars   = regexp.MustCompile(`^[a-h][1-8]$`)
)

// ToPosition parses fen into a freshly built Position. Accepts 4, 5 or 6
// space-separated fields - anything else fails with ErrMalformedFEN.
func ToPosition(fen string) (*position.Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 || len(fields) > 6 {
		return nil, fmt.Errorf("%w: expected 4-6 fields, got %d", ErrMalformedFEN, len(fields))
	}

	p := position.New()

	if err := parsePlacement(p, fields[0]); err != nil {
		return nil, err
	}

	if !activeColorChars.MatchString(fields[1]) {
		return nil, fmt.Errorf("%w: invalid active color %q", ErrMalformedFEN, fields[1])
	}
	active := White
	if fields[1] == "b" {
		active = Black
	}
	p.SetActiveColor(active)

	if err := parseCastling(p, fields[2]); err != nil {
		return nil, err
	}

	if err := parseEnPassant(p, fields[3], active); err != nil {
		return nil, err
	}

	halfmoveClock := 0
	if len(fields) >= 5 {
		n, err := strconv.Atoi(fields[4])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: invalid halfmove clock %q", ErrMalformedFEN, fields[4])
		}
		halfmoveClock = n
	}
	p.SetHalfmoveClock(halfmoveClock)

	fullmoveNumber := 1
	if len(fields) == 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%w: invalid fullmove number %q", ErrMalformedFEN, fields[5])
		}
		fullmoveNumber = n
	}
	p.SetFullmoveNumber(fullmoveNumber)

	return p, nil
}

// parsePlacement reads the rank8-first, slash-separated piece placement
// field and Puts every piece it names.
func parsePlacement(p *position.Position, placement string) error {
	if !placementChars.MatchString(placement) {
		return fmt.Errorf("%w: piece placement contains invalid characters", ErrMalformedFEN)
	}
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: expected 8 ranks, got %d", ErrMalformedFEN, len(ranks))
	}
	for i, rankStr := range ranks {
		r := Rank8 - Rank(i)
		file := 0
		for _, c := range rankStr {
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			if file >= 8 {
				return fmt.Errorf("%w: rank %d overflows the board", ErrMalformedFEN, 8-i)
			}
			p.Put(PieceFromChar(byte(c)), SquareOf(File(file), r))
			file++
		}
		if file != 8 {
			return fmt.Errorf("%w: rank %d does not cover all 8 files", ErrMalformedFEN, 8-i)
		}
	}
	return nil
}

// parseCastling reads the castling field. KQkq map directly to the four
// rights. Any other letter is Shredder-style: an uppercase/lowercase file
// letter names the rook's file for White/Black, and is resolved to
// kingside or queenside by comparing it against that king's current file -
// the castling design itself still hardcodes standard files (Non-goal:
// Chess960), this only lets Shredder-style FENs of a standard position
// parse instead of being rejected.
func parseCastling(p *position.Position, field string) error {
	if field == "-" {
		return nil
	}
	if !castlingChars.MatchString(field) {
		return fmt.Errorf("%w: invalid castling rights %q", ErrMalformedFEN, field)
	}
	var rights CastlingRights
	for _, c := range field {
		switch c {
		case 'K':
			rights |= CastlingWhiteOO
		case 'Q':
			rights |= CastlingWhiteOOO
		case 'k':
			rights |= CastlingBlackOO
		case 'q':
			rights |= CastlingBlackOOO
		default:
			color := White
			letter := byte(c)
			if c >= 'a' && c <= 'z' {
				color = Black
				letter = letter - 'a' + 'A'
			}
			rookFile := File(letter - 'A')
			kingFile := p.KingSquare(color).FileOf()
			kingside := rookFile > kingFile
			switch {
			case color == White && kingside:
				rights |= CastlingWhiteOO
			case color == White && !kingside:
				rights |= CastlingWhiteOOO
			case color == Black && kingside:
				rights |= CastlingBlackOO
			default:
				rights |= CastlingBlackOOO
			}
		}
	}
	p.SetCastlingRight(rights)
	return nil
}

// parseEnPassant reads the en-passant field, requiring rank 6 when White is
// to move and rank 3 when Black is to move (the target square always sits
// on the rank the just-moved pawn skipped over).
func parseEnPassant(p *position.Position, field string, active Color) error {
	if field == "-" {
		return nil
	}
	if !enPassantChars.MatchString(field) {
		return fmt.Errorf("%w: invalid en-passant square %q", ErrMalformedFEN, field)
	}
	sq := MakeSquare(field)
	wantRank := Rank6
	if active == Black {
		wantRank = Rank3
	}
	if sq.RankOf() != wantRank {
		return fmt.Errorf("%w: en-passant square %q inconsistent with active color", ErrMalformedFEN, field)
	}
	p.SetEnPassantSquare(sq)
	return nil
}

// FromPosition renders p as a FEN string, the inverse of ToPosition. "-" is
// used for empty castling rights or no en-passant square.
func FromPosition(p *position.Position) string {
	var b strings.Builder
	for r := Rank8; ; r-- {
		empty := 0
		for f := FileA; f <= FileH; f++ {
			pc := p.Board(SquareOf(f, r))
			if pc == PieceNone {
				empty++
				continue
			}
			if empty > 0 {
				b.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			b.WriteString(pc.Char())
		}
		if empty > 0 {
			b.WriteString(strconv.Itoa(empty))
		}
		if r == Rank1 {
			break
		}
		b.WriteString("/")
	}
	b.WriteString(" ")
	b.WriteString(p.ActiveColor().String())
	b.WriteString(" ")
	b.WriteString(p.CastlingRights().String())
	b.WriteString(" ")
	b.WriteString(p.EnPassantSquare().String())
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.HalfmoveClock()))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(p.FullmoveNumber()))
	return b.String()
}
