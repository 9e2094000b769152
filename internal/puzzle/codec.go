// internal/puzzle/codec.go
//
// The puzzle codec: a lossless, symmetric transform between a Puzzle
// and one line of printable text.
//
// Layout (version w1), four ';'-separated sections:
//
//	w1;<width>x<height>;<rows>;<words>
//
// Rows are '/'-joined; each cell is '.' (gap) or one ASCII-
// transliterated letter, so the whole grid fits in a short prefix.
// Each word entry stores its paths, not its letters: a path is a
// two-digit base-36 start-cell index followed by direction digits
// 0-5, alternate paths for the same word are '+'-joined, and a
// ':b'/':x' suffix tags bonus/excluded words. Decoding replays each
// path over the grid to recover the letters, so no dictionary is
// needed at runtime.
//
// Decode rejects anything that does not parse to a structurally valid
// grid and word table, or whose paths break the adjacency/no-repeat
// invariant — corrupted or hand-edited codes must not reach gameplay.

package puzzle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/wordhexgame/wordhex/internal/alphabet"
	"github.com/wordhexgame/wordhex/internal/hexgrid"
)

// ErrMalformedCode is the base error for codes that fail to decode.
var ErrMalformedCode = errors.New("malformed puzzle code")

const codecVersion = "w1"

// maxCells bounds the grid so a start index always fits two base-36
// digits.
const maxCells = 36 * 36

// Encode serializes p to its single-line code.
func Encode(p *Puzzle) (string, error) {
	if p.Grid.NumCells() > maxCells {
		return "", fmt.Errorf("grid has %d cells, codec limit is %d", p.Grid.NumCells(), maxCells)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s;%dx%d;", codecVersion, p.Grid.Width(), p.Grid.Height())
	b.WriteString(strings.Join(p.Grid.Rows(), "/"))
	b.WriteByte(';')

	for i, w := range p.Words {
		if i > 0 {
			b.WriteByte(',')
		}
		for j, path := range w.Paths {
			if j > 0 {
				b.WriteByte('+')
			}
			b.WriteString(encodeStart(p.Grid.Index(path.Start)))
			b.WriteString(path.StepString())
		}
		b.WriteString(w.Class.tag())
	}
	return b.String(), nil
}

// Save is the catalog-facing alias for Encode.
func Save(p *Puzzle) (string, error) { return Encode(p) }

// Decode parses a single-line code back into a Puzzle, enforcing
// every structural and path invariant.
func Decode(code string) (*Puzzle, error) {
	parts := strings.Split(strings.TrimSpace(code), ";")
	if len(parts) != 4 {
		return nil, fmt.Errorf("%w: expected 4 sections, got %d", ErrMalformedCode, len(parts))
	}
	if parts[0] != codecVersion {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrMalformedCode, parts[0])
	}

	g, err := decodeGrid(parts[1], parts[2])
	if err != nil {
		return nil, err
	}

	words, err := decodeWords(g, parts[3])
	if err != nil {
		return nil, err
	}

	p, err := New(g, words)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCode, err)
	}
	return p, nil
}

// Load is the catalog-facing alias for Decode.
func Load(code string) (*Puzzle, error) { return Decode(code) }

func decodeGrid(dims, rowPart string) (*hexgrid.Grid, error) {
	wStr, hStr, ok := strings.Cut(dims, "x")
	if !ok {
		return nil, fmt.Errorf("%w: bad dimensions %q", ErrMalformedCode, dims)
	}
	width, err1 := strconv.Atoi(wStr)
	height, err2 := strconv.Atoi(hStr)
	if err1 != nil || err2 != nil || width < 1 || height < 1 || width*height > maxCells {
		return nil, fmt.Errorf("%w: bad dimensions %q", ErrMalformedCode, dims)
	}

	rows := strings.Split(rowPart, "/")
	if len(rows) != height {
		return nil, fmt.Errorf("%w: %d rows for height %d", ErrMalformedCode, len(rows), height)
	}

	cells := make([]rune, 0, width*height)
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedCode, y, len(runes), width)
		}
		for _, r := range runes {
			if r == hexgrid.Gap {
				cells = append(cells, 0)
				continue
			}
			letter := alphabet.DecodeRune(r)
			if !alphabet.IsLetter(letter) {
				return nil, fmt.Errorf("%w: unsupported cell %q in row %d", ErrMalformedCode, r, y)
			}
			cells = append(cells, letter)
		}
	}

	g, err := hexgrid.New(cells, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCode, err)
	}
	return g, nil
}

func decodeWords(g *hexgrid.Grid, wordPart string) ([]Word, error) {
	if wordPart == "" {
		return nil, nil
	}

	entries := strings.Split(wordPart, ",")
	words := make([]Word, 0, len(entries))

	for _, entry := range entries {
		class := Normal
		if i := strings.LastIndexByte(entry, ':'); i >= 0 {
			switch entry[i:] {
			case ":b":
				class = Bonus
			case ":x":
				class = Excluded
			default:
				return nil, fmt.Errorf("%w: unknown classification %q", ErrMalformedCode, entry[i:])
			}
			entry = entry[:i]
		}

		var (
			letters string
			paths   []hexgrid.Path
		)
		for _, pathStr := range strings.Split(entry, "+") {
			path, err := decodePath(g, pathStr)
			if err != nil {
				return nil, err
			}
			spelled, err := path.Letters(g)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedCode, err)
			}
			if letters == "" {
				letters = spelled
			} else if letters != spelled {
				return nil, fmt.Errorf("%w: alternate paths spell %q and %q", ErrMalformedCode, letters, spelled)
			}
			paths = append(paths, path)
		}

		words = append(words, Word{Letters: letters, Class: class, Paths: paths})
	}
	return words, nil
}

func decodePath(g *hexgrid.Grid, s string) (hexgrid.Path, error) {
	if len(s) < 2 {
		return hexgrid.Path{}, fmt.Errorf("%w: truncated path %q", ErrMalformedCode, s)
	}
	start, err := decodeStart(s[:2])
	if err != nil || start >= g.NumCells() {
		return hexgrid.Path{}, fmt.Errorf("%w: bad start cell %q", ErrMalformedCode, s[:2])
	}

	steps := make([]hexgrid.Direction, 0, len(s)-2)
	for i := 2; i < len(s); i++ {
		d, err := hexgrid.ParseDirection(s[i])
		if err != nil {
			return hexgrid.Path{}, fmt.Errorf("%w: %v", ErrMalformedCode, err)
		}
		steps = append(steps, d)
	}
	return hexgrid.Path{Start: g.CoordOf(start), Steps: steps}, nil
}

func encodeStart(index int) string {
	s := strconv.FormatInt(int64(index), 36)
	if len(s) < 2 {
		return "0" + s
	}
	return s
}

func decodeStart(s string) (int, error) {
	n, err := strconv.ParseInt(s, 36, 32)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("bad start %q", s)
	}
	return int(n), nil
}
