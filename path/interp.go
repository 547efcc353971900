package path

import (
	"errors"
	"log"

	"github.com/mastercactapus/gcview/gcode"
)

// Interpreter tracks positioning state and resolves G-code blocks into
// Moves. It understands G0/G1 motion and the G90/G91 distance modes;
// X, Y and Z follow the single distance mode and E follows the same
// flag, matching common firmware defaults. Everything else is skipped.
type Interpreter struct {
	gr gcode.Reader

	pos      Position
	relative bool

	skipped int
}

func NewInterpreter(gr gcode.Reader) *Interpreter {
	return &Interpreter{gr: gr}
}

// Pos returns the current resolved position.
func (in *Interpreter) Pos() Position { return in.pos }

// Relative reports the current distance mode.
func (in *Interpreter) Relative() bool { return in.relative }

// Skipped returns the number of unparseable lines dropped so far.
func (in *Interpreter) Skipped() int { return in.skipped }

// Read returns the next Move. Blocks that produce no motion are
// consumed silently, unparseable lines are logged and dropped, and
// io.EOF signals the end of the program.
func (in *Interpreter) Read() (Move, error) {
	for {
		b, err := in.gr.Read()
		if errors.Is(err, gcode.ErrInvalidLine) {
			in.skipped++
			log.Println("ERROR: skip:", err)
			continue
		}
		if err != nil {
			return Move{}, err
		}

		if m, ok := in.run(b); ok {
			return m, nil
		}
	}
}

func (in *Interpreter) run(b gcode.Block) (Move, bool) {
	var motion bool
	for _, g := range b {
		if g.W != 'G' {
			continue
		}
		switch g.Arg {
		case 0, 1:
			motion = true
		case 90:
			in.relative = false
		case 91:
			in.relative = true
		}
	}
	if !motion {
		return Move{}, false
	}

	from := in.pos
	to := from
	for _, g := range b {
		switch g.W {
		case 'X':
			to.X = apply(in.relative, to.X, g.Arg)
		case 'Y':
			to.Y = apply(in.relative, to.Y, g.Arg)
		case 'Z':
			to.Z = apply(in.relative, to.Z, g.Arg)
		case 'E':
			to.E = apply(in.relative, to.E, g.Arg)
		}
	}

	in.pos = to
	return Move{From: from, To: to}, true
}

func apply(relative bool, old, arg float64) float64 {
	if relative {
		return old + arg
	}
	return arg
}
