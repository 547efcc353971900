package gcode

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Read(t *testing.T) {
	p := NewParser(strings.NewReader("G1 X10 Y-2.5 E0.4\n"))

	b, err := p.Read()
	assert.NoError(t, err)
	assert.Equal(t, Block{
		{W: 'G', Arg: 1},
		{W: 'X', Arg: 10},
		{W: 'Y', Arg: -2.5},
		{W: 'E', Arg: 0.4},
	}, b)

	_, err = p.Read()
	assert.Equal(t, io.EOF, err)
}

func TestParser_CommentsAndBlanks(t *testing.T) {
	p := NewParser(strings.NewReader("; header comment\n\n   \ng1 x5 ; inline\n"))

	b, err := p.Read()
	assert.NoError(t, err)
	assert.Equal(t, Block{{W: 'G', Arg: 1}, {W: 'X', Arg: 5}}, b)

	_, err = p.Read()
	assert.Equal(t, io.EOF, err)
}

func TestParser_InvalidLine(t *testing.T) {
	p := NewParser(strings.NewReader("start print now\nG1 X5\n"))

	_, err := p.Read()
	assert.ErrorIs(t, err, ErrInvalidLine)

	// parser keeps going after a bad line
	b, err := p.Read()
	assert.NoError(t, err)
	assert.Equal(t, Block{{W: 'G', Arg: 1}, {W: 'X', Arg: 5}}, b)
}

func TestParser_MalformedNumber(t *testing.T) {
	p := NewParser(strings.NewReader("G1 X1.2.3\n"))

	_, err := p.Read()
	assert.ErrorIs(t, err, ErrInvalidLine)
}

func TestParser_NoTrailingNewline(t *testing.T) {
	p := NewParser(strings.NewReader("G0 Z0.3"))

	b, err := p.Read()
	assert.NoError(t, err)
	assert.Equal(t, Block{{W: 'G', Arg: 0}, {W: 'Z', Arg: 0.3}}, b)

	_, err = p.Read()
	assert.Equal(t, io.EOF, err)
}

func TestParse(t *testing.T) {
	blocks, err := Parse("G90\nG1 X1\n")
	assert.NoError(t, err)
	assert.Len(t, blocks, 2)
	assert.Equal(t, "G90", blocks[0].String())
	assert.Equal(t, "G1X1", blocks[1].String())
}
