package draw

import (
	"fmt"
	"math"

	"github.com/ralic/gnu-gsl-shell/path"
)

// CommandID identifies a path command.
type CommandID int

// Command identifiers. The order is part of the host contract.
const (
	CmdError  CommandID = -1
	CmdMoveTo CommandID = iota - 1
	CmdLineTo
	CmdClose
	CmdArcTo
	CmdCurve3
	CmdCurve4
)

// String returns the command name.
func (id CommandID) String() string {
	if id >= 0 && int(id) < len(commandTable) {
		return commandTable[id].Name
	}
	return "error"
}

// Command describes one path command. Signature holds one character per
// argument: 'f' for a finite number and 'b' for a boolean.
type Command struct {
	ID        CommandID
	Name      string
	Signature string
}

// commandTable is indexed by CommandID.
var commandTable = [...]Command{
	{CmdMoveTo, "move_to", "ff"},
	{CmdLineTo, "line_to", "ff"},
	{CmdClose, "close", ""},
	{CmdArcTo, "arc_to", "fffbbff"},
	{CmdCurve3, "curve3", "ffff"},
	{CmdCurve4, "curve4", "ffffff"},
}

// Commands returns the command table in id order.
func Commands() []Command {
	out := make([]Command, len(commandTable))
	copy(out, commandTable[:])
	return out
}

// LookupCommand resolves a command name. Unknown names return a Command
// with ID CmdError and an error wrapping ErrUnknownCommand.
func LookupCommand(name string) (Command, error) {
	for _, c := range commandTable {
		if c.Name == name {
			return c, nil
		}
	}
	return Command{ID: CmdError, Name: name}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// Frame holds decoded command arguments. Numbers and booleans are kept
// apart, each in call order.
type Frame struct {
	F [6]float64
	B [2]bool
}

// decode validates args against the command signature and fills a
// Frame. Arguments past the signature are ignored.
func (c Command) decode(args []any) (Frame, error) {
	var fr Frame
	nf, nb := 0, 0
	for i, kind := range []byte(c.Signature) {
		pos := i + 1
		if i >= len(args) {
			return fr, &ArgumentError{Op: c.Name, Position: pos, Want: wantName(kind), Err: ErrMissingArgument}
		}
		switch kind {
		case 'f':
			v, ok := toFloat(args[i])
			if !ok {
				return fr, &ArgumentError{Op: c.Name, Position: pos, Want: "number", Got: args[i], Err: ErrInvalidArgument}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fr, &ArgumentError{Op: c.Name, Position: pos, Want: "finite number", Got: args[i], Err: ErrInvalidArgument}
			}
			fr.F[nf] = v
			nf++
		case 'b':
			v, ok := args[i].(bool)
			if !ok {
				return fr, &ArgumentError{Op: c.Name, Position: pos, Want: "boolean", Got: args[i], Err: ErrInvalidArgument}
			}
			fr.B[nb] = v
			nb++
		}
	}
	return fr, nil
}

func wantName(kind byte) string {
	if kind == 'b' {
		return "boolean"
	}
	return "finite number"
}

// apply runs the command on p. The frame must come from decode.
func (c Command) apply(p *path.Path, fr Frame) {
	f := fr.F
	switch c.ID {
	case CmdMoveTo:
		p.MoveTo(f[0], f[1])
	case CmdLineTo:
		p.LineTo(f[0], f[1])
	case CmdClose:
		p.Close()
	case CmdArcTo:
		p.ArcTo(f[0], f[1], f[2], fr.B[0], fr.B[1], f[3], f[4])
	case CmdCurve3:
		p.Curve3(f[0], f[1], f[2], f[3])
	case CmdCurve4:
		p.Curve4(f[0], f[1], f[2], f[3], f[4], f[5])
	}
}

// toFloat converts any Go numeric value to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}
