package codefmt

import (
	"fmt"
	"go/token"
)

// CodeError is an error bound to a location in the user's source. The CLI and
// the analysis adapter rely on the location to point at the offending marker
// or declaration.
type CodeError struct {
	err  error
	pos  token.Pos
	end  token.Pos
	fset *token.FileSet
}

// Unwrap returns the underlying error.
func (e CodeError) Unwrap() error { return e.err }

// Pos returns the position the error points at. It may be invalid.
func (e CodeError) Pos() token.Pos { return e.pos }

// End returns the end of the error's range. It may be invalid.
func (e CodeError) End() token.Pos { return e.end }

// Error prepends the position to the underlying message when the position is
// valid.
func (e CodeError) Error() string {
	if e.err == nil {
		return ""
	}

	if !e.pos.IsValid() {
		return e.err.Error()
	}

	return FormatPosition(e.fset.Position(e.pos)) + ": " + e.err.Error()
}

// Errorf creates a [CodeError] at the poser's position. A nil poser or an
// invalid position leaves the message bare.
//
// Wrapping another error is forbidden. A CodeError stays a leaf so that
// joined errors surface one position per line.
func (f Formatter) Errorf(poser Poser, format string, args ...any) error {
	for _, arg := range args {
		if _, ok := arg.(error); ok {
			panic("CodeError cannot wrap error")
		}
	}

	var pos, end token.Pos
	if poser != nil {
		pos = poser.Pos()
		if ender, ok := poser.(Ender); ok {
			end = ender.End()
		}
	}

	args = f.wrapPrintfArgs(args)
	return &CodeError{fmt.Errorf(format, args...), pos, end, f.Fset}
}
