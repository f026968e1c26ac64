package parse

import (
	"errors"

	"github.com/AdinAck/ters/internal/codefmt"
)

// Validate reports markers that [Parser.ParseRecords] did not attribute to any
// record. It collects all errors instead of stopping at the first one, and
// must be called after ParseRecords so that legitimate markers are already
// consumed.
//
// A marker may be misplaced in three ways: it lives in a file without the
// "//go:build ters" constraint (the emitted copy would then collide with the
// original definition), it marks a construct it cannot apply to, or its name
// is not recognized at all.
func (p *Parser) Validate() error {
	var errs error

	for _, file := range p.pkg.Syntax {
		tagged := HasGoBuildTers(file)

		for _, group := range file.Comments {
			for _, m := range markersIn(group) {
				if p.consumed[m.comment] {
					continue
				}

				if !tagged {
					err := codefmt.Errorf(p, m, `file must have "//go:build ters" constraint to use ters markers`)
					errs = errors.Join(errs, err)
					continue
				}

				switch m.Name {
				case MarkerAccessors:
					err := codefmt.Errorf(p, m, "%s must mark a struct type declaration", m)
					errs = errors.Join(errs, err)
				case MarkerGet, MarkerSet:
					err := codefmt.Errorf(p, m, "%s must mark a named field of a //%s:%s struct", m, Tag, MarkerAccessors)
					errs = errors.Join(errs, err)
				default:
					err := codefmt.Errorf(p, m, "unrecognized marker %s", m)
					errs = errors.Join(errs, err)
				}
			}
		}
	}

	return errs
}
