package plan

import (
	"fmt"
	"io"
)

// Dump writes the plan's diagnostic text format, one line per agent:
//
//	[Agent <id>] : (x,y,o) (x,y,o) ...
//
// This format is purely diagnostic and is never re-parsed.
func (p *Plan) Dump(w io.Writer) error {
	if p.Empty() {
		return nil
	}
	for i := 0; i < p.Size(); i++ {
		path, err := p.GetPath(i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "[Agent %3d] : ", i); err != nil {
			return err
		}
		for _, s := range path {
			if _, err := fmt.Fprintf(w, "(%3d,%3d,%3d) ", s.Node.Pos.X, s.Node.Pos.Y, int(s.Orientation)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}
