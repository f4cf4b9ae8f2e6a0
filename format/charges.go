package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/yongjiguan/repESP/gausslog"
)

// ChargesEncoder writes the per-atom charges of one scheme as a plain
// text table, one atom per line.
type ChargesEncoder struct {
	w      io.Writer
	scheme gausslog.ChargeScheme
	rep    *gausslog.Report
}

func NewChargesEncoder(w io.Writer, scheme gausslog.ChargeScheme) *ChargesEncoder {
	return &ChargesEncoder{w: w, scheme: scheme}
}

func (e *ChargesEncoder) Encode(rep *gausslog.Report) error {
	e.rep = rep
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *ChargesEncoder) MarshalText() ([]byte, error) {
	charges := e.rep.Charges(e.scheme)
	if charges == nil {
		return nil, fmt.Errorf("no %s charges in report", e.scheme)
	}
	var sb strings.Builder
	var sum float64
	for _, c := range charges {
		atom, ok := e.rep.Atom(c.Atom)
		if !ok {
			return nil, fmt.Errorf("charge row references unknown atom %d", c.Atom)
		}
		fmt.Fprintf(&sb, "Atom %2d:  %-2s  % .6f\n", atom.Index, atom.Symbol, c.Charge)
		sum += c.Charge
	}
	fmt.Fprintf(&sb, "Sum:          % .6f\n", sum)
	return []byte(sb.String()), nil
}
