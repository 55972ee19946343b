package parser

import (
	"github.com/applearound/yzhttp/http/octet"
	"github.com/applearound/yzhttp/http/status"
)

// CodeParser recognizes exactly three digits of status-code. The value isn't
// checked against registered codes.
type CodeParser struct {
	phase  Phase
	digits [3]uint8
}

func NewCodeParser() *CodeParser {
	return &CodeParser{phase: CodeDigit1}
}

func (p *CodeParser) Feed(data []byte) (n int, err error) {
	for ; n < len(data) && p.phase != CodeDone; n++ {
		c := data[n]
		next, ok := codeTransition(p.phase, c)
		if !ok {
			return n, newMalformed(p.phase, c)
		}

		p.digits[p.phase-CodeDigit1] = c - octet.N0
		p.phase = next
	}

	return n, nil
}

func (p *CodeParser) Complete() bool {
	return p.phase == CodeDone
}

func (p *CodeParser) Phase() Phase {
	return p.phase
}

func (p *CodeParser) Result() (status.Code, error) {
	if !p.Complete() {
		return 0, ErrNotReady
	}

	return status.Code(p.digits[0])*100 + status.Code(p.digits[1])*10 + status.Code(p.digits[2]), nil
}

func (p *CodeParser) Reset() {
	*p = CodeParser{phase: CodeDigit1}
}

func codeTransition(phase Phase, c byte) (next Phase, ok bool) {
	switch phase {
	case CodeDigit1, CodeDigit2, CodeDigit3:
		return phase + 1, octet.IsDigit(c)
	default:
		return phase, false
	}
}
