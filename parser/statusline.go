package parser

import (
	"github.com/applearound/yzhttp/config"
	"github.com/applearound/yzhttp/http/octet"
	"github.com/applearound/yzhttp/http/proto"
	"github.com/applearound/yzhttp/http/status"
	"github.com/indigo-web/utils/buffer"
	"github.com/indigo-web/utils/uf"
)

// StatusLine is a parsed status line.
type StatusLine struct {
	Protocol proto.Proto   `json:"protocol"`
	Code     status.Code   `json:"code"`
	Reason   status.Status `json:"reason"`
}

func (s StatusLine) String() string {
	return s.Protocol.String() + " " + status.StringCode(s.Code) + " " + string(s.Reason)
}

// StatusLineParser drives VersionParser, CodeParser and ReasonParser one after
// another over the same stream, taking care of the SP and CRLF delimiters in
// between. Sub-parsers are used strictly through their Feed/Result contract.
type StatusLineParser struct {
	state   lineState
	version *VersionParser
	code    *CodeParser
	reason  *ReasonParser
	line    StatusLine
}

func NewStatusLineParser(cfg *config.Config) *StatusLineParser {
	space := cfg.StatusLine.ReasonSpace
	return NewStatusLineParserWith(buffer.NewBuffer[byte](space.Default, space.Maximal))
}

// NewStatusLineParserWith uses reasonBuff to store reason phrases.
func NewStatusLineParserWith(reasonBuff *buffer.Buffer[byte]) *StatusLineParser {
	return &StatusLineParser{
		state:   eVersion,
		version: NewVersionParser(),
		code:    NewCodeParser(),
		reason:  NewReasonParser(reasonBuff),
	}
}

// Parse returns done=true as soon as the CRLF is consumed, rest holding the bytes
// after it. Until then rest is nil, as all the passed data has been consumed.
// Once done, the parser must be Reset before another status line.
func (p *StatusLineParser) Parse(data []byte) (done bool, rest []byte, err error) {
	for len(data) > 0 {
		switch p.state {
		case eVersion:
			n, err := p.version.Feed(data)
			if err != nil {
				return false, nil, err
			}

			data = data[n:]
			if !p.version.Complete() {
				return false, nil, nil
			}

			if p.line.Protocol, err = p.version.Result(); err != nil {
				return false, nil, err
			}

			p.state = eVersionSP
		case eVersionSP:
			if data[0] != octet.SP {
				return false, nil, newMalformed(SPAfterVersion, data[0])
			}

			data = data[1:]
			p.state = eCode
		case eCode:
			n, err := p.code.Feed(data)
			if err != nil {
				return false, nil, err
			}

			data = data[n:]
			if !p.code.Complete() {
				return false, nil, nil
			}

			if p.line.Code, err = p.code.Result(); err != nil {
				return false, nil, err
			}

			p.state = eCodeSP
		case eCodeSP:
			if data[0] != octet.SP {
				return false, nil, newMalformed(SPAfterCode, data[0])
			}

			data = data[1:]
			p.state = eReason
		case eReason:
			n, err := p.reason.Feed(data)
			if err != nil {
				return false, nil, err
			}

			data = data[n:]
			if !p.reason.Complete() {
				return false, nil, nil
			}

			reason, err := p.reason.Result()
			if err != nil {
				return false, nil, err
			}

			p.line.Reason = status.Status(uf.B2S(reason))
			p.state = eCR
		case eCR:
			if data[0] != octet.CR {
				return false, nil, newMalformed(LineCR, data[0])
			}

			data = data[1:]
			p.state = eLF
		case eLF:
			if data[0] != octet.LF {
				return false, nil, newMalformed(LineLF, data[0])
			}

			p.state = eDone
			return true, data[1:], nil
		case eDone:
			return true, data, nil
		default:
			panic("BUG: status line parser: unknown state")
		}
	}

	return p.state == eDone, nil, nil
}

// StatusLine returns the parsed status line. Its Reason references the internal
// buffer and is overwritten after Reset, so copy it if it must outlive the parser.
func (p *StatusLineParser) StatusLine() StatusLine {
	return p.line
}

// Complete reports whether the whole status line including CRLF was consumed.
func (p *StatusLineParser) Complete() bool {
	return p.state == eDone
}

func (p *StatusLineParser) Reset() {
	p.state = eVersion
	p.version.Reset()
	p.code.Reset()
	p.reason.Reset()
	p.line = StatusLine{}
}
