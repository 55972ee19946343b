package parser

import (
	"github.com/applearound/yzhttp/http/octet"
	"github.com/indigo-web/utils/buffer"
)

// ReasonParser collects reason-phrase bytes until the first byte out of the
// grammar, which is normally the CR of the terminating CRLF. That byte is left
// unconsumed. As there's no way to know the phrase has ended before the
// terminator is seen, the parser completes only when it observes one.
type ReasonParser struct {
	phase  Phase
	buff   *buffer.Buffer[byte]
	reason []byte
}

// NewReasonParser returns a parser accumulating into buff. The buffer's limit
// is the limit of the reason phrase length.
func NewReasonParser(buff *buffer.Buffer[byte]) *ReasonParser {
	return &ReasonParser{
		phase: ReasonCollecting,
		buff:  buff,
	}
}

func (r *ReasonParser) Feed(data []byte) (n int, err error) {
	if r.phase == ReasonDone {
		return 0, nil
	}

	next := r.phase
	for ; n < len(data); n++ {
		var consumed bool
		if next, consumed = reasonTransition(r.phase, data[n]); !consumed {
			break
		}
	}

	if !r.buff.Append(data[:n]...) {
		return 0, ErrReasonTooLong
	}

	if next == ReasonDone {
		r.reason = r.buff.Finish()
		r.phase = next
	}

	return n, nil
}

func (r *ReasonParser) Complete() bool {
	return r.phase == ReasonDone
}

func (r *ReasonParser) Phase() Phase {
	return r.phase
}

// Result returns the reason phrase, which may be empty. The returned slice
// references the parser's buffer, so it stays valid only until Reset.
func (r *ReasonParser) Result() ([]byte, error) {
	if !r.Complete() {
		return nil, ErrNotReady
	}

	return r.reason, nil
}

func (r *ReasonParser) Reset() {
	r.phase = ReasonCollecting
	r.buff.Clear()
	r.reason = nil
}

// reasonTransition never fails: a byte either continues the phrase or
// terminates it without being consumed.
func reasonTransition(phase Phase, c byte) (next Phase, consumed bool) {
	if phase == ReasonCollecting && octet.IsReasonPhraseByte(c) {
		return ReasonCollecting, true
	}

	return ReasonDone, false
}
