// Package parser recognizes the HTTP/1.x status line
//
//	status-line   = HTTP-version SP status-code SP reason-phrase CRLF
//	HTTP-version  = HTTP-name "/" DIGIT "." DIGIT
//	HTTP-name     = %x48.54.54.50 ; "HTTP", case-sensitive
//	status-code   = 3DIGIT
//	reason-phrase = *( HTAB / SP / VCHAR / obs-text )
//
// incrementally, from chunks split at arbitrary byte boundaries. Each grammar
// element has its own sub-parser; StatusLineParser composes them.
package parser

// SubParser is the contract shared by every sub-parser.
//
// Feed inspects data starting at its first byte and returns how many bytes were
// validated during this call. It never retains data and never consumes bytes
// belonging to the next grammar element, so the caller is the one to advance
// its cursor by n. Empty data and calls after completion return 0 without doing
// anything. On malformed input a *MalformedError is returned together with the
// count of bytes validated before the offending one.
type SubParser interface {
	Feed(data []byte) (n int, err error)
	Complete() bool
	Phase() Phase
	Reset()
}

var (
	_ SubParser = new(VersionParser)
	_ SubParser = new(CodeParser)
	_ SubParser = new(ReasonParser)
)
