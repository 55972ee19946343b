// Package octet classifies single bytes into the character classes of RFC 7230.
//
//	ALPHA              = %x41-5A / %x61-7A
//	DIGIT              = %x30-39
//	VCHAR              = %x21-7E
//	obs-text           = %x80-FF
//	tchar              = "!" / "#" / "$" / "%" / "&" / "'" / "*" / "+" / "-" / "." /
//	                     "^" / "_" / "`" / "|" / "~" / DIGIT / ALPHA
//	reason-phrase      = *( HTAB / SP / VCHAR / obs-text )
//	field-vchar        = VCHAR / obs-text
//
// All predicates are plain range comparisons and never allocate.
package octet

const (
	HTAB byte = 0x09
	LF   byte = 0x0A
	CR   byte = 0x0D
	SP   byte = 0x20

	ExclamationMark byte = 0x21
	Hashtag         byte = 0x23
	Apostrophe      byte = 0x27
	Asterisk        byte = 0x2A
	Plus            byte = 0x2B
	Minus           byte = 0x2D
	Dot             byte = 0x2E
	Slash           byte = 0x2F

	N0 byte = 0x30
	N9 byte = 0x39

	UpperA byte = 0x41
	UpperZ byte = 0x5A
	Caret  byte = 0x5E
	LowerA byte = 0x61
	LowerZ byte = 0x7A

	VerticalBar byte = 0x7C
	Tilde       byte = 0x7E

	ObsTextBegin byte = 0x80

	H byte = 0x48
	P byte = 0x50
	T byte = 0x54
)

func IsAlpha(c byte) bool {
	return (c >= UpperA && c <= UpperZ) || (c >= LowerA && c <= LowerZ)
}

func IsDigit(c byte) bool {
	return c >= N0 && c <= N9
}

// IsVChar reports visible (printing) characters.
func IsVChar(c byte) bool {
	return c >= ExclamationMark && c <= Tilde
}

func IsObsText(c byte) bool {
	return c >= ObsTextBegin
}

// IsTChar reports whether c is allowed in a token, that is any VCHAR except delimiters.
func IsTChar(c byte) bool {
	switch {
	case c == ExclamationMark:
		return true
	case c >= Hashtag && c <= Apostrophe: // # $ % & '
		return true
	case c == Asterisk, c == Plus, c == Minus, c == Dot:
		return true
	case IsDigit(c), c >= UpperA && c <= UpperZ:
		return true
	case c >= Caret && c <= LowerZ: // ^ _ ` a-z
		return true
	case c == VerticalBar, c == Tilde:
		return true
	default:
		return false
	}
}

func IsReasonPhraseByte(c byte) bool {
	return c == HTAB || c == SP || IsVChar(c) || IsObsText(c)
}

func IsFieldVarChar(c byte) bool {
	return IsVChar(c) || IsObsText(c)
}
