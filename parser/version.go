package parser

import (
	"github.com/applearound/yzhttp/http/octet"
	"github.com/applearound/yzhttp/http/proto"
)

// VersionParser recognizes HTTP-version. The grammar accepts any pair of digits,
// whereas Result accepts only the supported ones.
type VersionParser struct {
	phase        Phase
	major, minor byte
}

func NewVersionParser() *VersionParser {
	return &VersionParser{phase: VersionH}
}

func (v *VersionParser) Feed(data []byte) (n int, err error) {
	for ; n < len(data) && v.phase != VersionDone; n++ {
		c := data[n]
		next, ok := versionTransition(v.phase, c)
		if !ok {
			return n, newMalformed(v.phase, c)
		}

		switch v.phase {
		case VersionMajor:
			v.major = c
		case VersionMinor:
			v.minor = c
		}

		v.phase = next
	}

	return n, nil
}

func (v *VersionParser) Complete() bool {
	return v.phase == VersionDone
}

func (v *VersionParser) Phase() Phase {
	return v.phase
}

// Result returns the parsed version. Well-formed but unsupported versions result
// in *UnsupportedVersionError.
func (v *VersionParser) Result() (proto.Proto, error) {
	if !v.Complete() {
		return proto.Unknown, ErrNotReady
	}

	major, minor := v.major-octet.N0, v.minor-octet.N0
	version := proto.Parse(major, minor)
	if version == proto.Unknown {
		return proto.Unknown, &UnsupportedVersionError{Major: major, Minor: minor}
	}

	return version, nil
}

func (v *VersionParser) Reset() {
	*v = VersionParser{phase: VersionH}
}

func versionTransition(phase Phase, c byte) (next Phase, ok bool) {
	switch phase {
	case VersionH:
		return VersionT1, c == octet.H
	case VersionT1:
		return VersionT2, c == octet.T
	case VersionT2:
		return VersionP, c == octet.T
	case VersionP:
		return VersionSlash, c == octet.P
	case VersionSlash:
		return VersionMajor, c == octet.Slash
	case VersionMajor:
		return VersionDot, octet.IsDigit(c)
	case VersionDot:
		return VersionMinor, c == octet.Dot
	case VersionMinor:
		return VersionDone, octet.IsDigit(c)
	default:
		return phase, false
	}
}
