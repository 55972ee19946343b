package parser

// Phase is a grammar position of a sub-parser. Phases of a single sub-parser are
// declared in grammar order and are never revisited.
type Phase uint8

const (
	VersionH Phase = iota + 1
	VersionT1
	VersionT2
	VersionP
	VersionSlash
	VersionMajor
	VersionDot
	VersionMinor
	VersionDone

	CodeDigit1
	CodeDigit2
	CodeDigit3
	CodeDone

	ReasonCollecting
	ReasonDone

	// delimiters, handled by StatusLineParser only
	SPAfterVersion
	SPAfterCode
	LineCR
	LineLF
)

var phaseNames = [...]string{
	VersionH:         "HTTP-name 'H'",
	VersionT1:        "HTTP-name first 'T'",
	VersionT2:        "HTTP-name second 'T'",
	VersionP:         "HTTP-name 'P'",
	VersionSlash:     "HTTP-version '/'",
	VersionMajor:     "HTTP-version major DIGIT",
	VersionDot:       "HTTP-version '.'",
	VersionMinor:     "HTTP-version minor DIGIT",
	VersionDone:      "HTTP-version done",
	CodeDigit1:       "status-code first DIGIT",
	CodeDigit2:       "status-code second DIGIT",
	CodeDigit3:       "status-code third DIGIT",
	CodeDone:         "status-code done",
	ReasonCollecting: "reason-phrase",
	ReasonDone:       "reason-phrase done",
	SPAfterVersion:   "SP after HTTP-version",
	SPAfterCode:      "SP after status-code",
	LineCR:           "CR",
	LineLF:           "LF",
}

func (p Phase) String() string {
	if int(p) >= len(phaseNames) || phaseNames[p] == "" {
		return "unknown phase"
	}

	return phaseNames[p]
}

type lineState uint8

const (
	eVersion lineState = iota + 1
	eVersionSP
	eCode
	eCodeSP
	eReason
	eCR
	eLF
	eDone
)
