// Package status holds the registered HTTP status codes and their default reason
// phrases. A status line may carry any three-digit code and any reason phrase,
// so nothing here is used to validate parsed values.
package status

import "strconv"

type (
	// Code is a status code as it appears in a status line, always in [0, 999]
	// when produced by the parser.
	Code uint16
	// Status is a reason phrase.
	Status string
)

// Registered codes, see https://www.iana.org/assignments/http-status-codes
const (
	Continue           Code = 100
	SwitchingProtocols Code = 101
	Processing         Code = 102
	EarlyHints         Code = 103

	OK                   Code = 200
	Created              Code = 201
	Accepted             Code = 202
	NonAuthoritativeInfo Code = 203
	NoContent            Code = 204
	ResetContent         Code = 205
	PartialContent       Code = 206
	MultiStatus          Code = 207
	AlreadyReported      Code = 208
	IMUsed               Code = 226

	MultipleChoices   Code = 300
	MovedPermanently  Code = 301
	Found             Code = 302
	SeeOther          Code = 303
	NotModified       Code = 304
	UseProxy          Code = 305
	TemporaryRedirect Code = 307
	PermanentRedirect Code = 308

	BadRequest                  Code = 400
	Unauthorized                Code = 401
	PaymentRequired             Code = 402
	Forbidden                   Code = 403
	NotFound                    Code = 404
	MethodNotAllowed            Code = 405
	NotAcceptable               Code = 406
	ProxyAuthRequired           Code = 407
	RequestTimeout              Code = 408
	Conflict                    Code = 409
	Gone                        Code = 410
	LengthRequired              Code = 411
	PreconditionFailed          Code = 412
	ContentTooLarge             Code = 413
	URITooLong                  Code = 414
	UnsupportedMediaType        Code = 415
	RangeNotSatisfiable         Code = 416
	ExpectationFailed           Code = 417
	Teapot                      Code = 418
	MisdirectedRequest          Code = 421
	UnprocessableContent        Code = 422
	Locked                      Code = 423
	FailedDependency            Code = 424
	TooEarly                    Code = 425
	UpgradeRequired             Code = 426
	PreconditionRequired        Code = 428
	TooManyRequests             Code = 429
	RequestHeaderFieldsTooLarge Code = 431
	UnavailableForLegalReasons  Code = 451

	InternalServerError           Code = 500
	NotImplemented                Code = 501
	BadGateway                    Code = 502
	ServiceUnavailable            Code = 503
	GatewayTimeout                Code = 504
	HTTPVersionNotSupported       Code = 505
	VariantAlsoNegotiates         Code = 506
	InsufficientStorage           Code = 507
	LoopDetected                  Code = 508
	NotExtended                   Code = 510
	NetworkAuthenticationRequired Code = 511
)

// KnownCodes lists every code having a registered reason phrase.
var KnownCodes []Code

var registered = [...]struct {
	code Code
	text Status
}{
	{Continue, "Continue"},
	{SwitchingProtocols, "Switching Protocols"},
	{Processing, "Processing"},
	{EarlyHints, "Early Hints"},
	{OK, "OK"},
	{Created, "Created"},
	{Accepted, "Accepted"},
	{NonAuthoritativeInfo, "Non-Authoritative Information"},
	{NoContent, "No Content"},
	{ResetContent, "Reset Content"},
	{PartialContent, "Partial Content"},
	{MultiStatus, "Multi-Status"},
	{AlreadyReported, "Already Reported"},
	{IMUsed, "IM Used"},
	{MultipleChoices, "Multiple Choices"},
	{MovedPermanently, "Moved Permanently"},
	{Found, "Found"},
	{SeeOther, "See Other"},
	{NotModified, "Not Modified"},
	{UseProxy, "Use Proxy"},
	{TemporaryRedirect, "Temporary Redirect"},
	{PermanentRedirect, "Permanent Redirect"},
	{BadRequest, "Bad Request"},
	{Unauthorized, "Unauthorized"},
	{PaymentRequired, "Payment Required"},
	{Forbidden, "Forbidden"},
	{NotFound, "Not Found"},
	{MethodNotAllowed, "Method Not Allowed"},
	{NotAcceptable, "Not Acceptable"},
	{ProxyAuthRequired, "Proxy Authentication Required"},
	{RequestTimeout, "Request Timeout"},
	{Conflict, "Conflict"},
	{Gone, "Gone"},
	{LengthRequired, "Length Required"},
	{PreconditionFailed, "Precondition Failed"},
	{ContentTooLarge, "Content Too Large"},
	{URITooLong, "URI Too Long"},
	{UnsupportedMediaType, "Unsupported Media Type"},
	{RangeNotSatisfiable, "Range Not Satisfiable"},
	{ExpectationFailed, "Expectation Failed"},
	{Teapot, "I'm a teapot"},
	{MisdirectedRequest, "Misdirected Request"},
	{UnprocessableContent, "Unprocessable Content"},
	{Locked, "Locked"},
	{FailedDependency, "Failed Dependency"},
	{TooEarly, "Too Early"},
	{UpgradeRequired, "Upgrade Required"},
	{PreconditionRequired, "Precondition Required"},
	{TooManyRequests, "Too Many Requests"},
	{RequestHeaderFieldsTooLarge, "Request Header Fields Too Large"},
	{UnavailableForLegalReasons, "Unavailable For Legal Reasons"},
	{InternalServerError, "Internal Server Error"},
	{NotImplemented, "Not Implemented"},
	{BadGateway, "Bad Gateway"},
	{ServiceUnavailable, "Service Unavailable"},
	{GatewayTimeout, "Gateway Timeout"},
	{HTTPVersionNotSupported, "HTTP Version Not Supported"},
	{VariantAlsoNegotiates, "Variant Also Negotiates"},
	{InsufficientStorage, "Insufficient Storage"},
	{LoopDetected, "Loop Detected"},
	{NotExtended, "Not Extended"},
	{NetworkAuthenticationRequired, "Network Authentication Required"},
}

var texts [NetworkAuthenticationRequired + 1]Status

func init() {
	KnownCodes = make([]Code, 0, len(registered))
	for _, r := range registered {
		KnownCodes = append(KnownCodes, r.code)
		texts[r.code] = r.text
	}
}

// Text returns the registered reason phrase for the code, or an empty Status
// if there is none.
func Text(code Code) Status {
	if int(code) >= len(texts) {
		return ""
	}

	return texts[code]
}

// StringCode formats the code as exactly three digits, the way it is laid out
// in a status line.
func StringCode(code Code) string {
	if code > 999 {
		return strconv.Itoa(int(code))
	}

	return string([]byte{
		byte(code/100) + '0',
		byte(code/10%10) + '0',
		byte(code%10) + '0',
	})
}

// Class is the first digit of a status code.
type Class uint8

const (
	Unclassified Class = iota
	Informational
	Successful
	Redirection
	ClientError
	ServerError
)

// ClassOf returns the class of the code per RFC 9110 section 15. Codes outside
// [100, 599] are grammatically valid in a status line but have no class.
func ClassOf(code Code) Class {
	if code < 100 || code > 599 {
		return Unclassified
	}

	return Class(code / 100)
}
