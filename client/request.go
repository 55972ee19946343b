package client

import (
	"github.com/applearound/yzhttp/http/proto"
)

// Request is the minimal request needed to provoke a status line: no headers
// except Host and Connection, no body.
type Request struct {
	Method string
	Path   string
	Host   string
	Proto  proto.Proto
	Close  bool
}

func NewRequest(host string) Request {
	return Request{
		Method: "HEAD",
		Path:   "/",
		Host:   host,
		Proto:  proto.HTTP11,
	}
}

func (r Request) WithMethod(method string) Request {
	r.Method = method
	return r
}

func (r Request) WithPath(path string) Request {
	r.Path = path
	return r
}

func (r Request) WithClose() Request {
	r.Close = true
	return r
}

// Render appends the serialized request to buff.
func (r Request) Render(buff []byte) []byte {
	buff = append(buff, r.Method...)
	buff = append(buff, ' ')
	buff = append(buff, r.Path...)
	buff = append(buff, ' ')
	buff = append(buff, r.Proto.String()...)
	buff = append(buff, "\r\nHost: "...)
	buff = append(buff, r.Host...)
	if r.Close {
		buff = append(buff, "\r\nConnection: close"...)
	}

	return append(buff, "\r\n\r\n"...)
}
