// Package client feeds chunks coming from a transport.Client into the status line
// parser. Everything after the status line is pushed back to the transport,
// untouched.
package client

import (
	"io"
	"strings"

	"github.com/applearound/yzhttp/config"
	"github.com/applearound/yzhttp/http/status"
	"github.com/applearound/yzhttp/parser"
	"github.com/applearound/yzhttp/transport"
	"github.com/pkg/errors"
)

type Session struct {
	conn   transport.Client
	parser *parser.StatusLineParser
	buff   []byte
}

func NewSession(conn transport.Client, cfg *config.Config) *Session {
	return &Session{
		conn:   conn,
		parser: parser.NewStatusLineParser(cfg),
	}
}

// Send writes the request and reads the status line of the response.
func (s *Session) Send(request Request) (parser.StatusLine, error) {
	s.buff = request.Render(s.buff[:0])
	if _, err := s.conn.Write(s.buff); err != nil {
		return parser.StatusLine{}, errors.Wrap(err, "send request")
	}

	return s.ReadStatusLine()
}

// ReadStatusLine reads until a whole status line is parsed. The returned value
// owns its memory.
func (s *Session) ReadStatusLine() (parser.StatusLine, error) {
	s.parser.Reset()

	for {
		data, err := s.conn.Read()
		if len(data) > 0 {
			done, rest, perr := s.parser.Parse(data)
			if perr != nil {
				return parser.StatusLine{}, errors.Wrap(perr, "parse status line")
			}

			if done {
				if len(rest) > 0 {
					s.conn.Pushback(rest)
				}

				line := s.parser.StatusLine()
				line.Reason = status.Status(strings.Clone(string(line.Reason)))

				return line, nil
			}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}

			return parser.StatusLine{}, errors.Wrap(err, "read status line")
		}
	}
}

func (s *Session) Close() error {
	return s.conn.Close()
}
