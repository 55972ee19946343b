package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/applearound/yzhttp/config"
	"github.com/applearound/yzhttp/http/proto"
	"github.com/applearound/yzhttp/http/status"
	"github.com/dchest/uniuri"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func getStatusLineParser() *StatusLineParser {
	return NewStatusLineParser(config.Default())
}

func parsePartially(p *StatusLineParser, data []byte, n int) (done bool, rest []byte, err error) {
	parts := splitIntoParts(data, n)

	for i, part := range parts {
		done, rest, err = p.Parse(part)
		if err != nil || done {
			rest = append([]byte(nil), rest...)
			for _, tail := range parts[i+1:] {
				rest = append(rest, tail...)
			}

			return done, rest, err
		}
	}

	return done, rest, err
}

func requireStatusLine(t *testing.T, want StatusLine, p *StatusLineParser) {
	if diff := cmp.Diff(want, p.StatusLine()); diff != "" {
		t.Fatalf("status line mismatch (-want +got):\n%s", diff)
	}
}

func TestStatusLineParser(t *testing.T) {
	t.Run("simple", func(t *testing.T) {
		p := getStatusLineParser()
		done, rest, err := p.Parse([]byte("HTTP/1.1 200 OK\r\n"))
		require.NoError(t, err)
		require.True(t, done)
		require.Empty(t, rest)
		requireStatusLine(t, StatusLine{
			Protocol: proto.HTTP11,
			Code:     status.OK,
			Reason:   "OK",
		}, p)
	})

	t.Run("rest after CRLF", func(t *testing.T) {
		p := getStatusLineParser()
		done, rest, err := p.Parse([]byte("HTTP/1.0 404 Not Found\r\nServer: yz\r\n\r\n"))
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, "Server: yz\r\n\r\n", string(rest))
		requireStatusLine(t, StatusLine{
			Protocol: proto.HTTP10,
			Code:     status.NotFound,
			Reason:   "Not Found",
		}, p)
	})

	t.Run("empty reason", func(t *testing.T) {
		p := getStatusLineParser()
		done, _, err := p.Parse([]byte("HTTP/1.1 204 \r\n"))
		require.NoError(t, err)
		require.True(t, done)
		requireStatusLine(t, StatusLine{Protocol: proto.HTTP11, Code: status.NoContent}, p)
	})

	t.Run("every chunk size", func(t *testing.T) {
		reason := uniuri.NewLenChars(32, reasonChars)
		data := []byte("HTTP/1.1 418 " + reason + "\r\nHello: world\r\n")
		p := getStatusLineParser()

		for n := 1; n <= len(data); n++ {
			done, rest, err := parsePartially(p, data, n)
			require.NoError(t, err, n)
			require.True(t, done, n)
			require.Equal(t, "Hello: world\r\n", string(rest), n)
			requireStatusLine(t, StatusLine{
				Protocol: proto.HTTP11,
				Code:     status.Teapot,
				Reason:   status.Status(reason),
			}, p)
			p.Reset()
		}
	})

	t.Run("done is absorbing", func(t *testing.T) {
		p := getStatusLineParser()
		_, _, err := p.Parse([]byte("HTTP/1.1 200 OK\r\n"))
		require.NoError(t, err)
		done, rest, err := p.Parse([]byte("HTTP/1.1 500 Internal Server Error\r\n"))
		require.NoError(t, err)
		require.True(t, done)
		require.Equal(t, "HTTP/1.1 500 Internal Server Error\r\n", string(rest))
		require.Equal(t, status.OK, p.StatusLine().Code)
	})

	t.Run("unsupported version", func(t *testing.T) {
		p := getStatusLineParser()
		_, _, err := p.Parse([]byte("HTTP/2.0 200 OK\r\n"))
		require.ErrorIs(t, err, ErrUnsupportedVersion)
	})

	t.Run("reason too long", func(t *testing.T) {
		cfg := config.Default()
		cfg.StatusLine.ReasonSpace.Maximal = 16
		p := NewStatusLineParser(cfg)
		_, _, err := p.Parse([]byte("HTTP/1.1 200 " + strings.Repeat("a", 17) + "\r\n"))
		require.ErrorIs(t, err, ErrReasonTooLong)
	})

	t.Run("string", func(t *testing.T) {
		p := getStatusLineParser()
		_, _, err := p.Parse([]byte("HTTP/1.1 004 Strange\r\n"))
		require.NoError(t, err)
		require.Equal(t, "HTTP/1.1 004 Strange", p.StatusLine().String())
	})
}

func TestStatusLineParserMalformed(t *testing.T) {
	for _, tc := range []struct {
		Name  string
		Raw   string
		Phase Phase
		Byte  byte
	}{
		{"bad name", "HTTX/1.1 200 OK\r\n", VersionP, 'X'},
		{"no SP after version", "HTTP/1.1\t200 OK\r\n", SPAfterVersion, '\t'},
		{"double SP after version", "HTTP/1.1  200 OK\r\n", CodeDigit1, ' '},
		{"short code", "HTTP/1.1 20 OK\r\n", CodeDigit3, ' '},
		{"long code", "HTTP/1.1 2000 OK\r\n", SPAfterCode, '0'},
		{"no SP after code", "HTTP/1.1 200\r\n", SPAfterCode, '\r'},
		{"bare LF", "HTTP/1.1 200 OK\n", LineCR, '\n'},
		{"control in reason", "HTTP/1.1 200 O\x00K\r\n", LineCR, 0x00},
		{"CR without LF", "HTTP/1.1 200 OK\r\r", LineLF, '\r'},
	} {
		t.Run(tc.Name, func(t *testing.T) {
			for _, n := range []int{1, 5, len(tc.Raw)} {
				p := getStatusLineParser()
				done, _, err := parsePartially(p, []byte(tc.Raw), n)
				require.False(t, done)
				require.ErrorIs(t, err, ErrMalformedInput)

				var malformed *MalformedError
				require.True(t, errors.As(err, &malformed))
				require.Equal(t, tc.Phase, malformed.Phase)
				require.Equal(t, tc.Byte, malformed.Byte)
			}
		})
	}
}

func BenchmarkStatusLineParser(b *testing.B) {
	data := []byte("HTTP/1.1 200 OK\r\n")
	p := getStatusLineParser()
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = p.Parse(data)
		p.Reset()
	}
}
