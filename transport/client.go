// Package transport delivers raw chunks of a response to the parsers. It's the
// only place where connections are touched.
package transport

import (
	"net"
	"time"

	"github.com/pkg/errors"
)

type Client interface {
	Read() ([]byte, error)
	Pushback([]byte)
	Write([]byte) (int, error)
	Close() error
}

type client struct {
	conn    net.Conn
	buff    []byte
	pending []byte
	timeout time.Duration
}

func NewClient(conn net.Conn, timeout time.Duration, buff []byte) Client {
	return &client{
		buff:    buff,
		conn:    conn,
		timeout: timeout,
	}
}

// Read returns data preserved via Pushback if any, otherwise reads the connection
// into the internal buffer and returns a piece of it back. The returned slice is
// valid until the next Read.
func (c *client) Read() ([]byte, error) {
	if len(c.pending) > 0 {
		pending := c.pending
		c.pending = nil

		return pending, nil
	}

	if err := c.conn.SetReadDeadline(time.Now().Add(c.timeout)); err != nil {
		return nil, errors.Wrap(err, "set read deadline")
	}

	n, err := c.conn.Read(c.buff)
	if err != nil {
		return c.buff[:n], errors.WithStack(err)
	}

	return c.buff[:n], nil
}

// Pushback preserves a chunk of data from previous read for the next read.
func (c *client) Pushback(b []byte) {
	c.pending = b
}

func (c *client) Write(b []byte) (int, error) {
	n, err := c.conn.Write(b)
	return n, errors.Wrap(err, "write")
}

func (c *client) Close() error {
	return c.conn.Close()
}
