package dummy

import (
	"io"

	"github.com/applearound/yzhttp/transport"
)

var _ transport.Client = new(Client)

// Client returns the same data as it was initialised with on every read, unless set to
// shoot once. It also tracks all the written data.
type Client struct {
	closed  bool
	once    bool
	pointer int
	tmp     []byte
	written []byte
	data    [][]byte
}

func NewMockClient(data ...[]byte) *Client {
	return &Client{
		data: data,
	}
}

// NewChunkedClient splits data into pieces of n bytes, each returned by a separate
// read. The client shoots once.
func NewChunkedClient(data []byte, n int) *Client {
	var parts [][]byte
	for i := 0; i < len(data); i += n {
		parts = append(parts, data[i:min(i+n, len(data))])
	}

	return NewMockClient(parts...).Once()
}

func (c *Client) Read() (data []byte, err error) {
	if c.closed {
		return nil, io.EOF
	}

	if len(c.tmp) > 0 {
		data, c.tmp = c.tmp, nil

		return data, nil
	}

	if c.pointer >= len(c.data) {
		if c.once {
			c.closed = true
			return nil, io.EOF
		}

		c.pointer = 0
	}

	piece := c.data[c.pointer]
	c.pointer++

	return piece, nil
}

func (c *Client) Pushback(takeback []byte) {
	c.tmp = takeback
}

func (c *Client) Write(p []byte) (int, error) {
	c.written = append(c.written, p...)
	return len(p), nil
}

func (c *Client) Close() error {
	c.closed = true
	return nil
}

func (c *Client) Once() *Client {
	c.once = true
	return c
}

func (c *Client) Written() string {
	return string(c.written)
}
