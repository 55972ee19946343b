package main

import (
	"bytes"
	"net"
	"testing"

	"github.com/applearound/yzhttp/client"
	"github.com/applearound/yzhttp/http/proto"
	"github.com/applearound/yzhttp/http/status"
	"github.com/applearound/yzhttp/parser"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	var buff bytes.Buffer
	err := printJSON(&buff, parser.StatusLine{
		Protocol: proto.HTTP10,
		Code:     status.NotFound,
		Reason:   "Not Found",
	})
	require.NoError(t, err)
	require.JSONEq(t, `{"protocol":"HTTP/1.0","code":404,"reason":"Not Found"}`, buff.String())
}

func TestProbe(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer func() {
		_ = listener.Close()
	}()

	go func() {
		conn, err := listener.Accept()
		if err != nil {
			return
		}

		buff := make([]byte, 512)
		_, _ = conn.Read(buff)
		_, _ = conn.Write([]byte("HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n"))
		_ = conn.Close()
	}()

	addr := listener.Addr().String()
	require.NoError(t, probe(addr, client.NewRequest(addr)))
}
