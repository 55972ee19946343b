// Command yzprobe sends a single request and prints the status line of the
// response as JSON.
//
//	yzprobe -addr example.com:80 -path /
package main

import (
	"flag"
	"io"
	"log"
	"net"
	"os"

	"github.com/applearound/yzhttp/client"
	"github.com/applearound/yzhttp/config"
	"github.com/applearound/yzhttp/parser"
	"github.com/applearound/yzhttp/transport"
	json "github.com/json-iterator/go"
)

func main() {
	var (
		addr   = flag.String("addr", "localhost:80", "address to connect to")
		host   = flag.String("host", "", "Host header, defaults to -addr")
		path   = flag.String("path", "/", "request path")
		method = flag.String("method", "HEAD", "request method")
	)
	flag.Parse()

	if len(*host) == 0 {
		*host = *addr
	}

	request := client.NewRequest(*host).WithMethod(*method).WithPath(*path).WithClose()
	if err := probe(*addr, request); err != nil {
		log.Fatalf("yzprobe: %s: %s", *addr, err)
	}
}

func probe(addr string, request client.Request) error {
	cfg := config.Default()
	conn, err := net.DialTimeout("tcp", addr, cfg.NET.ReadTimeout)
	if err != nil {
		return err
	}

	session := client.NewSession(
		transport.NewClient(conn, cfg.NET.ReadTimeout, make([]byte, cfg.NET.ReadBufferSize)),
		cfg,
	)
	defer func() {
		if err := session.Close(); err != nil {
			log.Printf("yzprobe: close: %s", err)
		}
	}()

	line, err := session.Send(request)
	if err != nil {
		return err
	}

	return printJSON(os.Stdout, line)
}

func printJSON(w io.Writer, line parser.StatusLine) error {
	stream := json.ConfigDefault.BorrowStream(w)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteVal(line)
	stream.WriteRaw("\n")

	return stream.Flush()
}
