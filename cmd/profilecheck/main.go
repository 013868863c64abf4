// Command profilecheck validates user profile records read from JSON or YAML
// files, or from standard input.
//
//	profilecheck validate users.json more.yaml
//	cat user.json | profilecheck validate --lang es
//
// Exit status is 0 when every record is valid, 1 when any record has
// violations and 2 on usage or decoding errors.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
