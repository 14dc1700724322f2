package rcon

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gorcon "github.com/gorcon/rcon"
)

// ListCommand is the console command whose output the extractor understands.
const ListCommand = "cvarlist"

// Fetch connects to a Source engine server and returns the raw output of the
// cvarlist command. The underlying client has no context support, so
// cancellation closes the connection out from under the in-flight exec.
func Fetch(ctx context.Context, addr, password string, timeout time.Duration, log *slog.Logger) (string, error) {
	start := time.Now()
	conn, err := gorcon.Dial(addr, password,
		gorcon.SetDialTimeout(timeout),
		gorcon.SetDeadline(timeout),
	)
	if err != nil {
		return "", fmt.Errorf("rcon dial %s: %w", addr, err)
	}
	defer func() { _ = conn.Close() }()
	log.Debug("rcon connected", "addr", addr, "elapsed", time.Since(start))

	type execResult struct {
		out string
		err error
	}
	ch := make(chan execResult, 1)
	go func() {
		out, err := conn.Execute(ListCommand)
		ch <- execResult{out: out, err: err}
	}()

	select {
	case <-ctx.Done():
		_ = conn.Close()
		return "", ctx.Err()
	case r := <-ch:
		if r.err != nil {
			return "", fmt.Errorf("rcon exec %q: %w", ListCommand, r.err)
		}
		log.Debug("rcon response", "bytes", len(r.out), "elapsed", time.Since(start))
		return r.out, nil
	}
}
