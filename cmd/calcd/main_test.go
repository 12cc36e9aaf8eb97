package main

import (
	"io"
	"testing"
)

func TestRootCmd_RejectsTinyIdleTTL(t *testing.T) {
	for _, ttl := range []string{"1ns", "3ns", "500ms", "-1s"} {
		cmd := rootCmd()
		cmd.SetArgs([]string{"--addr", "127.0.0.1:0", "--idle-ttl", ttl})
		cmd.SetOut(io.Discard)
		cmd.SetErr(io.Discard)
		if err := cmd.Execute(); err == nil {
			t.Fatalf("--idle-ttl %s: expected error", ttl)
		}
	}
}
