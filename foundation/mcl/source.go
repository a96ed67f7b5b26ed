// File: source.go
// Title: MCL Source Reader
// Description: Assembles program text from a reader line by line.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-12
// Modified: 2026-10-12

package mcl

import (
	"bufio"
	"io"
	"strings"

	mcerror "github.com/msto63/mcalc/foundation/core/error"
)

// maxLineBytes is the longest single line ReadSource accepts
const maxLineBytes = 16 << 20

// ReadSource reads all lines from r and joins them, terminating each line
// with "\n". A final line without a newline gets one too. "\r\n" line
// endings are normalized to "\n".
func ReadSource(r io.Reader) (string, error) {
	var sb strings.Builder

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		sb.WriteString(scanner.Text())
		sb.WriteByte('\n')
	}

	if err := scanner.Err(); err != nil {
		return "", mcerror.Wrap(err, "failed to read source").
			WithCode(mcerror.CodeIOError).
			WithOperation("mcl.ReadSource")
	}

	return sb.String(), nil
}
