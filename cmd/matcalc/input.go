package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// gatherOperands collects operand texts in source order. File arguments are
// read one operand per file ("-" reads stdin); with no arguments, stdin is
// read once and split into blank-line-separated blocks.
func gatherOperands(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return splitBlocks(string(data)), nil
	}

	operands := make([]string, len(args))
	for i, path := range args {
		var data []byte
		var err error
		if path == "-" {
			data, err = io.ReadAll(cmd.InOrStdin())
		} else {
			data, err = os.ReadFile(path)
		}
		if err != nil {
			return nil, fmt.Errorf("read operand %d: %w", i+1, err)
		}
		operands[i] = string(data)
	}
	return operands, nil
}

// splitBlocks splits text on blank lines into operand blocks, preserving the
// order the blocks appear in. Lines holding only whitespace count as blank;
// empty blocks are dropped.
func splitBlocks(text string) []string {
	var blocks []string
	var cur []string
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()
	return blocks
}
