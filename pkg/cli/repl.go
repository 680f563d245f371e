package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
)

// repl runs the interactive session: one query per line, with history.
func (s *session) repl() error {
	rl := liner.NewLiner()
	defer rl.Close()
	rl.SetCtrlCAborts(true)

	fmt.Println("castcheck interactive session. Queries: \"<type> as <type>\". Ctrl-D exits.")
	for {
		input, err := rl.Prompt("cast> ")
		if err == io.EOF || err == liner.ErrPromptAborted {
			fmt.Println()
			return nil
		}
		if err != nil {
			return fmt.Errorf("read query: %w", err)
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == "exit" || input == "quit" {
			return nil
		}
		rl.AppendHistory(input)
		s.evaluate(input, os.Stdout)
	}
}
