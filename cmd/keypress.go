package cmd

import (
	"os"
	"runtime"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/cursor-reset/cursor-reset/internal/message"
	"github.com/cursor-reset/cursor-reset/internal/platform"
)

// shouldWaitForKeypress is true when the tool was most likely started by
// double-clicking it on Windows, where the console window closes on exit.
func shouldWaitForKeypress(goos, termEnv string) bool {
	return goos == platform.Windows && termEnv == ""
}

func waitForKeypress() {
	if !shouldWaitForKeypress(runtime.GOOS, os.Getenv("TERM")) {
		return
	}
	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return
	}

	message.PromptLine("Press any key to exit...")
	state, err := term.MakeRaw(int(fd))
	if err != nil {
		message.Debug("failed to switch terminal to raw mode: %v", err)
		return
	}
	defer term.Restore(int(fd), state)

	buf := make([]byte, 1)
	_, _ = os.Stdin.Read(buf)
}
