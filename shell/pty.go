package shell

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"sync"
	"syscall"

	"github.com/creack/pty"
	"github.com/muesli/cancelreader"
	"golang.org/x/term"
)

// Attach starts cmd on a pseudo-terminal and relays the user's terminal to
// it until the command exits, so installers that prompt (or refuse to run
// without a TTY) behave as if invoked by hand. It returns the command's
// exit code.
func Attach(cmd *exec.Cmd) (int, error) {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return -1, fmt.Errorf("failed to start pty: %w", err)
	}
	// Make sure to close the pty at the end.
	defer ptmx.Close()

	// Handle pty size.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGWINCH)
	go func() {
		for range ch {
			if err := pty.InheritSize(os.Stdin, ptmx); err != nil {
				log.Printf("error resizing pty: %s", err)
			}
		}
	}()
	ch <- syscall.SIGWINCH                        // Initial resize.
	defer func() { signal.Stop(ch); close(ch) }() // Cleanup signals when done.

	// Set stdin in raw mode.
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return -1, fmt.Errorf("failed to set stdin to raw mode: %w", err)
	}

	// Restore the terminal to its original state when we're done.
	defer func() {
		if err := term.Restore(int(os.Stdin.Fd()), oldState); err != nil {
			log.Printf("error restoring terminal: %s", err)
		}
	}()

	// A cancelable reader lets us stop relaying stdin once the command
	// exits. Without this, the pending read conflicts with whoever reads
	// os.Stdin next (e.g. a confirm prompt for a later step).
	cancelReader, err := cancelreader.NewReader(os.Stdin)
	if err != nil {
		return -1, err
	}

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		io.Copy(ptmx, cancelReader)
	}()

	// io.Copy blocks till ptmx is closed.
	io.Copy(os.Stdout, ptmx)

	waitErr := cmd.Wait()

	cancelReader.Cancel()
	wg.Wait()

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, waitErr
	}
	return 0, nil
}
