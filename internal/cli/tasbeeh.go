package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/noorjournal/noor/internal/clock"
	"github.com/noorjournal/noor/internal/journal"
)

type TasbeehCountCmd struct {
	Label  string `arg:"" help:"Dhikr phrase to count, e.g. 'Darood Pak'."`
	Target int    `short:"t" default:"33" help:"Target count; 0 means free-running."`
}

// Run drives an interactive counting session on stdin: enter counts,
// 'r' resets, 'q' quits. Sessions are logged per the counter's rules:
// automatically on reaching a finite target, or on reset of a non-zero
// free-running count.
func (c *TasbeehCountCmd) Run(appCtx *Context) error {
	if c.Target < 0 {
		return fmt.Errorf("target must be zero or positive")
	}

	counter := journal.NewCounter(appCtx.Tasbeeh, c.Label, c.Target)
	target := "∞"
	if c.Target > 0 {
		target = fmt.Sprintf("%d", c.Target)
	}
	fmt.Printf("%s (target %s). Enter to count, r to reset, q to quit.\n", c.Label, target)

	// Counting sessions are the one long-lived command; watch for the
	// calendar rolling over underneath it.
	watcher := clock.Watch(func(day string) {
		fmt.Printf("\nA new day (%s) has begun.\n", day)
	})
	defer watcher.Stop()

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Printf("\r%d ", counter.Count())
		if !scanner.Scan() {
			// EOF behaves like quit: free-running non-zero counts still log.
			return counter.Reset()
		}
		switch strings.TrimSpace(scanner.Text()) {
		case "q":
			return counter.Reset()
		case "r":
			if err := counter.Reset(); err != nil {
				return err
			}
		default:
			if err := counter.Increment(); err != nil {
				return err
			}
		}
	}
}

type TasbeehLogCmd struct {
	Limit int `short:"n" default:"10" help:"Number of sessions to show."`
}

func (c *TasbeehLogCmd) Run(appCtx *Context) error {
	sessions := appCtx.Tasbeeh.Sessions()
	if len(sessions) == 0 {
		fmt.Println("No tasbeeh sessions logged yet")
		return nil
	}
	if c.Limit > 0 && len(sessions) > c.Limit {
		sessions = sessions[:c.Limit]
	}
	for _, s := range sessions {
		fmt.Printf("%s  %-20s %5d\n", s.Timestamp, s.Label, s.Count)
	}
	return nil
}
