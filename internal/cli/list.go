package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"wt/internal/gitutil"
	"wt/internal/timefmt"
	"wt/internal/worktree"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the repository's worktrees",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
}

var (
	branchColor = color.New(color.FgCyan).SprintFunc()
	mutedColor  = color.New(color.FgHiBlack).SprintFunc()
)

// The listing goes to stderr: stdout is reserved for paths the shell wrapper
// may cd into, and a table is never one.
func runList(cmd *cobra.Command, args []string) error {
	sess, err := loadSessionFromWD()
	if err != nil {
		return err
	}

	now := time.Now()
	rows := make([]listRow, 0, len(sess.Worktrees))
	for _, wt := range sess.Worktrees {
		rows = append(rows, collectListRow(sess, wt, now))
	}
	renderWorktreeTable(cmd.ErrOrStderr(), rows)
	return nil
}

type listRow struct {
	Name    string
	Ref     string
	Age     string
	Current bool
}

func collectListRow(sess *session, wt worktree.Worktree, now time.Time) listRow {
	row := listRow{Name: wt.Name()}
	switch {
	case wt.Bare:
		row.Ref = "(bare)"
	case wt.Detached:
		row.Ref = "(detached)"
	default:
		row.Ref = wt.Branch
	}
	row.Current = isWithin(sess.WD, wt.Path)
	if !wt.Bare {
		row.Age = timefmt.Age(headTimestamp(wt.Path), now)
	}
	return row
}

func headTimestamp(dir string) time.Time {
	out, err := gitutil.Run(dir, "log", "-1", "--format=%cI", "HEAD")
	if err != nil {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339, out)
	if err != nil {
		return time.Time{}
	}
	return t
}

func renderWorktreeTable(w io.Writer, rows []listRow) {
	nameWidth, refWidth := 0, 0
	for _, row := range rows {
		if n := runewidth.StringWidth(row.Name); n > nameWidth {
			nameWidth = n
		}
		if n := runewidth.StringWidth(row.Ref); n > refWidth {
			refWidth = n
		}
	}
	for _, row := range rows {
		prefix := "  "
		if row.Current {
			prefix = "* "
		}
		colorize := branchColor
		if strings.HasPrefix(row.Ref, "(") {
			colorize = mutedColor
		}
		refGap := strings.Repeat(" ", refWidth-runewidth.StringWidth(row.Ref))
		line := fmt.Sprintf("%s%s  %s%s  %s",
			prefix,
			pad(row.Name, nameWidth),
			colorize(row.Ref),
			refGap,
			row.Age,
		)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

// pad right-fills s with spaces to the given display width. Width accounting
// uses runewidth so wide runes in branch or directory names stay aligned.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
