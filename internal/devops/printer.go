// Package devops emits Azure DevOps logging commands.
package devops

import (
	"fmt"
	"io"
	"strings"
)

// Printer writes logging commands to out. Groups function as a stack, so the
// printer keeps track of the open groups.
type Printer struct {
	out    io.Writer
	groups []*Group
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// LogError emits an error issue. Only the first line of the message is kept
// and ANSI escape codes are removed.
func (p *Printer) LogError(msg string, a ...any) {
	p.logIssue("error", fmt.Sprintf(msg, a...))
}

func (p *Printer) logIssue(kind, msg string) {
	msg, _, _ = strings.Cut(StripANSI(msg), "\n")
	fmt.Fprintf(p.out, "##vso[task.logissue type=%s]%s\n", kind, msg)
}
