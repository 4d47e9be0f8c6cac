// Package render prints game, graph and score state as terminal tables for
// the lvdeadlock CLI.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/lvdeadlock/banker"
	"github.com/katalvlaran/lvdeadlock/rag"
	"github.com/katalvlaran/lvdeadlock/scores"
	"github.com/katalvlaran/lvdeadlock/simulator"
)

// Printer writes tables to an io.Writer.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer writing to w. With color false the output carries
// no ANSI escapes.
func New(w io.Writer, color bool) *Printer {
	return &Printer{w: w, color: color}
}

// createTable creates a new table with standard styling
func (p *Printer) createTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleRounded)

	return t
}

// paint applies c when colour output is on.
func (p *Printer) paint(c text.Color, s string) string {
	if !p.color {
		return s
	}

	return c.Sprint(s)
}

func (p *Printer) header(cols ...string) table.Row {
	row := make(table.Row, len(cols))
	for k, c := range cols {
		row[k] = p.paint(text.FgHiCyan, c)
	}

	return row
}

// Snapshot prints the per-process matrices, the available vector and the
// safety verdict.
func (p *Printer) Snapshot(s simulator.Snapshot) {
	fmt.Fprintf(p.w, "Level %d  phase: %s  score: %d  time: %ds\n", s.Level, s.Phase, s.Score, s.TimeRemaining)

	t := p.createTable()
	t.AppendHeader(p.header("PROCESS", "MAX", "ALLOCATION", "NEED", "STATUS"))
	for i := 0; i < s.Processes; i++ {
		status := "waiting"
		switch {
		case s.IsCompleted(i):
			status = p.paint(text.FgGreen, "completed")
		case s.Selected == i:
			status = p.paint(text.FgYellow, "selected")
		}
		t.AppendRow(table.Row{
			"P" + strconv.Itoa(i),
			vector(s.Max[i]),
			vector(s.Allocation[i]),
			vector(s.Need[i]),
			status,
		})
	}
	t.AppendFooter(table.Row{"AVAILABLE", vector(s.Available), "", "", ""})
	t.Render()

	p.Safety(banker.SafetyResult{Safe: s.Safe, Sequence: s.SafeSequence})
}

// Safety prints the verdict line. For unsafe states the sequence is the
// partial order found before the scan stalled.
func (p *Printer) Safety(r banker.SafetyResult) {
	if r.Safe {
		fmt.Fprintf(p.w, "%s sequence: %s\n", p.paint(text.FgGreen, "SAFE"), sequence(r.Sequence))
		return
	}
	fmt.Fprintf(p.w, "%s partial sequence: %s\n", p.paint(text.FgRed, "UNSAFE"), sequence(r.Sequence))
}

// Levels prints one row per catalog level.
func (p *Printer) Levels(c simulator.Catalog) {
	t := p.createTable()
	t.AppendHeader(p.header("LEVEL", "P", "R", "SAFE", "SEQUENCE", "DESCRIPTION"))
	for _, l := range c.Levels() {
		sc := c[l]
		res := sc.Safety()
		t.AppendRow(table.Row{l, sc.Processes(), sc.Resources(), res.Safe, sequence(res.Sequence), sc.Description})
	}
	t.Render()
}

// Graph prints the edges of g with their kind and cycle mark, then the
// detected cycles by node ID, one per back edge.
func (p *Printer) Graph(g *rag.Graph) {
	d := g.DetectCycles()
	labels := make(map[string]string, g.NodeCount())
	for _, n := range g.Nodes() {
		labels[n.ID] = n.Label
	}
	name := func(id string) string {
		if l, ok := labels[id]; ok && l != id {
			return fmt.Sprintf("%s (%s)", id, l)
		}
		return id
	}

	s := g.Summary()
	fmt.Fprintf(p.w, "Mode: %s  processes: %d  resources: %d  edges: %d\n", g.Mode(), s.Processes, s.Resources, s.Edges)

	t := p.createTable()
	t.AppendHeader(p.header("FROM", "TO", "KIND", "IN CYCLE"))
	for _, e := range g.Edges() {
		mark := ""
		if e.InCycle {
			mark = p.paint(text.FgRed, "yes")
		}
		t.AppendRow(table.Row{name(e.From), name(e.To), g.EdgeKind(e), mark})
	}
	t.Render()

	if !d.HasCycle {
		fmt.Fprintln(p.w, p.paint(text.FgGreen, "No deadlock cycle."))
		return
	}
	fmt.Fprintf(p.w, "%s %d cycle(s):\n", p.paint(text.FgRed, "DEADLOCK"), len(d.Cycles))
	for k, c := range d.Cycles {
		fmt.Fprintf(p.w, "  %d. %s\n", k+1, strings.Join(c, " → "))
	}
}

// Scores prints the high score table.
func (p *Printer) Scores(entries []scores.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(p.w, p.paint(text.FgYellow, "No high scores yet."))
		return
	}
	t := p.createTable()
	t.AppendHeader(p.header("RANK", "SCORE", "DATE"))
	for k, e := range entries {
		t.AppendRow(table.Row{k + 1, e.Score, e.Date})
	}
	t.Render()
}

// vector formats v as "[a b c]".
func vector(v []int) string {
	return fmt.Sprint(v)
}

// sequence formats a process order as "P1 → P0", or "-" when empty.
func sequence(seq []int) string {
	if len(seq) == 0 {
		return "-"
	}
	parts := make([]string, len(seq))
	for k, i := range seq {
		parts[k] = "P" + strconv.Itoa(i)
	}

	return strings.Join(parts, " → ")
}
