package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/protsap/contactbook/internal/db"
	"github.com/protsap/contactbook/internal/parser"
)

var (
	newStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	ruleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4")).Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func NewLine(w io.Writer, name string) {
	fmt.Fprintln(w, newStyle.Render("new")+"  "+name)
}

func OkLine(w io.Writer, path string, contacts int) {
	fmt.Fprintf(w, "%s  %s %s\n", newStyle.Render("ok "), path, faintStyle.Render(fmt.Sprintf("(%d contacts)", contacts)))
}

func FailLine(w io.Writer, path string, err error) {
	fmt.Fprintf(w, "%s  %s: %v\n", errStyle.Render("err"), path, err)
}

func SummaryLine(w io.Writer, count int, files int) {
	fmt.Fprintf(w, "imported %d contacts from %d files\n", count, files)
}

// Tree prints a match tree, one node per line, indented by depth.
func Tree(w io.Writer, pairs parser.Pairs) {
	for _, n := range pairs {
		treeNode(w, n, 0)
	}
}

func treeNode(w io.Writer, n *parser.Node, depth int) {
	line := strings.Repeat("  ", depth) + ruleStyle.Render(n.Rule.String()) + " " +
		faintStyle.Render(fmt.Sprintf("%d..%d", n.Span.Start, n.Span.End))
	if len(n.Children) == 0 {
		line += " " + n.Text
	}
	fmt.Fprintln(w, line)
	for _, c := range n.Children {
		treeNode(w, c, depth+1)
	}
}

// Diagnostic prints a parse error with the offending source line and a
// caret under the failing column.
func Diagnostic(w io.Writer, path, input string, perr *parser.Error) {
	fmt.Fprintf(w, "%s:%s\n", path, errStyle.Render(perr.Error()))

	lines := strings.Split(input, "\n")
	if perr.Line-1 < len(lines) {
		src := strings.TrimRight(lines[perr.Line-1], "\r")
		fmt.Fprintf(w, "  %s\n", src)
		fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", perr.Column-1), errStyle.Render("^"))
	}
}

func ContactRow(w io.Writer, c db.Contact, idWidth, nameWidth int) {
	id := fmt.Sprintf("%d", c.ID)
	name := c.Name + " " + c.Surname
	phone := ""
	if len(c.Phones) > 0 {
		phone = c.Phones[0]
		if extra := len(c.Phones) - 1; extra > 0 {
			phone += faintStyle.Render(fmt.Sprintf(" (+%d)", extra))
		}
	}
	fmt.Fprintf(w, "%-*s  %-*s  %s\n", idWidth, id, nameWidth, name, phone)
}

func ShowContact(w io.Writer, c db.Contact) {
	fmt.Fprintf(w, "%s %s %s\n", ruleStyle.Render(fmt.Sprintf("#%d", c.ID)), c.Name, c.Surname)
	fmt.Fprintf(w, "  address:  %s\n", c.Address)
	fmt.Fprintf(w, "  birthday: %s\n", c.Birthday.Format("2006-01-02"))
	for _, p := range c.Phones {
		fmt.Fprintf(w, "  phone:    %s\n", p)
	}
	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf("  from %s:%d", c.Source, c.Line)))
}

func ImportRow(w io.Writer, im db.Import) {
	fmt.Fprintf(w, "%s  %s  %s  %d contacts\n", im.ID, faintStyle.Render(im.ImportedAt), im.Source, im.Contacts)
}

func StatsReport(w io.Writer, s db.Stats) {
	fmt.Fprintf(w, "Contacts: %d\n", s.Contacts)
	fmt.Fprintf(w, "  phones:  %d\n", s.Phones)
	fmt.Fprintf(w, "  imports: %d\n", s.Imports)
}
