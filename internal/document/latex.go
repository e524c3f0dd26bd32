package document

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/abhisek/stdexam/internal/course"
)

// allMasteredNote fills the problem list of a student with nothing left to
// attempt; LaTeX rejects an enumerate with no items.
const allMasteredNote = `\item[] Every objective on this assessment is already mastered.`

var latexEscaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// EscapeLaTeX escapes text so it typesets literally.
func EscapeLaTeX(s string) string {
	return latexEscaper.Replace(s)
}

// Write renders plan as a LaTeX document. Output depends only on plan and
// c, so identical inputs produce identical bytes.
func Write(w io.Writer, plan Plan, c course.Course) error {
	bw := bufio.NewWriter(w)

	writePreamble(bw, c.Marker)
	for _, s := range plan.Sections {
		writeTitle(bw, c, s.Identity)
		fmt.Fprintf(bw, "%% form %s\n", s.FormID)
		bw.WriteString("\\begin{enumerate}\n")
		for _, p := range s.Problems {
			bw.WriteString(p.Statement)
			bw.WriteString("\n")
		}
		if len(s.Problems) == 0 {
			bw.WriteString(allMasteredNote + "\n")
		}
		bw.WriteString("\n\\end{enumerate}\n")
		// Does not force an odd page: under duplex printing a section may
		// still begin on the back of the previous student's last sheet.
		bw.WriteString("\n\\cleardoublepage\n\n")
	}
	bw.WriteString("\n\\end{document}\n")

	// bufio.Writer keeps the first write error and returns it here.
	return bw.Flush()
}

func writePreamble(w *bufio.Writer, marker string) {
	w.WriteString("\\documentclass{exam}\n")
	w.WriteString("\\usepackage{amsmath,amssymb,amsthm,graphicx}\n")
	fmt.Fprintf(w, "\\newcommand{%s}[2]{\\item {\\bf Objectives} #1: #2}\n", marker)
	w.WriteString("\\begin{document}\n")
}

func writeTitle(w *bufio.Writer, c course.Course, identity string) {
	fmt.Fprintf(w, "\\begin{center}\n{\\Large\\bf %s}\n\\end{center}\n\n\\medskip\n\n", c.Title)

	w.WriteString("\\fbox{\\parbox{6in}{\n\\vspace{10pt}\n")
	fmt.Fprintf(w, "{\\bf Honor Pledge:} %s\n\n", c.Pledge)
	w.WriteString("\\smallskip\n\nSignature \\hrulefill\n\n\\smallskip\n")
	w.WriteString("\\bigskip\n\n")
	fmt.Fprintf(w, "{\\bf Name: %s}\n\n\\vspace{10pt}}}\n\n", EscapeLaTeX(identity))

	for i, d := range c.Directions {
		if i == 0 {
			fmt.Fprintf(w, "\\noindent{\\bf Directions:} %s\n", d)
			continue
		}
		fmt.Fprintf(w, "\n\\noindent %s\n", d)
	}
	w.WriteString("\n")
}
