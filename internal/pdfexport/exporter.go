package pdfexport

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/abhisek/quizgen/internal/catalog"
	"github.com/abhisek/quizgen/internal/paper"
)

// Exporter renders documents with a fixed Config.
type Exporter struct {
	cfg Config
}

// New creates an Exporter. Zero fields of cfg take their defaults.
func New(cfg Config) *Exporter {
	return &Exporter{cfg: cfg.withDefaults()}
}

// Worksheet is one generated batch for a single concept and difficulty.
type Worksheet struct {
	School     string // display label, e.g. "School of Programming (SOP)"
	Concept    catalog.ConceptID
	Difficulty string
	Entries    []paper.Entry
}

// PaperFileName is the file name a paper is saved under.
func PaperFileName(p *paper.Paper) string {
	return p.ID + ".pdf"
}

// AnswerKeyFileName is the file name a paper's answer key is saved under.
func AnswerKeyFileName(p *paper.Paper) string {
	return p.ID + " - Answer Key.pdf"
}

// WriteFile creates path, including missing directories, and renders into it.
func WriteFile(path string, render func(io.Writer) error) (err error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return render(f)
}

// Worksheet writes a worksheet with its questions, options and answer key.
func (e *Exporter) Worksheet(w io.Writer, ws Worksheet) error {
	const (
		lineHeight = 7.0
		left       = 20.0
		optIndent  = 25.0
		textWidth  = 170.0
	)
	if len(ws.Entries) == 0 {
		return paper.ErrNoQuestions
	}
	concept := cases.Title(language.English).String(string(ws.Concept))

	p := newPage(e.cfg, "A4", left, left, 20, 17)
	p.pdf.SetTitle(fmt.Sprintf("%s - %s", concept, ws.Difficulty), true)

	p.font("B", 18)
	p.centered(e.cfg.WorksheetTitle)
	p.y += 10

	p.font("", 12)
	p.text(left, "School: "+ws.School)
	p.y += 7
	p.text(left, "Concept: "+concept)
	p.y += 7
	p.text(left, "Difficulty: "+ws.Difficulty)
	p.y += 15

	for i, entry := range ws.Entries {
		p.ensure(lineHeight)
		p.font("B", 12)
		p.text(left, fmt.Sprintf("Question %d.", i+1))
		p.y += lineHeight

		p.font("", 12)
		for _, line := range p.wrap(entry.Text, textWidth) {
			p.ensure(lineHeight)
			p.raw(left, line)
			p.y += lineHeight
		}
		p.y += 3

		for _, o := range entry.Options {
			p.ensure(lineHeight)
			p.text(optIndent, o.Letter+") "+o.Text)
			p.y += lineHeight
		}
		p.y += 10
	}

	p.ensure(50)
	p.y += 10
	p.font("B", 14)
	p.text(left, "Answer Key")
	p.y += 10

	p.font("", 12)
	for i, entry := range ws.Entries {
		p.ensure(lineHeight)
		p.text(left, fmt.Sprintf("%d. %s", i+1, entry.CorrectLetter))
		p.y += lineHeight
	}
	return p.output(w)
}

var instructions = []string{
	"•  All questions are multiple-choice.",
	"•  Choose only one correct answer for each question.",
	"•  Mark the correct answer on the OMR sheet.",
}

// Paper writes a printable question paper grouped into concept sections.
func (e *Exporter) Paper(w io.Writer, pp *paper.Paper) error {
	const (
		margin     = 25.0
		lineHeight = 5.5
		optGap     = 8.0
	)
	if len(pp.Entries) == 0 {
		return paper.ErrNoQuestions
	}

	p := newPage(e.cfg, e.cfg.PageSize, margin, margin, 22, 20)
	p.pdf.SetTitle(pp.ID, true)
	content := p.contentWidth()

	p.font("B", 16)
	p.centered(e.cfg.HeaderTitle)
	p.y += 10

	p.font("B", 13)
	fullName := string(pp.School)
	if s, err := catalog.GetSchool(pp.School); err == nil {
		fullName = s.FullName
	}
	p.centered(fullName)
	p.y += 9

	p.font("", 12)
	p.centered(fmt.Sprintf("%s - %s", pp.School, pp.SetName))
	p.y += 12

	p.font("B", 11)
	p.text(margin, "Instructions")
	p.y += 7
	p.font("", 10)
	for _, line := range instructions {
		p.text(margin, line)
		p.y += lineHeight + 0.5
	}
	p.y += 4

	for _, sec := range pp.Sections() {
		p.ensure(20)
		p.separator()

		if sec.Concept != catalog.ConceptNumberPatterns {
			p.font("B", 12)
			p.text(margin, sec.Title)
			p.y += 7

			if len(sec.Explanation) > 0 {
				p.font("", 9.5)
				for _, para := range sec.Explanation {
					if para == "" {
						p.y += lineHeight * 0.6
						continue
					}
					for _, line := range p.wrap(para, content) {
						p.ensure(lineHeight)
						p.raw(margin, line)
						p.y += lineHeight
					}
				}
				p.y += 3
			}
		}

		for _, item := range sec.Items {
			p.ensure(25)

			p.font("B", 10.5)
			label := fmt.Sprintf("Q%d   ", item.Number)
			labelWidth := p.textWidth(label)
			p.text(margin, label)

			p.font("", 10.5)
			for i, line := range p.wrap(item.Entry.Text, content-labelWidth) {
				if i > 0 {
					p.ensure(lineHeight)
				}
				p.raw(margin+labelWidth, line)
				p.y += lineHeight
			}
			p.y += 1.5

			if opts := item.Entry.Options; len(opts) > 0 {
				p.font("", 10)
				texts := make([]string, len(opts))
				widths := make([]float64, len(opts))
				for i, o := range opts {
					texts[i] = o.Letter + ") " + o.Text
					widths[i] = p.textWidth(texts[i])
				}
				cols := optionColumns(widths, optGap, content)
				colWidth := content / float64(cols)
				for i := 0; i < len(texts); i += cols {
					p.ensure(lineHeight)
					for j := i; j < i+cols && j < len(texts); j++ {
						p.text(margin+float64(j-i)*colWidth, texts[j])
					}
					p.y += lineHeight
				}
			}
			p.y += 3
		}
	}

	p.ensure(10)
	p.separator()
	return p.output(w)
}

// optionColumns puts every option on one row when they fit with gap
// between them, and two per row otherwise.
func optionColumns(widths []float64, gap, avail float64) int {
	total := 0.0
	for i, w := range widths {
		total += w
		if i < len(widths)-1 {
			total += gap
		}
	}
	if total <= avail {
		return len(widths)
	}
	return 2
}

// AnswerKey writes the correct letter of every question, by section.
func (e *Exporter) AnswerKey(w io.Writer, pp *paper.Paper) error {
	const (
		lineHeight = 7.0
		left       = 20.0
	)
	if len(pp.Entries) == 0 {
		return paper.ErrNoQuestions
	}

	p := newPage(e.cfg, "A4", left, left, 20, 0)
	p.pdf.SetTitle("Answer Key – "+pp.ID, true)

	p.font("B", 16)
	p.centered("Answer Key – " + pp.ID)
	p.y += 12

	for _, sec := range pp.Sections() {
		p.font("B", 11)
		p.text(left, sec.Title)
		p.y += 8

		p.font("", 10)
		for _, item := range sec.Items {
			if p.y > 270 {
				p.pdf.AddPage()
				p.y = p.top
			}
			p.text(25, fmt.Sprintf("Q%d. %s", item.Number, item.Entry.CorrectLetter))
			p.y += lineHeight
		}
		p.y += 4
	}
	return p.output(w)
}
