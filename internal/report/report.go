// Package report builds the downloadable PDF summary of an activity:
// the exercise, the student's answer, the canonical solution and its
// number-line image, and the session score.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Report is everything that goes on the one-page activity summary.
type Report struct {
	ExerciseID    string
	Topic         string
	Prompt        string
	Inequality    string
	Answer        string
	Solution      string
	EndpointNotes []string
	PlotPNG       []byte
	Score         int
	Streak        int
	GeneratedAt   time.Time
}

// The core PDF fonts cover cp1252 only, so the math symbols used in the
// UI are spelled out.
var asciiReplacer = strings.NewReplacer(
	"∞", "inf",
	"∅", "empty set",
	"ℝ", "R",
	"≤", "<=",
	"≥", ">=",
	"²", "^2",
	"∪", "U",
)

// Build renders the report to PDF bytes.
func Build(r Report) ([]byte, error) {
	if r.GeneratedAt.IsZero() {
		r.GeneratedAt = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 9, "Activity: Inequalities Quest", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Date: "+r.GeneratedAt.Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetLineWidth(0.4)
	pdf.Line(10, pdf.GetY(), pageW-10, pdf.GetY())
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Exercise (%s): %s", ascii(r.Topic), r.ExerciseID), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, ascii(r.Prompt), "", "L", false)
	pdf.MultiCell(0, 6, "Inequality: "+ascii(r.Inequality), "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Student answer:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	answer := strings.TrimSpace(r.Answer)
	if answer == "" {
		answer = "(blank)"
	}
	pdf.MultiCell(0, 6, ascii(answer), "", "L", false)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 6, "Correct solution (set):", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.MultiCell(0, 6, ascii(r.Solution), "", "L", false)

	if len(r.EndpointNotes) > 0 {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(0, 6, "Open/closed endpoints:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		for _, line := range r.EndpointNotes {
			pdf.MultiCell(0, 6, "- "+ascii(line), "", "L", false)
		}
	}

	if len(r.PlotPNG) > 0 {
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader("numberline", opts, bytes.NewReader(r.PlotPNG))
		imgW := pageW - 20
		pdf.ImageOptions("numberline", 10, pageH-95, imgW, 0, false, opts, 0, "")
	}

	pdf.SetY(pageH - 35)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, fmt.Sprintf("Score: %d   |   Streak: %d", r.Score, r.Streak), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(90, 90, 90)
	pdf.CellFormat(0, 6, "Inequalities Quest - classroom activity", "", 1, "R", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func ascii(s string) string {
	return asciiReplacer.Replace(s)
}
