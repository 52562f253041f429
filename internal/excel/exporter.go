// Package excel exports the attempt history and per-topic statistics of
// a session as an XLSX workbook.
package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/example/ineqquest/internal/database"
)

const (
	attemptsSheet = "Attempts"
	topicsSheet   = "Topics"
)

// Exporter builds workbooks from the stored history.
type Exporter struct {
	attempts *database.AttemptRepository
	stats    *database.StatisticsRepository
}

// NewExporter creates a new exporter
func NewExporter() *Exporter {
	return &Exporter{
		attempts: database.NewAttemptRepository(),
		stats:    database.NewStatisticsRepository(),
	}
}

// Write renders the workbook for a session to w.
func (e *Exporter) Write(w io.Writer, sessionID string) error {
	f, err := e.Workbook(sessionID)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Workbook builds a two-sheet workbook: the session's attempts and the
// overall per-topic statistics.
func (e *Exporter) Workbook(sessionID string) (*excelize.File, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", attemptsSheet)

	if err := e.fillAttempts(f, sessionID); err != nil {
		f.Close()
		return nil, err
	}
	if err := e.fillTopics(f); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}

func (e *Exporter) fillAttempts(f *excelize.File, sessionID string) error {
	headers := []string{"Submitted", "Exercise", "Topic", "Prompt", "Answer", "Correct solution", "Result"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		f.SetCellValue(attemptsSheet, cell, h)
	}

	attempts, err := e.attempts.GetBySession(sessionID)
	if err != nil {
		return err
	}
	for row, a := range attempts {
		result := "incorrect"
		if a.Correct {
			result = "correct"
		}
		values := []interface{}{
			a.SubmittedAt.Format("2006-01-02 15:04:05"),
			a.ExerciseID,
			a.Topic,
			a.Prompt,
			a.Answer,
			a.Solution,
			result,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			f.SetCellValue(attemptsSheet, cell, v)
		}
	}

	f.SetColWidth(attemptsSheet, "A", "A", 20)
	f.SetColWidth(attemptsSheet, "D", "F", 36)
	return nil
}

func (e *Exporter) fillTopics(f *excelize.File) error {
	if _, err := f.NewSheet(topicsSheet); err != nil {
		return fmt.Errorf("failed to create topics sheet: %w", err)
	}

	headers := []string{"Topic", "Attempts", "Correct", "Accuracy"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		f.SetCellValue(topicsSheet, cell, h)
	}

	stats, err := e.stats.All()
	if err != nil {
		return err
	}
	for row, s := range stats {
		accuracy := 0.0
		if s.TotalAttempts > 0 {
			accuracy = float64(s.CorrectAttempts) / float64(s.TotalAttempts)
		}
		values := []interface{}{s.Topic, s.TotalAttempts, s.CorrectAttempts, accuracy}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to build cell name: %w", err)
			}
			f.SetCellValue(topicsSheet, cell, v)
		}
	}
	return nil
}
