package server

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/example/ineqquest/internal/generator"
	"github.com/example/ineqquest/internal/interval"
	"github.com/example/ineqquest/internal/plot"
	"github.com/example/ineqquest/internal/report"
	"github.com/example/ineqquest/internal/session"
	"github.com/example/ineqquest/internal/solve"
	"github.com/example/ineqquest/pkg/models"
)

type activityData struct {
	Prompt        string
	ExerciseID    string
	Topic         string
	Hint          string
	Topics        []string
	Selected      string
	Score         int
	Streak        int
	BestStreak    int
	Message       string
	MessageKind   string // "good", "bad" or "info"
	LastAnswer    string
	Reveal        bool
	Solution      string
	EndpointNotes []string
	PlotB64       string
}

type exploreResult struct {
	Line     string
	Err      string
	Solution string
	PlotB64  string
}

type exploreData struct {
	Input        string
	Results      []exploreResult
	Intersection *exploreResult
}

func (s *Server) handleActivity(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	t := s.loadSession(w, r)
	q := r.URL.Query()

	data := activityData{
		Prompt:      t.Current.Prompt,
		ExerciseID:  t.Current.ID,
		Topic:       string(t.Current.Topic),
		Hint:        t.Current.Hint,
		Topics:      topicNames(),
		Selected:    string(t.Topic),
		Score:       t.Score,
		Streak:      t.Streak,
		BestStreak:  t.BestStreak,
		Message:     q.Get("msg"),
		MessageKind: q.Get("kind"),
		LastAnswer:  t.LastAnswer,
		Reveal:      q.Get("reveal") == "1",
	}
	if data.Reveal {
		data.Solution = t.Current.Solution.String()
		data.EndpointNotes = t.Current.Solution.Describe()
	}
	if q.Get("plot") == "1" || data.Reveal {
		png, err := plot.NumberLine(t.Current.Solution, "Solution on the number line")
		if err != nil {
			s.log.Errorw("failed to render plot", "error", err)
			http.Error(w, "failed to render plot", http.StatusInternalServerError)
			return
		}
		data.PlotB64 = base64.StdEncoding.EncodeToString(png)
	}

	if err := s.tmpl.ExecuteTemplate(w, "activity", data); err != nil {
		s.log.Errorw("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	t := s.loadSession(w, r)
	answer := r.FormValue("answer")

	out := t.Submit(answer)

	attempt := &models.Attempt{
		SessionID:  t.ID,
		ExerciseID: t.Current.ID,
		Topic:      string(t.Current.Topic),
		Prompt:     t.Current.Prompt,
		Answer:     answer,
		Solution:   out.Solution.String(),
		Correct:    out.Correct,
	}
	if err := s.attempts.Create(attempt); err != nil {
		s.log.Errorw("failed to store attempt", "error", err)
		http.Error(w, "failed to store attempt", http.StatusInternalServerError)
		return
	}
	if err := s.stats.Increment(attempt.Topic, out.Correct); err != nil {
		s.log.Warnw("failed to update statistics", "error", err)
	}
	if err := s.persistSession(t); err != nil {
		s.log.Warnw("failed to persist session", "error", err)
	}

	var msg, kind string
	switch {
	case out.Correct:
		msg, kind = "Correct! +1 point", "good"
	case out.Parsed:
		msg, kind = "Not quite. Try again!", "bad"
	default:
		msg, kind = "Could not read that notation. Try: (-∞,2] U (5,∞) or [-2,3) or ∅ or R — counted as incorrect.", "bad"
	}
	redirectActivity(w, r, url.Values{"msg": {msg}, "kind": {kind}, "plot": {"1"}})
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	t := s.loadSession(w, r)
	topic := generator.ParseTopic(r.FormValue("topic"))
	t.Next(s.gen, topic)
	if err := s.persistSession(t); err != nil {
		s.log.Warnw("failed to persist session", "error", err)
	}
	redirectActivity(w, r, url.Values{})
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	t := s.store.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    t.ID,
		Path:     "/",
		HttpOnly: true,
		Expires:  time.Now().Add(24 * time.Hour),
	})
	if err := s.persistSession(t); err != nil {
		s.log.Warnw("failed to persist new session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleExplore(w http.ResponseWriter, r *http.Request) {
	data := exploreData{
		Input: "|x - 2| < 3\nx^2 - 5x + 6 > 0",
	}

	if r.Method == http.MethodPost {
		data.Input = r.FormValue("inequalities")
		var sets []interval.Set
		for _, line := range strings.Split(data.Input, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			res := exploreResult{Line: line}
			ineq, err := solve.Parse(line)
			if err != nil {
				res.Err = err.Error()
				data.Results = append(data.Results, res)
				continue
			}
			sol := ineq.Solve()
			sets = append(sets, sol)
			res.Solution = sol.String()
			png, err := plot.NumberLine(sol, "Solution of "+ineq.Display())
			if err != nil {
				s.log.Errorw("failed to render plot", "error", err)
				http.Error(w, "failed to render plot", http.StatusInternalServerError)
				return
			}
			res.PlotB64 = base64.StdEncoding.EncodeToString(png)
			data.Results = append(data.Results, res)
		}

		if len(sets) > 1 {
			common := sets[0]
			for _, set := range sets[1:] {
				common = interval.Intersect(common, set)
			}
			png, err := plot.NumberLine(common, "Common solution")
			if err != nil {
				s.log.Errorw("failed to render plot", "error", err)
				http.Error(w, "failed to render plot", http.StatusInternalServerError)
				return
			}
			data.Intersection = &exploreResult{
				Solution: common.String(),
				PlotB64:  base64.StdEncoding.EncodeToString(png),
			}
		}
	}

	if err := s.tmpl.ExecuteTemplate(w, "explore", data); err != nil {
		s.log.Errorw("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
	}
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	t := s.loadSession(w, r)

	png, err := plot.NumberLine(t.Current.Solution, "Solution on the number line")
	if err != nil {
		s.log.Errorw("failed to render plot", "error", err)
		http.Error(w, "failed to render plot", http.StatusInternalServerError)
		return
	}
	pdf, err := report.Build(report.Report{
		ExerciseID:    t.Current.ID,
		Topic:         string(t.Current.Topic),
		Prompt:        t.Current.Prompt,
		Inequality:    t.Current.Inequality.String(),
		Answer:        t.LastAnswer,
		Solution:      t.Current.Solution.String(),
		EndpointNotes: t.Current.Solution.Describe(),
		PlotPNG:       png,
		Score:         t.Score,
		Streak:        t.Streak,
	})
	if err != nil {
		s.log.Errorw("failed to build pdf", "error", err)
		http.Error(w, "failed to build pdf", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=activity_%s.pdf", t.Current.ID))
	w.Write(pdf)
}

func (s *Server) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	t := s.loadSession(w, r)

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=inequalities_history.xlsx")
	if err := s.exporter.Write(w, t.ID); err != nil {
		s.log.Errorw("failed to export workbook", "error", err)
		http.Error(w, "failed to export workbook", http.StatusInternalServerError)
	}
}

// persistSession snapshots the tracker into the sessions table.
func (s *Server) persistSession(t *session.Tracker) error {
	return s.sessions.Upsert(&models.Session{
		ID:         t.ID,
		Score:      t.Score,
		Streak:     t.Streak,
		BestStreak: t.BestStreak,
		StartedAt:  t.StartedAt,
	})
}

func topicNames() []string {
	topics := generator.Topics()
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = string(t)
	}
	return names
}

func redirectActivity(w http.ResponseWriter, r *http.Request, q url.Values) {
	target := "/"
	if enc := q.Encode(); enc != "" {
		target += "?" + enc
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
