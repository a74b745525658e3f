package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	m "reckon.dev/pkg/reckon/internal/model"
)

// Frame type discriminators sent to websocket clients.
const (
	frameTerm    = "term"
	frameSummary = "summary"
	frameError   = "error"
)

// evalRequest is one computation submitted by a websocket client.
type evalRequest struct {
	Kind    string      `json:"kind"`
	Variant string      `json:"variant,omitempty"`
	From    int         `json:"from,omitempty"`
	To      int         `json:"to,omitempty"`
	Values  []float64   `json:"values,omitempty"`
	Strings []string    `json:"strings,omitempty"`
	Desc    bool        `json:"desc,omitempty"`
	Ops     []opRequest `json:"ops,omitempty"`
}

type opRequest struct {
	Op    string  `json:"op"`
	Value float64 `json:"value"`
}

// toJob converts the wire request into a job for the worker pool.
func (r evalRequest) toJob() m.Job {
	job := m.Job{
		ID:      uuid.NewString(),
		Kind:    m.Kind(r.Kind),
		Variant: m.Variant(r.Variant),
		From:    r.From,
		To:      r.To,
		Values:  r.Values,
		Strings: r.Strings,
		Desc:    r.Desc,
	}

	for _, op := range r.Ops {
		job.Ops = append(job.Ops, m.CalcOp{Name: op.Op, Value: op.Value})
	}

	return job
}

// termFrame mirrors one term result on the wire.
type termFrame struct {
	Type     string   `json:"type"`
	JobID    string   `json:"job_id"`
	Kind     string   `json:"kind"`
	Variant  string   `json:"variant,omitempty"`
	N        int      `json:"n"`
	Value    string   `json:"value,omitempty"`
	Sequence []string `json:"sequence,omitempty"`
	Status   string   `json:"status"`
	Error    string   `json:"error,omitempty"`
	Elapsed  string   `json:"elapsed"`
}

// summaryFrame closes a request once every term has been sent.
type summaryFrame struct {
	Type     string `json:"type"`
	JobID    string `json:"job_id"`
	Terms    int    `json:"terms"`
	Failures int    `json:"failures"`
	Elapsed  string `json:"elapsed"`
}

// errorFrame reports a rejected or failed request.
type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("Failed to upgrade websocket", "remote", r.RemoteAddr, "error", err)
		return
	}

	defer func() { _ = conn.Close() }()

	wsClients.Inc()
	defer wsClients.Dec()

	slog.Debug("Websocket client connected", "remote", r.RemoteAddr)

	limiter := rate.NewLimiter(rate.Limit(s.rateLimit), rateBurst(s.rateLimit))

	for {
		var req evalRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("Websocket client dropped", "remote", r.RemoteAddr, "error", err)
			}

			return
		}

		if !limiter.Allow() {
			if err := conn.WriteJSON(errorFrame{Type: frameError, Error: "rate limit exceeded"}); err != nil {
				return
			}

			continue
		}

		if err := s.runJob(r.Context(), conn, req.toJob()); err != nil {
			return
		}
	}
}

// runJob streams every term of one job to the client and closes the request
// with a summary frame. A non-nil return means the connection is unusable;
// job failures are reported in-band and keep the connection open.
func (s *Server) runJob(ctx context.Context, conn *websocket.Conn, job m.Job) error {
	started := time.Now()

	resultChannel, errorChannel := s.streamer.Stream(ctx, []m.Job{job}, 1)

	terms := 0
	failures := 0

	for result := range resultChannel {
		terms++

		recordEvaluation(result)

		if result.Status == m.TermError {
			failures++
		}

		if err := conn.WriteJSON(newTermFrame(result)); err != nil {
			slog.Debug("Failed to write term frame", "error", err)
			return err
		}
	}

	if err := <-errorChannel; err != nil {
		evalErrors.Inc()
		slog.Debug("Job failed", "job", job.ID, "error", err)

		return conn.WriteJSON(errorFrame{Type: frameError, Error: err.Error()})
	}

	return conn.WriteJSON(summaryFrame{
		Type:     frameSummary,
		JobID:    job.ID,
		Terms:    terms,
		Failures: failures,
		Elapsed:  time.Since(started).Round(time.Microsecond).String(),
	})
}

func newTermFrame(result m.TermResult) termFrame {
	return termFrame{
		Type:     frameTerm,
		JobID:    result.JobID,
		Kind:     string(result.Kind),
		Variant:  string(result.Variant),
		N:        result.N,
		Value:    result.Value,
		Sequence: result.Sequence,
		Status:   result.Status.String(),
		Error:    result.Err,
		Elapsed:  result.Elapsed.Round(time.Microsecond).String(),
	}
}

func rateBurst(limit float64) int {
	if limit < 1 {
		return 1
	}

	return int(limit)
}
