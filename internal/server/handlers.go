package server

import (
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"

	"github.com/matzehuels/hemicycle/pkg/errors"
	"github.com/matzehuels/hemicycle/pkg/observability"
	"github.com/matzehuels/hemicycle/pkg/party"
	"github.com/matzehuels/hemicycle/pkg/pipeline"
)

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

var formTmpl = template.Must(template.New("form").Parse(`<!DOCTYPE html>
<html>
<head><title>Parliament diagram</title></head>
<body>
<h1>Parliament diagram</h1>
<p>Type the parties separated by semicolons, each with a name, a number of
seats (can be 0) and optionally a colour, separated by commas. For example
<code>Party A, 33; Party B, 22, #99FF99</code> gives two parties, Party A
with 33 seats and a random colour and Party B in light green.</p>
{{if .Error}}<p style="color:#b00"><strong>{{.Code}}</strong>: {{.Error}}</p>{{end}}
<form method="post" action="/">
<p>List of parties: <input type="text" name="inputlist" size="60" value="{{.Input}}"/></p>
<p><input type="submit" value="Send"/></p>
</form>
</body>
</html>
`))

type formPage struct {
	Input string
	Error string
	Code  errors.Code
}

func (s *Server) renderForm(w http.ResponseWriter, status int, page formPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := formTmpl.Execute(w, page); err != nil {
		s.logger.Error("render form", "error", err)
	}
}

func (s *Server) handleForm(w http.ResponseWriter, r *http.Request) {
	s.renderForm(w, http.StatusOK, formPage{})
}

// handleFormSubmit renders the inputlist field as an SVG. Failures show the
// form again with the error.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := r.ParseForm(); err != nil {
		s.renderForm(w, http.StatusBadRequest, formPage{Error: "invalid form", Code: errors.ErrCodeInvalidInput})
		return
	}
	input := r.PostForm.Get("inputlist")

	res, err := s.runner.Execute(r.Context(), party.ParseList(input), pipeline.Options{})
	if err != nil {
		s.logFailure(r, err)
		code := errors.GetCode(err)
		msg := errors.UserMessage(err)
		if code == "" {
			code, msg = errors.ErrCodeInternal, "internal error"
		}
		s.renderForm(w, statusFor(code), formPage{Input: input, Error: msg, Code: code})
		return
	}
	writeArtifact(w, pipeline.FormatSVG, res)
}

// diagramRequest is the body of POST /api/v1/diagram.
type diagramRequest struct {
	Parties []struct {
		Name  string      `json:"name"`
		Seats json.Number `json:"seats"`
		Color *string     `json:"color,omitempty"`
	} `json:"parties"`
	Format  string `json:"format,omitempty"`
	Palette string `json:"palette,omitempty"`
	Seed    uint64 `json:"seed,omitempty"`
}

func (req diagramRequest) records() []party.Record {
	recs := make([]party.Record, 0, len(req.Parties))
	for _, p := range req.Parties {
		rec := party.Record{p.Name, p.Seats.String()}
		if p.Color != nil {
			rec = append(rec, *p.Color)
		}
		recs = append(recs, rec)
	}
	return recs
}

func (s *Server) handleDiagramJSON(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req diagramRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "invalid request body")
		return
	}
	s.renderDiagram(w, r, req.records(), req.Format, req.Palette, req.Seed)
}

func (s *Server) handleDiagramQuery(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	var seed uint64
	if v := q.Get("seed"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.ErrCodeInvalidInput, "seed must be a non-negative integer")
			return
		}
		seed = n
	}
	s.renderDiagram(w, r, party.ParseList(q.Get("parties")), q.Get("format"), q.Get("palette"), seed)
}

func (s *Server) renderDiagram(w http.ResponseWriter, r *http.Request, recs []party.Record, format, palette string, seed uint64) {
	if format == "" {
		format = pipeline.FormatSVG
	}
	opts := pipeline.Options{
		Formats: []string{format},
		Palette: palette,
		Seed:    seed,
	}

	res, err := s.runner.Execute(r.Context(), recs, opts)
	if err != nil {
		s.logFailure(r, err)
		writeErr(w, err)
		return
	}
	writeArtifact(w, format, res)
}

func (s *Server) logFailure(r *http.Request, err error) {
	code := errors.GetCode(err)
	if statusFor(code) == http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.logger.Error("render failed", "error", err, "request_id", RequestID(r.Context()))
		return
	}
	s.logger.Debug("rejected input", "code", code, "request_id", RequestID(r.Context()))
}

func writeArtifact(w http.ResponseWriter, format string, res *pipeline.Result) {
	w.Header().Set("Content-Type", contentTypes[format])
	cacheStatus := "miss"
	if res.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Seats", strconv.Itoa(res.Stats.TotalSeats))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}
