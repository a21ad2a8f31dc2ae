package main

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

//go:embed assets/templates
var templateFiles embed.FS

// Server wires the fetch gateway and decoder into the web surface
type Server struct {
	gateway *Gateway
	decoder *Decoder
	tmpl    *template.Template
	log     *slog.Logger
}

// resultPage carries the fields the result template renders; Error set
// means the other fields are empty
type resultPage struct {
	Error       string
	AirportCode string
	RawMETAR    string
	Decoded     *Report
}

// NewServer builds a Server with the embedded HTML templates
func NewServer(gateway *Gateway, decoder *Decoder, logger *slog.Logger) *Server {
	tmpl := template.Must(template.ParseFS(templateFiles, "assets/templates/*.html"))
	return &Server{gateway: gateway, decoder: decoder, tmpl: tmpl, log: logger}
}

// Routes returns the HTTP handler for the web form, JSON API, and
// health endpoints
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/", s.handleIndex)
	r.Post("/get-weather", s.handleGetWeather)
	r.Get("/api/weather/{code}", s.handleAPIWeather)
	r.Get("/healthz", s.handleHealthz)

	return r
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, "index.html", nil)
}

func (s *Server) handleGetWeather(w http.ResponseWriter, r *http.Request) {
	airportCode := strings.ToUpper(strings.TrimSpace(r.FormValue("airport_code")))

	if airportCode == "" {
		s.renderTemplate(w, "result.html", resultPage{Error: "Please enter an airport code"})
		return
	}
	if len(airportCode) != 4 {
		s.renderTemplate(w, "result.html", resultPage{
			Error: "Airport code must be 4 characters (e.g., VOMM, KJFK)",
		})
		return
	}

	raw, err := s.gateway.FetchMETAR(airportCode)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			s.renderTemplate(w, "result.html", resultPage{
				Error: fmt.Sprintf("No METAR data found for airport code: %s", airportCode),
			})
			return
		}
		s.renderTemplate(w, "result.html", resultPage{
			Error: fmt.Sprintf("Failed to fetch METAR data: %v", err),
		})
		return
	}

	report, err := s.decoder.Decode(raw)
	if err != nil {
		s.renderTemplate(w, "result.html", resultPage{
			Error: fmt.Sprintf("Error decoding METAR: %v", err),
		})
		return
	}

	s.renderTemplate(w, "result.html", resultPage{
		AirportCode: airportCode,
		RawMETAR:    raw,
		Decoded:     report,
	})
}

func (s *Server) handleAPIWeather(w http.ResponseWriter, r *http.Request) {
	airportCode := strings.ToUpper(strings.TrimSpace(chi.URLParam(r, "code")))

	raw, err := s.gateway.FetchMETAR(airportCode)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "No METAR data found"})
			return
		}
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	report, err := s.decoder.Decode(raw)
	if err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"airport_code": airportCode,
		"raw_metar":    raw,
		"decoded":      report,
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encoding response", "err", err)
	}
}

func (s *Server) renderTemplate(w http.ResponseWriter, name string, data any) {
	if err := s.tmpl.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("rendering template", "template", name, "err", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
		)
	})
}
