package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/phaseart/internal/logging"
	"github.com/fyrsmithlabs/phaseart/internal/phase"
)

// MIMEImageSVG is the content type of every SVG response.
const MIMEImageSVG = "image/svg+xml"

// MaxAuditDepth bounds the ring count accepted by /api/audit.
const MaxAuditDepth = 64

// handleIndex renders the HTML page with the artwork inline.
func (s *Server) handleIndex(c echo.Context) error {
	doc := s.renderDocument(c.Request().Context(), kindPage)
	return c.Render(http.StatusOK, pageTemplate, newPageData(doc))
}

// handleSVG returns the full document.
func (s *Server) handleSVG(c echo.Context) error {
	doc := s.renderDocument(c.Request().Context(), kindDocument)
	return c.Blob(http.StatusOK, MIMEImageSVG, []byte(doc))
}

func (s *Server) renderDocument(ctx context.Context, kind string) string {
	ctx, span := s.tracer.Start(ctx, "render.document")
	defer span.End()

	v := s.newVisualizer()
	doc := v.GenerateDocument()

	span.SetAttributes(
		attribute.String("render.kind", kind),
		attribute.Int("canvas.width", v.Width),
		attribute.Int("canvas.height", v.Height),
		attribute.Int("svg.bytes", len(doc)),
	)
	s.rendered.WithLabelValues(kind).Inc()
	logging.FromContext(ctx).Debug(ctx, "document rendered", zap.String("kind", kind), zap.Int("bytes", len(doc)))
	return doc
}

// handlePhases lists every phase in canonical order.
func (s *Server) handlePhases(c echo.Context) error {
	all := phase.All()
	out := make([]PhaseResponse, len(all))
	for i, d := range all {
		out[i] = newPhaseResponse(d)
	}
	return c.JSONPretty(http.StatusOK, out, "  ")
}

// handlePhase returns one phase descriptor.
func (s *Server) handlePhase(c echo.Context) error {
	d, err := phase.Lookup(c.Param("name"))
	if err != nil {
		return s.httpError(c.Request().Context(), err)
	}
	return c.JSONPretty(http.StatusOK, newPhaseResponse(d), "  ")
}

// handlePhaseSVG returns a standalone document holding one phase.
func (s *Server) handlePhaseSVG(c echo.Context) error {
	name := c.Param("name")
	ctx, span := s.tracer.Start(c.Request().Context(), "render.phase")
	defer span.End()
	span.SetAttributes(attribute.String("phase.name", name))

	doc, err := s.newVisualizer().PhaseDocument(name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unknown phase")
		return s.httpError(ctx, err)
	}

	span.SetAttributes(attribute.Int("svg.bytes", len(doc)))
	s.rendered.WithLabelValues(kindPhase).Inc()
	return c.Blob(http.StatusOK, MIMEImageSVG, []byte(doc))
}

// handleAudit returns a standalone audit ring document. depth defaults to 1.
func (s *Server) handleAudit(c echo.Context) error {
	depth := 1
	if raw := c.QueryParam("depth"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "depth must be an integer")
		}
		depth = n
	}
	if depth > MaxAuditDepth {
		return echo.NewHTTPError(http.StatusBadRequest, "depth must be <= "+strconv.Itoa(MaxAuditDepth))
	}

	ctx, span := s.tracer.Start(c.Request().Context(), "render.audit")
	defer span.End()
	span.SetAttributes(attribute.Int("audit.depth", depth))

	doc, err := s.newVisualizer().AuditDocument(depth)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid depth")
		return s.httpError(ctx, err)
	}

	span.SetAttributes(attribute.Int("svg.bytes", len(doc)))
	s.rendered.WithLabelValues(kindAudit).Inc()
	return c.Blob(http.StatusOK, MIMEImageSVG, []byte(doc))
}

// handleHealth reports liveness and, when configured, telemetry health.
func (s *Server) handleHealth(c echo.Context) error {
	resp := HealthResponse{Status: "ok", Service: s.serviceName}
	if s.telemetry != nil {
		h := s.telemetry.Health()
		resp.Telemetry = &h
	}
	return c.JSON(http.StatusOK, resp)
}

// httpError maps engine errors onto HTTP status codes.
func (s *Server) httpError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, phase.ErrUnknownPhase):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, phase.ErrInvalidDepth):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		logging.FromContext(ctx).Error(ctx, "render failed", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "render failed").SetInternal(err)
	}
}
