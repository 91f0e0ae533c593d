package http

import (
	"github.com/fyrsmithlabs/phaseart/internal/phase"
	"github.com/fyrsmithlabs/phaseart/internal/telemetry"
)

// PhaseResponse is one entry of GET /api/phases.
type PhaseResponse struct {
	Name   string `json:"name"`
	Color  string `json:"color"`
	Shape  string `json:"shape"`
	Motion string `json:"motion"`
	ZIndex int    `json:"z_index"`
}

func newPhaseResponse(d phase.Descriptor) PhaseResponse {
	return PhaseResponse{
		Name:   d.Name,
		Color:  d.Color,
		Shape:  d.Shape.String(),
		Motion: d.Motion.String(),
		ZIndex: d.ZIndex,
	}
}

// HealthResponse is the response body for GET /health.
type HealthResponse struct {
	Status    string                  `json:"status"`
	Service   string                  `json:"service"`
	Telemetry *telemetry.HealthStatus `json:"telemetry,omitempty"`
}
