// Package render composes the phase pipeline into SVG artwork.
//
// # Overview
//
// A [Visualizer] holds the canvas parameters and turns the phase registry into
// positioned fragments:
//
//   - [Visualizer.RenderPhase] draws one phase in its horizontal slot
//   - [Visualizer.RenderPipeline] draws all eight phases in registry order
//   - [Visualizer.RenderAuditChain] draws concentric audit rings
//
// The document assembler wraps fragments into a standalone SVG document with a
// background, the motion stylesheet and a title:
//
//	viz := render.New(render.WithCanvas(1200, 800))
//	doc := viz.GenerateDocument()
//
// # Layout
//
// Phases sit on the horizontal centre line, evenly spaced at width/9 so that the
// eight glyphs leave a margin slot on each side. Later phases paint over earlier
// ones where glyphs overlap. Layout is recomputed from the canvas on every call.
//
// # Identifiers
//
// Each phase group carries id="phase-<name>". Client-side legend code toggles
// these groups by id, so the format is part of the public contract.
//
// # Concurrency
//
// Every method is a pure function of the receiver's fields and the static
// registry. A Visualizer is cheap; build one per request.
package render
