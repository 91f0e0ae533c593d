package render

import (
	"strings"

	"github.com/fyrsmithlabs/phaseart/internal/phase"
)

// Animation is the CSS animation bound to a motion class.
type Animation struct {
	Motion    phase.Motion
	Keyframes string // @keyframes identifier
	Duration  string
	Timing    string
	Frames    string // body of the @keyframes block
}

// animations are listed in registry order; timings are fixed.
var animations = []Animation{
	{
		Motion: phase.MotionRadialPulse, Keyframes: "pulse", Duration: "3s", Timing: "ease-in-out",
		Frames: "0%,100% { transform: scale(1); } 50% { transform: scale(1.15); }",
	},
	{
		Motion: phase.MotionUpwardDrift, Keyframes: "drift", Duration: "4s", Timing: "ease-in-out",
		Frames: "0%,100% { transform: translateY(0); } 50% { transform: translateY(-12px); }",
	},
	{
		Motion: phase.MotionSystematicScan, Keyframes: "scan", Duration: "2.5s", Timing: "linear",
		Frames: "0% { transform: translateX(-5px); } 100% { transform: translateX(5px); }",
	},
	{
		Motion: phase.MotionShatter, Keyframes: "shake", Duration: "0.5s", Timing: "ease-in-out",
		Frames: "0%,100% { transform: translateX(0); } 25% { transform: translateX(-3px); } 75% { transform: translateX(3px); }",
	},
	{
		Motion: phase.MotionInwardConvergence, Keyframes: "converge", Duration: "3s", Timing: "ease-in-out",
		Frames: "0%,100% { transform: scale(1); } 50% { transform: scale(0.9); }",
	},
	{
		Motion: phase.MotionSolidification, Keyframes: "solidify", Duration: "5s", Timing: "ease-in-out",
		Frames: "0%,100% { opacity: 0.7; } 50% { opacity: 1; }",
	},
	{
		Motion: phase.MotionOutwardExpansion, Keyframes: "expand", Duration: "4s", Timing: "ease-in-out",
		Frames: "0%,100% { transform: scale(1); } 50% { transform: scale(1.1); }",
	},
	{
		Motion: phase.MotionSteadyContraction, Keyframes: "contract", Duration: "3s", Timing: "ease-in-out",
		Frames: "0%,100% { transform: scale(1); } 50% { transform: scale(0.92); }",
	},
}

// Animations returns the animation table in registry order.
func Animations() []Animation {
	out := make([]Animation, len(animations))
	copy(out, animations)
	return out
}

// Rule returns the class rule for a, e.g.
// ".radial_pulse { animation: pulse 3s ease-in-out infinite; }".
func (a Animation) Rule() string {
	return "." + a.Motion.String() + " { animation: " + a.Keyframes + " " +
		a.Duration + " " + a.Timing + " infinite; }"
}

// Block returns the @keyframes block for a.
func (a Animation) Block() string {
	return "@keyframes " + a.Keyframes + " { " + a.Frames + " }"
}

// Styles returns the stylesheet embedded in every document: one class rule per
// motion followed by the matching @keyframes blocks.
func Styles() string {
	var sb strings.Builder
	sb.WriteByte('\n')
	for _, a := range animations {
		sb.WriteString("    ")
		sb.WriteString(a.Rule())
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	for _, a := range animations {
		sb.WriteString("    ")
		sb.WriteString(a.Block())
		sb.WriteByte('\n')
	}
	return sb.String()
}
