package main

import "github.com/jward/circle"

// CLIResult is the top-level JSON envelope for the calc command.
type CLIResult struct {
	Command string `json:"command"`
	Results any    `json:"results"`
	Error   string `json:"error,omitempty"`
}

// CLIMeasurement is a JSON-friendly measurement representation.
type CLIMeasurement struct {
	RadiusCm        float64 `json:"radius_cm"`
	RadiusIn        float64 `json:"radius_in"`
	AreaSqIn        float64 `json:"area_sq_in"`
	CircumferenceIn float64 `json:"circumference_in"`
}

// measurementToCLI converts a circle.Measurement to a CLIMeasurement.
func measurementToCLI(m circle.Measurement) CLIMeasurement {
	return CLIMeasurement{
		RadiusCm:        m.RadiusCm,
		RadiusIn:        m.RadiusIn,
		AreaSqIn:        m.Area,
		CircumferenceIn: m.Circumference,
	}
}
