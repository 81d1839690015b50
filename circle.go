// Package circle implements a console circle calculator with
// centimeter-to-inch conversion.
package circle

// Constants shared by all formulas. Pi is fixed at five decimals rather than
// math.Pi; two-decimal output depends on it.
const (
	Pi        = 3.14159
	CmPerInch = 2.54
)

// Prompt is the exact text written before each radius read.
const Prompt = "Enter radius (in cm):\n"

// CmToInch converts a length in centimeters to inches.
func CmToInch(cm float64) float64 {
	return cm / CmPerInch
}

// Area returns the area in square inches of a circle with the given radius
// in inches.
func Area(radiusIn float64) float64 {
	return Pi * radiusIn * radiusIn
}

// Circumference returns the circumference in inches of a circle with the
// given radius in inches.
func Circumference(radiusIn float64) float64 {
	return 2 * Pi * radiusIn
}

// Measurement holds one computed result. All values are ephemeral, scoped to
// a single prompt/read/compute cycle.
type Measurement struct {
	RadiusCm      float64 // radius as entered, centimeters
	RadiusIn      float64 // radius converted to inches
	Area          float64 // square inches
	Circumference float64 // inches
}

// Measure converts a radius in centimeters to inches and computes the
// circle's area and circumference.
func Measure(radiusCm float64) Measurement {
	radiusIn := CmToInch(radiusCm)
	return Measurement{
		RadiusCm:      radiusCm,
		RadiusIn:      radiusIn,
		Area:          Area(radiusIn),
		Circumference: Circumference(radiusIn),
	}
}
