package optics

import "math"

// minFocal is the smallest focal length magnitude a lens is allowed to carry.
// A focal length of exactly zero is physically singular (infinite power); the
// clamp keeps the transfer matrix finite while preserving the lens sign.
const minFocal = 1e-6

// designWavelength is the representative 550nm wavelength, expressed in mm to
// match grating spatial frequencies given in lines/mm.
const designWavelength = 0.00055

// Element is an optical component that contributes a linear transfer matrix
// plus an affine offset to a ray passing through it. The offset captures
// angular kicks (prism deviation, grating diffraction) that the matrix alone
// cannot express.
type Element interface {
	// Transfer returns the element's ABCD matrix and affine offset.
	// Transfer is total: out-of-range parameters are clamped, never rejected.
	Transfer() (Mat2, Vec2)
}

// FreeSpace is propagation through free space by a distance Length.
type FreeSpace struct {
	Length float64
}

func (e FreeSpace) Transfer() (Mat2, Vec2) {
	return Mat2{{1, e.Length}, {0, 1}}, Vec2{}
}

// PositiveLens is a thin lens with positive focal length.
type PositiveLens struct {
	Focal float64
}

func (e PositiveLens) Transfer() (Mat2, Vec2) {
	f := math.Max(e.Focal, minFocal)
	return Mat2{{1, 0}, {-1 / f, 1}}, Vec2{}
}

// NegativeLens is a thin lens with negative focal length.
type NegativeLens struct {
	Focal float64
}

func (e NegativeLens) Transfer() (Mat2, Vec2) {
	f := math.Min(e.Focal, -minFocal)
	return Mat2{{1, 0}, {-1 / f, 1}}, Vec2{}
}

// Prism deviates the ray by a fixed angular offset. The offset is passed
// through in the caller's units (the original workspace treats it as degrees).
type Prism struct {
	AngleOffset float64
}

func (e Prism) Transfer() (Mat2, Vec2) {
	return Identity(), Vec2{0, e.AngleOffset}
}

// Grating is a diffraction grating described by its spatial frequency in
// lines/mm. The offset is the first-order (m=1) diffraction angle in degrees
// at the design wavelength. Frequencies beyond the diffraction limit saturate
// at 90 degrees rather than failing the inverse sine.
type Grating struct {
	SpatialFrequency float64
}

func (e Grating) Transfer() (Mat2, Vec2) {
	freq := math.Max(e.SpatialFrequency, 0)
	arg := freq * designWavelength
	arg = math.Max(math.Min(arg, 1), -1)
	angleDeg := math.Asin(arg) * 180 / math.Pi
	return Identity(), Vec2{0, angleDeg}
}

// Mirror is a planar mirror that flips the ray angle. Orientation is reduced
// to its sign; zero counts as positive.
type Mirror struct {
	Orientation float64
}

func (e Mirror) Transfer() (Mat2, Vec2) {
	sign := 1.0
	if e.Orientation < 0 {
		sign = -1.0
	}
	return Mat2{{1, 0}, {0, -sign}}, Vec2{}
}

// Unknown stands in for any unrecognized component kind. It is deliberately a
// no-op so that a chain containing kinds this build does not understand still
// traces instead of erroring.
type Unknown struct{}

func (e Unknown) Transfer() (Mat2, Vec2) {
	return Identity(), Vec2{}
}

// Resolve maps a wire-level component kind and parameter map to an Element.
// Missing parameters take per-kind defaults; unrecognized kinds resolve to
// Unknown. Resolve never fails.
func Resolve(kind string, params map[string]float64) Element {
	get := func(key string, def float64) float64 {
		if v, ok := params[key]; ok {
			return v
		}
		return def
	}

	switch kind {
	case "free_space":
		return FreeSpace{Length: get("length", 0)}
	case "positive_lens":
		return PositiveLens{Focal: get("focal_length", 50)}
	case "negative_lens":
		return NegativeLens{Focal: get("focal_length", -50)}
	case "prism":
		return Prism{AngleOffset: get("angle_offset", 0)}
	case "grating":
		return Grating{SpatialFrequency: get("spatial_frequency", 600)}
	case "mirror":
		return Mirror{Orientation: get("flip_orientation", 1)}
	default:
		return Unknown{}
	}
}
