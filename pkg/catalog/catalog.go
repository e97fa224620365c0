// Package catalog describes the optical components the workspace UI can place
// on the bench: display labels, descriptions, and tunable-parameter bounds.
// It is presentation metadata only; the trace engine applies its own defaults
// and never consults it.
package catalog

// Parameter describes one tunable component parameter for the UI. Min, Max
// and Step are omitted from JSON when a component leaves them open.
type Parameter struct {
	Default float64  `json:"default"`
	Min     *float64 `json:"min,omitempty"`
	Max     *float64 `json:"max,omitempty"`
	Step    *float64 `json:"step,omitempty"`
}

// Definition is the UI-facing description of one component kind.
type Definition struct {
	Label       string               `json:"label"`
	Description string               `json:"description"`
	Parameters  map[string]Parameter `json:"parameters"`
}

func ptr(v float64) *float64 { return &v }

var library = map[string]Definition{
	"free_space": {
		Label:       "Free Space",
		Description: "Propagation through free space by a distance L.",
		Parameters: map[string]Parameter{
			"length": {Default: 100, Min: ptr(0), Step: ptr(1)},
		},
	},
	"positive_lens": {
		Label:       "Positive Lens",
		Description: "Thin lens with positive focal length f.",
		Parameters: map[string]Parameter{
			"focal_length": {Default: 50, Min: ptr(1), Step: ptr(1)},
		},
	},
	"negative_lens": {
		Label:       "Negative Lens",
		Description: "Thin lens with negative focal length f.",
		Parameters: map[string]Parameter{
			"focal_length": {Default: -50, Min: ptr(-500), Max: ptr(-1), Step: ptr(1)},
		},
	},
	"prism": {
		Label:       "Prism",
		Description: "Prism introducing an angular deviation.",
		Parameters: map[string]Parameter{
			"angle_offset": {Default: 2, Min: ptr(-30), Max: ptr(30), Step: ptr(0.1)},
		},
	},
	"grating": {
		Label:       "Diffraction Grating",
		Description: "Grating described by spatial frequency (lines/mm); renders first-order diffraction.",
		Parameters: map[string]Parameter{
			"spatial_frequency": {Default: 600, Min: ptr(50), Max: ptr(2400), Step: ptr(10)},
		},
	},
	"mirror": {
		Label:       "Mirror",
		Description: "Planar mirror reflecting the ray angle.",
		Parameters: map[string]Parameter{
			"flip_orientation": {Default: 1, Min: ptr(-1), Max: ptr(1), Step: ptr(2)},
		},
	},
}

// Library returns the component catalog keyed by wire kind.
func Library() map[string]Definition {
	return library
}
