package optics

// Ray is a paraxial ray: transverse height and propagation angle. Missing
// fields on the wire decode to zero rather than erroring.
type Ray struct {
	Height float64 `json:"height" yaml:"height"`
	Angle  float64 `json:"angle" yaml:"angle"`
}

// ComponentSpec is the wire-level description of one element in a chain. Kind
// selects the element variant ("free_space", "positive_lens", ...); Params
// carries its numeric parameters. The JSON field is "type" to match the
// workspace client.
type ComponentSpec struct {
	Kind   string             `json:"type" yaml:"type"`
	Params map[string]float64 `json:"params" yaml:"params"`
}

// Result is the full trace output: one matrix/offset per component in input
// order, the cumulative pair for the whole chain, and one output ray per
// input ray.
type Result struct {
	Matrices       []Mat2 `json:"matrices"`
	Offsets        []Vec2 `json:"offsets"`
	TotalMatrix    Mat2   `json:"total_matrix"`
	TotalOffset    Vec2   `json:"total_offset"`
	PropagatedRays []Ray  `json:"propagated_rays"`
}

// Trace resolves each component spec, composes the chain, and propagates
// every ray through it. Each spec is resolved exactly once; the reported
// matrices and offsets are the same stages the rays were propagated through.
// Trace is total: unknown kinds and missing parameters fall back to defaults.
func Trace(components []ComponentSpec, rays []Ray) Result {
	stages := make([]Stage, len(components))
	matrices := make([]Mat2, len(components))
	offsets := make([]Vec2, len(components))
	for i, c := range components {
		m, o := Resolve(c.Kind, c.Params).Transfer()
		stages[i] = Stage{M: m, O: o}
		matrices[i] = m
		offsets[i] = o
	}

	total := Compose(stages)

	propagated := make([]Ray, len(rays))
	for i, ray := range rays {
		propagated[i] = Propagate(ray, stages)
	}

	return Result{
		Matrices:       matrices,
		Offsets:        offsets,
		TotalMatrix:    total.M,
		TotalOffset:    total.O,
		PropagatedRays: propagated,
	}
}
