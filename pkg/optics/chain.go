package optics

// Stage is a resolved element's transfer pair. A chain of stages models the
// affine map ray -> M*ray + O.
type Stage struct {
	M Mat2
	O Vec2
}

// Compose folds an ordered chain of stages into a single cumulative stage.
// Stages are listed in the order a ray encounters them; each new stage's
// matrix premultiplies the running product, and the running offset is carried
// through the new stage's linear part before its own offset is added:
//
//	Mtot' = Mi * Mtot
//	Otot' = Mi * Otot + Oi
//
// An empty chain composes to the identity stage.
func Compose(stages []Stage) Stage {
	total := Stage{M: Identity()}
	for _, s := range stages {
		total.O = s.M.Apply(total.O).Add(s.O)
		total.M = s.M.Mul(total.M)
	}
	return total
}

// Propagate walks a ray through each stage in order, applying
// ray' = M*ray + O per stage. For an empty chain the ray passes through
// unchanged. Propagating stage by stage agrees with applying the single
// composed stage from Compose.
func Propagate(ray Ray, stages []Stage) Ray {
	vec := Vec2{ray.Height, ray.Angle}
	for _, s := range stages {
		vec = s.M.Apply(vec).Add(s.O)
	}
	return Ray{Height: vec[0], Angle: vec[1]}
}
