package venturi

// Physical-analogy constants shared by the stateless controllers.
const (
	gravity    = 9.81
	airDensity = 1.225
)

// minNeuroplasticity floors the denominator of the kinetic term.
const minNeuroplasticity = 0.1

// Cognitive estimates mental load from EEG-derived features. Each call is a
// pure function of its inputs.
type Cognitive struct{}

// Calculate combines a kinetic "focus velocity" term with a "stress
// pressure" term and clamps the result to [0, 1]. Recognized feature keys:
// focusvelocity, stresspressure, neuroplasticity. Missing keys read as 0.
func (Cognitive) Calculate(features map[string]float64) float64 {
	velocity := features["focusvelocity"]
	pressure := features["stresspressure"]
	plasticity := features["neuroplasticity"]
	if plasticity < minNeuroplasticity {
		plasticity = minNeuroplasticity
	}

	load := velocity*velocity/(2*gravity*plasticity) + pressure/(airDensity*gravity)
	if load < 0 {
		return 0
	}
	if load > 1 {
		return 1
	}
	return load
}
