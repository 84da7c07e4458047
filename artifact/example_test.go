package artifact_test

import (
	"fmt"

	"github.com/openecap/ecap/artifact"
)

// ExampleZeroTemplateSubtraction removes a stimulus-free baseline from a
// measured recording.
func ExampleZeroTemplateSubtraction() {
	signal := []float64{1.25, 2.5, 0.75}
	zeroTemplate := []float64{0.25, 0.5, 0.25}

	ecap, err := artifact.ZeroTemplateSubtraction(signal, zeroTemplate)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ecap)
	// Output:
	// [1 2 0.5]
}

// ExampleScaledTemplateSubtraction removes the current-proportional artifact
// using a sub-threshold recording as the template: the supra-threshold
// recording was stimulated at 8, the template at 2, so the template is scaled
// by 4 before subtraction.
func ExampleScaledTemplateSubtraction() {
	subThreshold := []float64{0.5, 1, 0.25}  // pure artifact, no response
	supraThreshold := []float64{2.5, 5, 1.5} // artifact + neural response

	ecap, err := artifact.ScaledTemplateSubtraction(subThreshold, supraThreshold, 2, 8)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(ecap)
	// Output:
	// [0.5 1 0.5]
}

// ExampleAlternatingStimulationSum averages the two pulse polarities: the
// artifact flips sign between them and cancels, the response does not.
func ExampleAlternatingStimulationSum() {
	anodic := []float64{2.5, 1, 0.5}
	cathodic := []float64{-1.5, 1, 0.5}

	response, err := artifact.AlternatingStimulationSum(anodic, cathodic, artifact.DefaultWeight)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(response)
	// Output:
	// [0.5 1 0.5]
}
