package synthesis

import (
	"fmt"

	"chem-synthesis-be/internal/constant"
)

// BuildPrompt renders the fixed lookup instruction for one CAS number.
// Pure templating; the caller is responsible for validating the number.
func BuildPrompt(casNumber string) string {
	return fmt.Sprintf(constant.SynthesisPromptTemplate, casNumber)
}
