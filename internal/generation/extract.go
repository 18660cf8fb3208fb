package generation

import (
	"fmt"
	"strings"

	"github.com/osse101/LoneWanderer_Go/internal/domain"
)

// ExtractJSONObject cuts the candidate JSON object out of raw model output.
// Models wrap payloads in prose or markdown fences, so the slice runs from the
// first '{' to the last '}' and everything outside it is discarded. The result
// is not guaranteed to be valid JSON; the caller parses it.
func ExtractJSONObject(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")

	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("%w: output had no '{' ... '}' span", domain.ErrGenerationParse)
	}

	return raw[start : end+1], nil
}
