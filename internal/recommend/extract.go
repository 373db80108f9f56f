package recommend

import (
	"encoding/json"
	"fmt"
	"regexp"
)

// The generation service answers with prose that embeds the payload either
// in a fenced code block or as a bare array. Extraction tries the fence
// first, then the bare array; anything else is malformed.
var (
	fencedBlockPattern = regexp.MustCompile("```(?:json)?\\s*\\n([\\s\\S]*?)\\n\\s*```")
	bareArrayPattern   = regexp.MustCompile(`\[[\s\S]*\]`)
)

// ExtractJSONPayload pulls the embedded JSON out of the generation output
// and unmarshals it into dst. Both a failed match and invalid JSON are
// reported as ErrMalformedResponse.
func ExtractJSONPayload(text string, dst interface{}) error {
	payload := text
	if m := fencedBlockPattern.FindStringSubmatch(text); m != nil {
		payload = m[1]
	} else if m := bareArrayPattern.FindString(text); m != "" {
		payload = m
	} else {
		return fmt.Errorf("%w: no fenced block or bare array", ErrMalformedResponse)
	}

	if err := json.Unmarshal([]byte(payload), dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return nil
}
