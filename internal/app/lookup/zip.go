package lookup

import (
	"bytes"
	"encoding/json"
	"fmt"

	apperrors "github.com/yama6a/zip-tax-rates/internal/pkg/errors"
)

// parseZip extracts the string field "zip" from a JSON object body.
// Other fields are ignored. A missing, null or non-string zip is an error.
func parseZip(body []byte) (string, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrInvalidBody, err)
	}

	raw, ok := fields["zip"]
	if !ok {
		return "", apperrors.ErrMissingZip
	}
	if bytes.Equal(raw, []byte("null")) {
		return "", apperrors.ErrInvalidZip
	}

	var zip string
	if err := json.Unmarshal(raw, &zip); err != nil {
		return "", fmt.Errorf("%w: %w", apperrors.ErrInvalidZip, err)
	}

	return zip, nil
}
