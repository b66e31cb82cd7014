package wcaprofile

import (
	"errors"
	"wca-userinfo/lib/wca"
)

// failureReason buckets an error from GetProfile for metrics.
func failureReason(err error) string {
	var structural *wca.StructuralError
	var malformed *wca.MalformedFieldError
	var upstream *UpstreamStatusError

	switch {
	case errors.Is(err, ErrMissingWcaID):
		return "missing_wca_id"
	case errors.As(err, &upstream):
		return "upstream_status"
	case errors.As(err, &structural):
		return "structural"
	case errors.As(err, &malformed):
		return "malformed_field"
	default:
		return "fetch"
	}
}
