package pendingupdate

import (
	"encoding/json"

	"onboarding/internal/core/domain/model/logistics"
	"onboarding/internal/pkg/errs"
)

// ProfilePatch is the typed form of a staged profile-change payload.
// Every field is optional: a nil pointer means the field is not part of the
// requested change and must be left untouched. JSON null unmarshals to a nil
// pointer and is therefore indistinguishable from an absent field; a patch
// can never clear a field, only replace it.
//
// Unknown fields in the payload are ignored. A document that is not valid
// JSON, or whose known fields have the wrong type, fails parsing.
type ProfilePatch struct {
	CommercialName     *string `json:"commercialName,omitempty"`
	CommercialRegister *string `json:"commercialRegister,omitempty"`
	LogisticsType      *string `json:"logisticsType,omitempty"`
	DocumentImage      *string `json:"documentImage,omitempty"`
}

// ParseProfilePatch decodes a staged payload into a ProfilePatch.
// Returns a MalformedPayloadError when the document cannot be decoded,
// or when a present logisticsType value is not a known category.
func ParseProfilePatch(payload []byte) (ProfilePatch, error) {
	var patch ProfilePatch
	if err := json.Unmarshal(payload, &patch); err != nil {
		return ProfilePatch{}, errs.NewMalformedPayloadErrorWithCause("profile patch", err)
	}

	// Reject unknown vehicle categories at parse time so the request stays
	// retryable instead of failing mid-application.
	if patch.LogisticsType != nil {
		if _, err := logistics.TypeFromString(*patch.LogisticsType); err != nil {
			return ProfilePatch{}, errs.NewMalformedPayloadErrorWithCause("profile patch", err)
		}
	}

	return patch, nil
}

// IsEmpty reports whether the patch carries no changes at all.
func (p ProfilePatch) IsEmpty() bool {
	return p.CommercialName == nil &&
		p.CommercialRegister == nil &&
		p.LogisticsType == nil &&
		p.DocumentImage == nil
}

// TouchesCourier reports whether the patch changes any courier field.
func (p ProfilePatch) TouchesCourier() bool {
	return p.CommercialName != nil || p.CommercialRegister != nil
}

// TouchesLogistics reports whether the patch changes any logistics profile field.
func (p ProfilePatch) TouchesLogistics() bool {
	return p.LogisticsType != nil || p.DocumentImage != nil
}
