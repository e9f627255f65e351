package dtos

// ContactSettingsRequest is a full replace, not a patch: all six fields
// must be present in the payload even when empty. The three social links
// may legitimately be blank, so only the contact trio is required.
type ContactSettingsRequest struct {
	Address  string `json:"address" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	LinkedIn string `json:"linkedin"`
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
}

type TestimonialUpdateRequest struct {
	Review string `json:"review" binding:"required"`
}
