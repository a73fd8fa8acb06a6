package handler

import (
	"strings"

	"fitcore/pkg/platform/validation"
)

// VerifyRequest is the body of POST /verify.
type VerifyRequest struct {
	Code string `json:"code" validate:"required,max=64"`
}

// Normalize trims surrounding whitespace so blank codes fail validation.
func (r *VerifyRequest) Normalize() {
	r.Code = strings.TrimSpace(r.Code)
}

func (r *VerifyRequest) Validate() error {
	return validation.Struct(r)
}
