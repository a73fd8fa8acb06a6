package handler

import "fitcore/internal/verification/models"

type VerifyResponse struct {
	Code    string `json:"code"`
	Valid   bool   `json:"valid"`
	Product string `json:"product"`
	Message string `json:"message"`
}

type Sample struct {
	Code    string `json:"code"`
	Product string `json:"product"`
}

type SamplesResponse struct {
	Samples []Sample `json:"samples"`
}

func toVerifyResponse(r models.Result) VerifyResponse {
	return VerifyResponse{
		Code:    r.Code,
		Valid:   r.Valid,
		Product: r.Product,
		Message: r.Message,
	}
}

func toSamplesResponse(records []models.Record) SamplesResponse {
	samples := make([]Sample, 0, len(records))
	for _, rec := range records {
		samples = append(samples, Sample{Code: rec.Code, Product: rec.Product})
	}
	return SamplesResponse{Samples: samples}
}
