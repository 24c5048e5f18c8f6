package dto

// SourceInfoDTO is the bibliographic block of one synthesis method.
// Authors and Year stay empty strings until the upstream citation format
// labels them separately.
type SourceInfoDTO struct {
	Title    string `json:"title"`
	Authors  string `json:"authors"`
	Journal  string `json:"journal"`
	Year     string `json:"year"`
	DOI      string `json:"doi"`
	PaperURL string `json:"paper_url"`
	Summary  string `json:"summary"`
}

// SynthesisRecordDTO is one parsed article. Reagents carries starting
// materials and solvents as a single merged list.
type SynthesisRecordDTO struct {
	Reagents   []string      `json:"reagents"`
	Conditions string        `json:"conditions"`
	Time       string        `json:"time"`
	Temp       string        `json:"temp"`
	Yield      string        `json:"yield"`
	Source     SourceInfoDTO `json:"source"`
}

type SynthesisResponse struct {
	CasNumber        string               `json:"cas_number"`
	SynthesisMethods []SynthesisRecordDTO `json:"synthesis_methods"`
	TotalMethods     int                  `json:"total_methods"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type ServiceInfoResponse struct {
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
	Example   string            `json:"example"`
}

// SynthesisRequest binds the path parameter for validation.
type SynthesisRequest struct {
	CasNumber string `params:"cas_number" validate:"required,cas_number"`
}
