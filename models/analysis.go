package models

// AnalysisRequest is the body sent to the analysis endpoint
type AnalysisRequest struct {
	Content string `json:"content"`
}

// AnalysisReport is the structured response returned by the analysis endpoint
type AnalysisReport struct {
	RiskScore       int      `json:"risk_score"`
	RiskLevel       string   `json:"risk_level,omitempty"`
	Tone            string   `json:"tone"`
	PlagiarismRisk  string   `json:"plagiarism_risk"`
	Issues          []string `json:"issues"`
	Recommendations []string `json:"recommendations"`
}

// ErrorResponse is the failure body shared by the analysis endpoint and our own API
type ErrorResponse struct {
	Error string `json:"error,omitempty"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status string `json:"status"`
}
