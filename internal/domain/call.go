package domain

// Call is one call-log record as returned by the Vapi API. Only ID and the
// timestamps are required for a record to be exported; everything else is
// optional and degrades to a sentinel value downstream.
type Call struct {
	ID            string         `json:"id"`
	CreatedAt     string         `json:"createdAt"`
	StartedAt     string         `json:"startedAt,omitempty"`
	EndedAt       string         `json:"endedAt,omitempty"`
	Customer      *Customer      `json:"customer,omitempty"`
	Analysis      *Analysis      `json:"analysis,omitempty"`
	CostBreakdown *CostBreakdown `json:"costBreakdown,omitempty"`
	Transcript    string         `json:"transcript,omitempty"`
	EndedReason   string         `json:"endedReason,omitempty"`
	RecordingURL  string         `json:"recordingUrl,omitempty"`
}

type Customer struct {
	Number string `json:"number,omitempty"`
}

type Analysis struct {
	Summary           string `json:"summary,omitempty"`
	SuccessEvaluation string `json:"successEvaluation,omitempty"`
}

type CostBreakdown struct {
	Total                 *float64               `json:"total,omitempty"`
	STT                   *float64               `json:"stt,omitempty"`
	LLM                   *float64               `json:"llm,omitempty"`
	TTS                   *float64               `json:"tts,omitempty"`
	Vapi                  *float64               `json:"vapi,omitempty"`
	AnalysisCostBreakdown *AnalysisCostBreakdown `json:"analysisCostBreakdown,omitempty"`
}

type AnalysisCostBreakdown struct {
	Summary           *float64 `json:"summary,omitempty"`
	StructuredData    *float64 `json:"structuredData,omitempty"`
	SuccessEvaluation *float64 `json:"successEvaluation,omitempty"`
}
