// Package assistant wraps one-shot calls to a generative-language endpoint.
// Every call carries a fixed business-dataset context ahead of the user's
// question. Calls are rate limited to a minimum interval and capped per
// process lifetime, and every failure mode maps to a fixed, user-displayable
// reply string so callers never see an error.
package assistant

// generateRequest is the outbound body for a generateContent call.
type generateRequest struct {
	Contents []content `json:"contents"`
}

// generateResponse is the relevant subset of the generateContent reply.
type generateResponse struct {
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	Content content `json:"content"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// Status reports the client's session state for the UI.
type Status struct {
	Online         bool `json:"online"`
	RequestCount   int  `json:"requestCount"`
	RemainingCalls int  `json:"remainingCalls"`
}
