package httpdto

// AskRequest is used for POST /api/ask
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

// AskResponse carries the provider's answer plus the fact block that was
// injected into the prompt, if any.
type AskResponse struct {
	Answer         string  `json:"answer"`
	ElementContext *string `json:"element_context"`
}

func NewAskResponse(answer, elementContext string) AskResponse {
	res := AskResponse{Answer: answer}
	if elementContext != "" {
		res.ElementContext = &elementContext
	}
	return res
}
