package request

type MovieInsightsRequest struct {
	Question string `json:"question" validate:"required,max=500"`
}
