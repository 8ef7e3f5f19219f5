package response

type MovieInsightsResponse struct {
	MovieTitle string `json:"movie_title"`
	Answer     string `json:"answer"`
}
