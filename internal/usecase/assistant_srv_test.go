package usecase

import (
	"context"
	"testing"

	"movie-booking/internal/dto/request"
	"movie-booking/internal/gemini"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeInsights records the question and returns a canned answer.
type fakeInsights struct {
	answer       string
	gotTitle     string
	gotQuestion  string
	timesInvoked int
}

func (f *fakeInsights) Ask(ctx context.Context, movieTitle, question string) string {
	f.gotTitle = movieTitle
	f.gotQuestion = question
	f.timesInvoked++
	return f.answer
}

func TestAskAboutMovie(t *testing.T) {
	insights := &fakeInsights{answer: "A mind-bending heist inside dreams."}
	service := NewAssistantService(newTestRepo(), insights, zap.NewNop())

	resp, err := service.AskAboutMovie(context.Background(), "m1", &request.MovieInsightsRequest{
		Question: "Is it worth watching?",
	})

	require.NoError(t, err)
	assert.Equal(t, "Inception", resp.MovieTitle)
	assert.Equal(t, insights.answer, resp.Answer)
	assert.Equal(t, "Inception", insights.gotTitle)
	assert.Equal(t, "Is it worth watching?", insights.gotQuestion)
}

func TestAskAboutMovieNotFound(t *testing.T) {
	insights := &fakeInsights{answer: "unused"}
	service := NewAssistantService(newTestRepo(), insights, zap.NewNop())

	_, err := service.AskAboutMovie(context.Background(), "nope", &request.MovieInsightsRequest{
		Question: "Anything?",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
	assert.Zero(t, insights.timesInvoked)
}

func TestAskAboutMovieValidation(t *testing.T) {
	insights := &fakeInsights{}
	service := NewAssistantService(newTestRepo(), insights, zap.NewNop())

	_, err := service.AskAboutMovie(context.Background(), "m1", &request.MovieInsightsRequest{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestAskAboutMovieFallbackPassesThrough(t *testing.T) {
	// An unavailable backend is an answer, not an error
	insights := &fakeInsights{answer: gemini.UnavailableMessage}
	service := NewAssistantService(newTestRepo(), insights, zap.NewNop())

	resp, err := service.AskAboutMovie(context.Background(), "m1", &request.MovieInsightsRequest{
		Question: "Anything?",
	})

	require.NoError(t, err)
	assert.Equal(t, gemini.UnavailableMessage, resp.Answer)
}
