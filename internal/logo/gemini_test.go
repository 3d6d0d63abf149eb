package logo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/dmorgan81/logoforge/internal/logo"
)

type mockImageModels struct {
	generateImages func(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

func (m *mockImageModels) GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	return m.generateImages(ctx, model, prompt, config)
}

func TestGeminiGenerator_Generate(t *testing.T) {
	t.Run("request shape and first image", func(t *testing.T) {
		generator := &logo.GeminiGenerator{
			Model: "imagen-3.0-generate-002",
			Models: &mockImageModels{
				generateImages: func(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
					assert.Equal(t, "imagen-3.0-generate-002", model)
					assert.Equal(t, "a prompt", prompt)
					assert.EqualValues(t, 1, config.NumberOfImages)
					assert.Equal(t, "image/jpeg", config.OutputMIMEType)
					assert.Equal(t, "1:1", config.AspectRatio)
					return &genai.GenerateImagesResponse{
						GeneratedImages: []*genai.GeneratedImage{
							{Image: &genai.Image{ImageBytes: []byte("first"), MIMEType: "image/jpeg"}},
							{Image: &genai.Image{ImageBytes: []byte("second"), MIMEType: "image/jpeg"}},
						},
					}, nil
				},
			},
		}

		img, err := generator.Generate(context.Background(), "a prompt")
		require.NoError(t, err)
		assert.Equal(t, logo.Image{MIMEType: "image/jpeg", Data: []byte("first")}, img)
	})

	t.Run("api error", func(t *testing.T) {
		generator := &logo.GeminiGenerator{Models: &mockImageModels{
			generateImages: func(context.Context, string, string, *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
				return nil, assert.AnError
			},
		}}

		_, err := generator.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("no images", func(t *testing.T) {
		generator := &logo.GeminiGenerator{Models: &mockImageModels{
			generateImages: func(context.Context, string, string, *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
				return &genai.GenerateImagesResponse{}, nil
			},
		}}

		_, err := generator.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, logo.ErrNoImage)
	})

	t.Run("filtered image reports reason", func(t *testing.T) {
		generator := &logo.GeminiGenerator{Models: &mockImageModels{
			generateImages: func(context.Context, string, string, *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
				return &genai.GenerateImagesResponse{
					GeneratedImages: []*genai.GeneratedImage{{RAIFilteredReason: "blocked by safety filter"}},
				}, nil
			},
		}}

		_, err := generator.Generate(context.Background(), "p")
		assert.ErrorIs(t, err, logo.ErrNoImage)
		assert.Contains(t, err.Error(), "blocked by safety filter")
	})
}
