package logo

import (
	"context"
	"fmt"

	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
	"google.golang.org/genai"
)

// ImageModels is the part of genai's Models service the generator needs.
type ImageModels interface {
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

type GeminiGenerator struct {
	Models ImageModels
	Model  string
}

var _ Generator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(i *do.Injector) (Generator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	key := do.MustInvokeNamed[string](i, "api_key")

	clientConfig := &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(context.Background(), clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GeminiGenerator{Models: client.Models, Model: cfg.Model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (Image, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("gemini").With("model", g.Model)
	log.Info("generating image via gemini api")

	resp, err := g.Models.GenerateImages(ctx, g.Model, prompt, &genai.GenerateImagesConfig{
		NumberOfImages:   1,
		OutputMIMEType:   DefaultMIMEType,
		AspectRatio:      "1:1",
		IncludeRAIReason: true,
	})
	if err != nil {
		return Image{}, err
	}
	if resp == nil {
		return Image{}, ErrNoImage
	}

	generated, ok := lo.Find(resp.GeneratedImages, func(img *genai.GeneratedImage) bool {
		return img != nil && img.Image != nil && len(img.Image.ImageBytes) > 0
	})
	if !ok {
		for _, img := range resp.GeneratedImages {
			if img != nil && img.RAIFilteredReason != "" {
				return Image{}, fmt.Errorf("%w: %s", ErrNoImage, img.RAIFilteredReason)
			}
		}
		return Image{}, ErrNoImage
	}

	log.Info("received image via gemini api", "bytes", len(generated.Image.ImageBytes))
	return Image{
		MIMEType: sniffMIMEType(generated.Image.MIMEType, generated.Image.ImageBytes),
		Data:     generated.Image.ImageBytes,
	}, nil
}
