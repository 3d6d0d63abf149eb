package logo

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/samber/do"
	"github.com/sashabaranov/go-openai"
)

type ImageCreator interface {
	CreateImage(context.Context, openai.ImageRequest) (openai.ImageResponse, error)
}

type OpenAIGenerator struct {
	Client ImageCreator
	Model  string
}

var _ Generator = (*OpenAIGenerator)(nil)

func NewOpenAIGenerator(i *do.Injector) (Generator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	clientConfig := openai.DefaultConfig(do.MustInvokeNamed[string](i, "api_key"))
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return &OpenAIGenerator{
		Client: openai.NewClientWithConfig(clientConfig),
		Model:  cfg.Model,
	}, nil
}

func (g *OpenAIGenerator) Generate(ctx context.Context, prompt string) (Image, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("openai").With("model", g.Model)
	log.Info("generating image via openai api")

	resp, err := g.Client.CreateImage(ctx, openai.ImageRequest{
		Prompt:         prompt,
		Model:          g.Model,
		N:              1,
		Size:           openai.CreateImageSize1024x1024,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return Image{}, err
	}
	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return Image{}, ErrNoImage
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode image data: %w", err)
	}

	log.Info("received image via openai api", "bytes", len(data))
	return Image{MIMEType: sniffMIMEType("", data), Data: data}, nil
}
