package logo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/samber/do"
	"github.com/samber/lo"
)

const dezgoBaseURL = "https://api.dezgo.com"

type dezgoRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

type DezgoGenerator struct {
	Client  *http.Client
	BaseURL string
	Key     string
	Model   string
}

var _ Generator = (*DezgoGenerator)(nil)

func NewDezgoGenerator(i *do.Injector) (Generator, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return &DezgoGenerator{
		Client:  do.MustInvoke[*http.Client](i),
		BaseURL: lo.Ternary(cfg.BaseURL != "", cfg.BaseURL, dezgoBaseURL),
		Key:     do.MustInvokeNamed[string](i, "api_key"),
		Model:   cfg.Model,
	}, nil
}

func (g *DezgoGenerator) Generate(ctx context.Context, prompt string) (Image, error) {
	log := log.FromContextOrDiscard(ctx).WithGroup("dezgo").With("model", g.Model)
	log.Info("generating image via api.dezgo.com")

	body, err := json.Marshal(dezgoRequest{
		Model:  g.Model,
		Prompt: prompt,
		Width:  1024,
		Height: 1024,
		Format: "jpg",
	})
	if err != nil {
		return Image{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, strings.TrimSuffix(g.BaseURL, "/")+"/text2image", bytes.NewReader(body))
	if err != nil {
		return Image{}, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("X-Dezgo-Key", g.Key)

	resp, err := g.Client.Do(req)
	if err != nil {
		return Image{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Image{}, fmt.Errorf("dezgo returned %s: %s", resp.Status, strings.TrimSpace(string(data)))
	}
	if len(data) == 0 {
		return Image{}, ErrNoImage
	}

	log.Info("received image via api.dezgo.com", "seed", resp.Header.Get("X-Input-Seed"), "bytes", len(data))

	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	mediaType = lo.Ternary(strings.HasPrefix(mediaType, "image/"), mediaType, "")
	return Image{MIMEType: sniffMIMEType(mediaType, data), Data: data}, nil
}
