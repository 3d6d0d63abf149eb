package logo

import (
	"context"
	"fmt"
	"time"

	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/samber/do"
)

type Service struct {
	generator Generator
	timeout   time.Duration
}

func NewService(i *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](i)
	return NewServiceWithGenerator(do.MustInvoke[Generator](i), cfg.Timeout), nil
}

func NewServiceWithGenerator(generator Generator, timeout time.Duration) *Service {
	return &Service{generator: generator, timeout: timeout}
}

// Generate produces a logo for params and returns it as a data URI.
func (s *Service) Generate(ctx context.Context, params Params) (string, error) {
	img, err := s.GenerateImage(ctx, params)
	if err != nil {
		return "", err
	}
	return img.DataURI(), nil
}

func (s *Service) GenerateImage(ctx context.Context, params Params) (Image, error) {
	if err := params.Validate(); err != nil {
		return Image{}, err
	}

	prompt := params.Prompt()
	log := log.FromContextOrDiscard(ctx).WithGroup("logo").With("prompt", prompt)
	log.Info("generating logo")

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	img, err := s.generator.Generate(ctx, prompt)
	if err == nil && len(img.Data) == 0 {
		err = ErrNoImage
	}
	if err != nil {
		log.Error("error generating logo", "error", err, "elapsed", time.Since(start))
		return Image{}, fmt.Errorf("failed to generate logo: %w", err)
	}

	if img.MIMEType == "" {
		img.MIMEType = DefaultMIMEType
	}

	log.Info("generated logo", "mime_type", img.MIMEType, "bytes", len(img.Data), "elapsed", time.Since(start))
	return img, nil
}
