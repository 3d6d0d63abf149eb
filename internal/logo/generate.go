package logo

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"
)

const DefaultMIMEType = "image/jpeg"

var ErrNoImage = errors.New("no image was generated, the response may have been blocked")

type Image struct {
	MIMEType string
	Data     []byte
}

func (i Image) DataURI() string {
	mime := i.MIMEType
	if mime == "" {
		mime = DefaultMIMEType
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(i.Data)
}

type Generator interface {
	Generate(context.Context, string) (Image, error)
}

// GeneratorFunc adapts a plain function to Generator.
type GeneratorFunc func(context.Context, string) (Image, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (Image, error) {
	return f(ctx, prompt)
}

// sniffMIMEType falls back to content sniffing when a provider does not say
// what it returned.
func sniffMIMEType(declared string, data []byte) string {
	if declared != "" {
		return declared
	}
	sniffed := http.DetectContentType(data)
	if strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	return DefaultMIMEType
}
