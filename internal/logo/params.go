package logo

import (
	"errors"
	"fmt"
	"strings"
)

var ErrEmptyInput = errors.New("both a business idea and a logo style are required")

type Params struct {
	BusinessIdea string `json:"businessIdea" form:"businessIdea"`
	Style        string `json:"logoStyle" form:"logoStyle"`
}

func (p Params) Validate() error {
	if strings.TrimSpace(p.BusinessIdea) == "" || strings.TrimSpace(p.Style) == "" {
		return ErrEmptyInput
	}
	return nil
}

// Prompt renders the text sent to the image model. Inputs are used verbatim.
func (p Params) Prompt() string {
	return fmt.Sprintf("A %s logo design for a company named '%s'", p.Style, p.BusinessIdea)
}
