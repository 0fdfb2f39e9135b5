package service

import (
	"fmt"
	"net/url"
	"strings"

	"cantina-feedback/dashboard-svc/internal/domain"

	"github.com/skip2/go-qrcode"
)

// DefaultShareCodeGenerator encodes a link that opens the detail view of one
// canteen on the dashboard frontend.
type DefaultShareCodeGenerator struct {
	BaseURL string
	Size    int
}

func (g DefaultShareCodeGenerator) Link(canteen string) string {
	q := url.Values{}
	q.Set("view", string(domain.ViewDetail))
	q.Set("canteen", canteen)
	return fmt.Sprintf("%s/?%s", strings.TrimRight(g.BaseURL, "/"), q.Encode())
}

func (g DefaultShareCodeGenerator) Generate(canteen string) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	return qrcode.Encode(g.Link(canteen), qrcode.Medium, size)
}
