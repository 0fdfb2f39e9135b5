package dataset

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"cantina-feedback/dashboard-svc/internal/domain"
)

// Document names, without extension, as produced by the survey analysis.
const (
	DocAverages         = "medias_por_cantina"
	DocReviewCounts     = "contagem_avaliacoes_por_cantina"
	DocCanteenSentiment = "analise_sentimento_cantina"
	DocGlobalSentiment  = "analise_sentimento_total"
	DocComments         = "comentarios_detalhados_por_cantina"
)

var Documents = []string{DocAverages, DocReviewCounts, DocCanteenSentiment, DocGlobalSentiment, DocComments}

// Source returns the raw JSON of one document.
type Source interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

//go:embed assets/*.json
var bundled embed.FS

// FSSource reads <name>.json from a filesystem.
type FSSource struct {
	FS fs.FS
}

func (s FSSource) Read(_ context.Context, name string) ([]byte, error) {
	data, err := fs.ReadFile(s.FS, name+".json")
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: document %s not found", domain.ErrMalformedDataset, name)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

// Embedded serves the datasets compiled into the binary.
func Embedded() FSSource {
	sub, err := fs.Sub(bundled, "assets")
	if err != nil {
		panic(err)
	}
	return FSSource{FS: sub}
}

func Dir(path string) FSSource {
	return FSSource{FS: os.DirFS(path)}
}
