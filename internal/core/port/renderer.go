package port

import (
	"context"
	"io"

	"adpaas/internal/core/document"
)

// Renderer writes a laid-out form to w. document.Renderer implements it.
type Renderer interface {
	Render(ctx context.Context, in document.Input, w io.Writer) error
}
