package browser

import (
	"context"
	"fmt"

	"github.com/heartmarshall/vocab-helper/internal/domain"
	"github.com/heartmarshall/vocab-helper/internal/render"
)

type evaluator interface {
	Evaluate(ctx context.Context, script string, res any) error
}

// Panel shows lookups in a floating panel injected into the host page.
type Panel struct {
	page     evaluator
	language string
}

// NewPanel creates a Panel drawing into page. language is the gloss
// language code shown in the pending message.
func NewPanel(page evaluator, language string) *Panel {
	return &Panel{page: page, language: language}
}

func (p *Panel) Pending(ctx context.Context, word string) error {
	body, err := render.PendingHTML(word, render.LanguageName(p.language))
	if err != nil {
		return err
	}
	return p.show(ctx, body)
}

func (p *Panel) Publish(ctx context.Context, result *domain.LookupResult) error {
	body, err := render.ResultHTML(result)
	if err != nil {
		return err
	}
	return p.show(ctx, body)
}

func (p *Panel) Hide(ctx context.Context) error {
	var ok bool
	if err := p.page.Evaluate(ctx, hidePanelScript(), &ok); err != nil {
		return fmt.Errorf("browser: hide panel: %w", err)
	}
	return nil
}

func (p *Panel) show(ctx context.Context, body string) error {
	var ok bool
	if err := p.page.Evaluate(ctx, showPanelScript(body), &ok); err != nil {
		return fmt.Errorf("browser: show panel: %w", err)
	}
	return nil
}
