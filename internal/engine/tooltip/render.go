package tooltip

import (
	"strings"

	"github.com/hexbench/tooltip-api/internal/entities"
)

// Renderer substitutes resolved variables into a parsed template and
// assembles final paragraph text. Pure string construction.
type Renderer struct {
	labels *LabelResolver
}

// NewRenderer creates a renderer using the given resolver for the
// final keyword translation pass.
func NewRenderer(labels *LabelResolver) *Renderer {
	return &Renderer{labels: labels}
}

// Render produces one string per paragraph. Each placeholder becomes
// the display string of the variable it names; a placeholder without a
// matching variable renders as its raw key, never as an error.
func (r *Renderer) Render(tpl ParsedTemplate, vars []entities.ResolvedVariable) []string {
	byKey := make(map[string]string, len(vars))
	for _, v := range vars {
		byKey[strings.ToLower(v.Key)] = v.DisplayString
	}

	paragraphs := make([]string, 0, len(tpl.Paragraphs))
	for _, para := range tpl.Paragraphs {
		var b strings.Builder
		for _, seg := range para.Segments {
			switch seg.Kind {
			case SegmentText:
				b.WriteString(seg.Text)
			case SegmentPlaceholder:
				if display, ok := byKey[strings.ToLower(seg.Key)]; ok {
					b.WriteString(display)
				} else {
					b.WriteString(seg.Key)
				}
			}
		}
		paragraphs = append(paragraphs, r.labels.TranslateText(b.String()))
	}
	return paragraphs
}
