package tooltip

import (
	"strings"
)

// SegmentKind discriminates parsed template segments.
type SegmentKind int

// Segment kinds.
const (
	SegmentText SegmentKind = iota
	SegmentPlaceholder
)

// Segment is one typed piece of a parsed description: literal text or
// an @Name@ variable placeholder.
type Segment struct {
	Kind SegmentKind
	Text string // literal text, SegmentText only
	Key  string // variable key, SegmentPlaceholder only
}

// Paragraph is an ordered run of segments rendered as one block.
type Paragraph struct {
	Segments []Segment
}

// ParsedTemplate is a description after markup stripping and paragraph
// splitting, ready for placeholder substitution.
type ParsedTemplate struct {
	Paragraphs []Paragraph
}

// TemplateParser converts raw description markup into a ParsedTemplate
// in a single pass. Upstream data is not guaranteed well-formed, so
// every malformed construct degrades instead of failing: an
// unterminated tag is dropped, an unmatched conditional open keeps its
// content, a lone @ is literal text.
type TemplateParser struct {
	conditional map[string]bool
	connectives []string
}

// NewTemplateParser creates a parser; nil config uses the defaults.
func NewTemplateParser(cfg *TemplateConfig) *TemplateParser {
	cfg = cfg.withDefaults()
	cond := make(map[string]bool, len(cfg.ConditionalTags))
	for _, t := range cfg.ConditionalTags {
		cond[strings.ToLower(t)] = true
	}
	return &TemplateParser{
		conditional: cond,
		connectives: cfg.ConnectiveKeywords,
	}
}

// Parse tokenizes a raw description.
func (p *TemplateParser) Parse(desc string) ParsedTemplate {
	var paras []Paragraph
	var cur Paragraph
	var text strings.Builder

	flushText := func() {
		if text.Len() > 0 {
			cur.Segments = append(cur.Segments, Segment{Kind: SegmentText, Text: text.String()})
			text.Reset()
		}
	}
	flushParagraph := func() {
		flushText()
		paras = append(paras, cur)
		cur = Paragraph{}
	}

	i := 0
	for i < len(desc) {
		switch desc[i] {
		case '<':
			rel := strings.IndexByte(desc[i:], '>')
			if rel < 0 {
				// Unterminated tag swallows the rest of the string.
				i = len(desc)
				continue
			}
			tag := desc[i+1 : i+rel]
			i += rel + 1
			name := tagName(tag)
			switch {
			case strings.HasPrefix(tag, "/"):
				// Closing tag of an unwrapped wrapper, drop it.
			case name == "br":
				flushParagraph()
			case p.conditional[name]:
				closing := "</" + name + ">"
				if idx := strings.Index(strings.ToLower(desc[i:]), closing); idx >= 0 {
					// Conditional block: content omitted.
					i += idx + len(closing)
				}
				// Unmatched open: tag deleted, content kept.
			default:
				// Semantic wrapper: unwrap, keeping inner text.
			}
		case '@':
			rel := strings.IndexByte(desc[i+1:], '@')
			if rel < 0 {
				text.WriteByte('@')
				i++
				continue
			}
			key := desc[i+1 : i+1+rel]
			if !isPlaceholderKey(key) {
				text.WriteByte('@')
				i++
				continue
			}
			flushText()
			cur.Segments = append(cur.Segments, Segment{Kind: SegmentPlaceholder, Key: key})
			i += rel + 2
		default:
			text.WriteByte(desc[i])
			i++
		}
	}
	flushParagraph()

	paras = p.splitAtConnectives(paras)
	return ParsedTemplate{Paragraphs: tidyParagraphs(paras)}
}

// tagName extracts the lowercase tag name from the inside of <...>,
// tolerating closing slashes, self-closing slashes, and attributes.
func tagName(tag string) string {
	tag = strings.Trim(tag, "/")
	if sp := strings.IndexByte(tag, ' '); sp >= 0 {
		tag = tag[:sp]
	}
	return strings.ToLower(tag)
}

// isPlaceholderKey reports whether the text between two @ signs is a
// variable identifier rather than incidental prose.
func isPlaceholderKey(key string) bool {
	if key == "" {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		switch {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// splitAtConnectives starts a new paragraph wherever a connective
// keyword opens a clause, keeping tooltip text scannable.
func (p *TemplateParser) splitAtConnectives(paras []Paragraph) []Paragraph {
	var out []Paragraph
	for _, para := range paras {
		out = append(out, p.splitParagraph(para)...)
	}
	return out
}

func (p *TemplateParser) splitParagraph(para Paragraph) []Paragraph {
	var result []Paragraph
	var cur Paragraph

	for _, seg := range para.Segments {
		if seg.Kind != SegmentText {
			cur.Segments = append(cur.Segments, seg)
			continue
		}
		text := seg.Text
		for {
			cut := p.findClauseCut(text)
			if cut < 0 {
				break
			}
			head := text[:cut]
			if strings.TrimSpace(head) != "" {
				cur.Segments = append(cur.Segments, Segment{Kind: SegmentText, Text: head})
			}
			result = append(result, cur)
			cur = Paragraph{}
			text = text[cut:]
		}
		if text != "" {
			cur.Segments = append(cur.Segments, Segment{Kind: SegmentText, Text: text})
		}
	}

	return append(result, cur)
}

// findClauseCut returns the index where a connective keyword begins a
// clause (preceded by sentence-ending punctuation), or -1.
func (p *TemplateParser) findClauseCut(text string) int {
	best := -1
	for _, kw := range p.connectives {
		from := 0
		for {
			rel := strings.Index(text[from:], kw)
			if rel < 0 {
				break
			}
			idx := from + rel
			if p.beginsClause(text, idx, len(kw)) {
				if best < 0 || idx < best {
					best = idx
				}
				break
			}
			from = idx + len(kw)
		}
	}
	return best
}

func (p *TemplateParser) beginsClause(text string, idx, kwLen int) bool {
	// Word boundary after the keyword.
	if end := idx + kwLen; end < len(text) {
		c := text[end]
		if c != ' ' && c != ',' && c != '.' {
			return false
		}
	}
	// Sentence-ending punctuation before it, whitespace in between.
	j := idx - 1
	for j >= 0 && (text[j] == ' ' || text[j] == '\t') {
		j--
	}
	if j < 0 {
		return false
	}
	switch text[j] {
	case '.', '!', '?', ';':
		return true
	}
	return false
}

// tidyParagraphs trims paragraph-edge whitespace and drops paragraphs
// left empty by markup stripping.
func tidyParagraphs(paras []Paragraph) []Paragraph {
	out := make([]Paragraph, 0, len(paras))
	for _, para := range paras {
		segs := para.Segments
		if len(segs) > 0 && segs[0].Kind == SegmentText {
			segs[0].Text = strings.TrimLeft(segs[0].Text, " \t\n")
		}
		if n := len(segs) - 1; n >= 0 && segs[n].Kind == SegmentText {
			segs[n].Text = strings.TrimRight(segs[n].Text, " \t\n")
		}
		kept := segs[:0]
		for _, seg := range segs {
			if seg.Kind == SegmentText && seg.Text == "" {
				continue
			}
			kept = append(kept, seg)
		}
		if len(kept) == 0 {
			continue
		}
		out = append(out, Paragraph{Segments: kept})
	}
	return out
}
