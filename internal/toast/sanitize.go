package toast

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var allowedTags = map[atom.Atom]bool{
	atom.A:      true,
	atom.Em:     true,
	atom.Strong: true,
	atom.I:      true,
	atom.B:      true,
	atom.U:      true,
}

// Elements whose content is dropped along with the tag.
var droppedContent = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Iframe:   true,
	atom.Noscript: true,
	atom.Object:   true,
	atom.Template: true,
	atom.Textarea: true,
}

// Sanitize reduces message to text plus the inline tags a, em, strong, i, b and u.
// Other tags are removed but their text is kept; script-like elements are removed
// with their content. Only a safe href survives on links.
func Sanitize(message string) string {
	var b strings.Builder
	walk(message, func(tok html.Token, text string) {
		switch tok.Type {
		case html.TextToken:
			b.WriteString(html.EscapeString(text))
		case html.StartTagToken, html.SelfClosingTagToken:
			b.WriteByte('<')
			b.WriteString(tok.Data)
			if href, ok := safeHref(tok); ok {
				b.WriteString(` href="`)
				b.WriteString(html.EscapeString(href))
				b.WriteByte('"')
			}
			b.WriteByte('>')
		case html.EndTagToken:
			b.WriteString("</")
			b.WriteString(tok.Data)
			b.WriteByte('>')
		}
	})
	return b.String()
}

// Segment is a run of message text sharing one inline style.
type Segment struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
	Href      string
}

// Segments splits a message into styled runs for terminal rendering.
func Segments(message string) []Segment {
	var (
		out                     []Segment
		bold, italic, underline int
		hrefs                   []string
	)
	walk(message, func(tok html.Token, text string) {
		delta := 0
		switch tok.Type {
		case html.TextToken:
			seg := Segment{Text: text, Bold: bold > 0, Italic: italic > 0, Underline: underline > 0}
			if len(hrefs) > 0 {
				seg.Href = hrefs[len(hrefs)-1]
			}
			out = append(out, seg)
			return
		case html.StartTagToken:
			delta = 1
		case html.EndTagToken:
			delta = -1
		default:
			return
		}
		switch tok.DataAtom {
		case atom.B, atom.Strong:
			bold = max(bold+delta, 0)
		case atom.I, atom.Em:
			italic = max(italic+delta, 0)
		case atom.U:
			underline = max(underline+delta, 0)
		case atom.A:
			if delta > 0 {
				href, _ := safeHref(tok)
				hrefs = append(hrefs, href)
			} else if len(hrefs) > 0 {
				hrefs = hrefs[:len(hrefs)-1]
			}
		}
	})
	return out
}

// Plain returns the message text without markup.
func Plain(message string) string {
	var b strings.Builder
	for _, seg := range Segments(message) {
		b.WriteString(seg.Text)
	}
	return b.String()
}

// walk tokenizes message and reports text (unescaped) and allowed tags to fn.
func walk(message string, fn func(tok html.Token, text string)) {
	z := html.NewTokenizer(strings.NewReader(message))
	skip := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return
		}
		tok := z.Token()
		switch tt {
		case html.TextToken:
			if skip == 0 {
				fn(tok, tok.Data)
			}
		case html.StartTagToken, html.SelfClosingTagToken:
			if droppedContent[tok.DataAtom] {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if skip == 0 && allowedTags[tok.DataAtom] {
				fn(tok, "")
			}
		case html.EndTagToken:
			if droppedContent[tok.DataAtom] {
				skip = max(skip-1, 0)
				continue
			}
			if skip == 0 && allowedTags[tok.DataAtom] {
				fn(tok, "")
			}
		}
	}
}

func safeHref(tok html.Token) (string, bool) {
	if tok.DataAtom != atom.A {
		return "", false
	}
	for _, attr := range tok.Attr {
		if attr.Key != "href" {
			continue
		}
		href := strings.TrimSpace(attr.Val)
		lower := strings.ToLower(href)
		if i := strings.IndexByte(lower, ':'); i >= 0 {
			scheme := lower[:i]
			if !strings.ContainsAny(scheme, "/?#") && scheme != "http" && scheme != "https" && scheme != "mailto" {
				return "", false
			}
		}
		return href, href != ""
	}
	return "", false
}
