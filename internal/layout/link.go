package layout

import "fmt"

var _ Node = (*Link)(nil)

// Link is a text leaf pointing at a URL. Without a title it displays the
// URL itself. It lays out exactly like Text.
type Link struct {
	*Text
	url string
}

// NewLink creates a link. An empty title shows the URL.
func NewLink(url, title string, font Font) *Link {
	if title == "" {
		title = url
	}
	return &Link{Text: NewText(title, font), url: url}
}

// URL returns the link target.
func (l *Link) URL() string { return l.url }

// PositionAt hands the link itself, not the embedded text, to the realizer.
func (l *Link) PositionAt(p *Pass, x, y int) {
	l.setPos(x, y)
	p.realize(l)
}

func (l *Link) String() string {
	return fmt.Sprintf("Link(%q -> %s)", l.Text.Text(), l.url)
}
