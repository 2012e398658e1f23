// Package share builds outbound social-share targets for the portfolio page.
package share

import (
	"fmt"
	"net/url"
	"strings"
)

// Platform is a share destination.
type Platform string

const (
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
	Facebook  Platform = "facebook"
	WhatsApp  Platform = "whatsapp"
	SMS       Platform = "sms"
	Instagram Platform = "instagram"
)

// Platforms lists every supported platform.
func Platforms() []Platform {
	return []Platform{Twitter, LinkedIn, Facebook, WhatsApp, SMS, Instagram}
}

// InstagramProfile is opened instead of a share intent; Instagram has no
// web share target.
const InstagramProfile = "https://www.instagram.com/"

// PopupFeatures are the window features for share intents.
const PopupFeatures = "width=600,height=400"

const aboutExcerptLen = 100

// Message is the text shared alongside the page URL.
type Message struct {
	Title string
	Text  string
}

// NewMessage builds the share title and text for a portfolio.
func NewMessage(owner, role, about string) Message {
	excerpt := about
	if r := []rune(about); len(r) > aboutExcerptLen {
		excerpt = string(r[:aboutExcerptLen])
	}
	return Message{
		Title: fmt.Sprintf("Check out %s's %s Portfolio", owner, role),
		Text:  excerpt + "...",
	}
}

// Target is where a share action navigates.
type Target struct {
	URL   string
	Popup bool
}

// For returns the share target for platform. Unknown platforms report false
// and must not navigate.
func For(p Platform, pageURL string, msg Message) (Target, bool) {
	u := escape(pageURL)
	withTitle := escape(msg.Title + " " + pageURL)

	switch p {
	case Twitter:
		return Target{URL: "https://twitter.com/intent/tweet?url=" + u + "&text=" + escape(msg.Title), Popup: true}, true
	case LinkedIn:
		return Target{URL: "https://www.linkedin.com/sharing/share-offsite/?url=" + u, Popup: true}, true
	case Facebook:
		return Target{URL: "https://www.facebook.com/sharer/sharer.php?u=" + u, Popup: true}, true
	case WhatsApp:
		return Target{URL: "https://wa.me/?text=" + withTitle, Popup: true}, true
	case SMS:
		return Target{URL: "sms:?body=" + withTitle, Popup: true}, true
	case Instagram:
		return Target{URL: InstagramProfile}, true
	}
	return Target{}, false
}

// componentEscaper undoes the query escapes that URI component encoding leaves
// literal.
var componentEscaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// escape percent-encodes a URI component.
func escape(s string) string {
	return componentEscaper.Replace(url.QueryEscape(s))
}
