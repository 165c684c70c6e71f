// Package webscan infers compliance signals from a website's HTML instead of
// a human questionnaire, and scores them with a simpler weighted model.
package webscan

import (
	"net/http"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Signals are the answer-like facts the extractor derives from raw HTML and
// response metadata. "Zero findings" is meaningful: no forms and no cookies
// is full compliance for the respective checks, not an error.
type Signals struct {
	// Transport
	HTTPS bool
	HSTS  bool

	// Security headers present on the response
	SecurityHeaders []string

	// Cookie and tracking surface
	SetsCookies     bool
	TrackingScripts int
	CookieBanner    bool
	ConsentManager  bool

	// Forms collecting personal data
	Forms             int
	PersonalDataForms int
	FormsWithConsent  int

	// Privacy policy
	PolicyLink     string
	PolicyCoverage []string

	// Content
	HebrewRatio       float64
	TransparencyLinks int

	// ParseFailed marks HTML that could not be tokenized at all
	ParseFailed bool
}

var trackingMarkers = []string{
	"google-analytics.com",
	"googletagmanager.com",
	"gtag(",
	"fbq(",
	"facebook.net",
	"hotjar.com",
	"clarity.ms",
	"taboola.com",
	"outbrain.com",
}

var consentManagerMarkers = []string{
	"cookiebot",
	"onetrust",
	"cookieyes",
	"iubenda",
	"usercentrics",
	"termly",
}

var cookieBannerMarkers = []string{
	"cookie-banner",
	"cookie-consent",
	"cookie_notice",
	"cookieconsent",
	"accept-cookies",
	"עוגיות",
}

var policyLinkMarkers = []string{
	"privacy",
	"פרטיות",
	"מדיניות",
}

var transparencyMarkers = []string{
	"terms",
	"contact",
	"accessibility",
	"תנאי שימוש",
	"צור קשר",
	"נגישות",
}

// policyTopics are the privacy-policy sections Amendment 13 expects. Coverage
// is keyword-based over the policy page text.
var policyTopics = map[string][]string{
	"collection": {"collect", "איסוף", "אוספים"},
	"purpose":    {"purpose", "מטרה", "מטרות"},
	"rights":     {"rights", "זכויות", "עיון", "מחיקה"},
	"retention":  {"retention", "שמירה", "תקופת"},
	"third_party": {"third party", "third-party", "צד שלישי", "צדדים שלישיים"},
	"contact":    {"contact", "יצירת קשר", "פנייה", "ממונה"},
}

var securityHeaderNames = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Content-Type-Options",
	"X-Frame-Options",
	"Referrer-Policy",
}

// Extract derives Signals from an already-retrieved page. pageURL decides the
// HTTPS signal, headers contribute security signals, and policyHTML (may be
// empty) feeds privacy-policy coverage.
func Extract(pageURL string, headers http.Header, pageHTML, policyHTML string) Signals {
	var sig Signals

	sig.HTTPS = strings.HasPrefix(strings.ToLower(pageURL), "https://")
	if headers != nil {
		sig.HSTS = headers.Get("Strict-Transport-Security") != ""
		for _, name := range securityHeaderNames {
			if headers.Get(name) != "" {
				sig.SecurityHeaders = append(sig.SecurityHeaders, name)
			}
		}
		sig.SetsCookies = len(headers.Values("Set-Cookie")) > 0
	}

	doc, err := html.Parse(strings.NewReader(pageHTML))
	if err != nil || strings.TrimSpace(pageHTML) == "" {
		sig.ParseFailed = true
		return sig
	}

	lowerHTML := strings.ToLower(pageHTML)
	for _, marker := range trackingMarkers {
		sig.TrackingScripts += strings.Count(lowerHTML, marker)
	}
	for _, marker := range consentManagerMarkers {
		if strings.Contains(lowerHTML, marker) {
			sig.ConsentManager = true
			break
		}
	}
	for _, marker := range cookieBannerMarkers {
		if strings.Contains(lowerHTML, marker) {
			sig.CookieBanner = true
			break
		}
	}
	if strings.Contains(lowerHTML, "document.cookie") {
		sig.SetsCookies = true
	}

	var text strings.Builder
	walk(doc, &sig, &text)
	sig.HebrewRatio = hebrewRatio(text.String())

	if policyHTML != "" {
		sig.PolicyCoverage = coverTopics(policyHTML)
	}

	return sig
}

func walk(n *html.Node, sig *Signals, text *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		text.WriteString(n.Data)
		text.WriteByte(' ')
	case html.ElementNode:
		switch n.Data {
		case "form":
			sig.Forms++
			personal, consent := inspectForm(n)
			if personal {
				sig.PersonalDataForms++
			}
			if consent {
				sig.FormsWithConsent++
			}
		case "a":
			href := strings.ToLower(attr(n, "href"))
			label := strings.ToLower(nodeText(n))
			for _, marker := range policyLinkMarkers {
				if strings.Contains(href, marker) || strings.Contains(label, marker) {
					if sig.PolicyLink == "" {
						sig.PolicyLink = attr(n, "href")
					}
					break
				}
			}
			for _, marker := range transparencyMarkers {
				if strings.Contains(href, marker) || strings.Contains(label, marker) {
					sig.TransparencyLinks++
					break
				}
			}
		case "script", "style":
			// Scripts were scanned as raw text already; skip their
			// contents for the language ratio
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, sig, text)
	}
}

// inspectForm reports whether a form collects personal data and whether it
// carries a consent checkbox or consent wording
func inspectForm(form *html.Node) (personal, consent bool) {
	formText := strings.ToLower(nodeText(form))
	if strings.Contains(formText, "consent") || strings.Contains(formText, "מסכים") ||
		strings.Contains(formText, "הסכמה") || strings.Contains(formText, "אני מאשר") {
		consent = true
	}

	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "input" {
			t := strings.ToLower(attr(n, "type"))
			name := strings.ToLower(attr(n, "name"))
			switch t {
			case "email", "tel":
				personal = true
			case "checkbox":
				if strings.Contains(name, "consent") || strings.Contains(name, "agree") {
					consent = true
				}
			}
			for _, marker := range []string{"email", "phone", "name", "address", "id_number", "teudat"} {
				if strings.Contains(name, marker) {
					personal = true
					break
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(form)
	return personal, consent
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return b.String()
}

// hebrewRatio returns the share of Hebrew letters among all letters in the
// visible text
func hebrewRatio(text string) float64 {
	var hebrew, letters int
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.Is(unicode.Hebrew, r) {
			hebrew++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(hebrew) / float64(letters)
}

// coverTopics returns the privacy-policy topics whose keywords appear in the
// policy page
func coverTopics(policyHTML string) []string {
	lower := strings.ToLower(policyHTML)
	var covered []string
	for _, topic := range []string{"collection", "purpose", "rights", "retention", "third_party", "contact"} {
		for _, kw := range policyTopics[topic] {
			if strings.Contains(lower, kw) {
				covered = append(covered, topic)
				break
			}
		}
	}
	return covered
}
