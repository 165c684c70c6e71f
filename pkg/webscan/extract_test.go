package webscan_test

import (
	"net/http"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/privacy-lab/tikun13/pkg/webscan"
)

func TestExtract_Transport(t *testing.T) {
	headers := http.Header{}
	headers.Set("Strict-Transport-Security", "max-age=31536000")
	headers.Set("Content-Security-Policy", "default-src 'self'")
	headers.Set("X-Content-Type-Options", "nosniff")

	sig := webscan.Extract("https://example.co.il", headers, "<html><body>hi</body></html>", "")
	gt.Bool(t, sig.HTTPS).True()
	gt.Bool(t, sig.HSTS).True()
	gt.Array(t, sig.SecurityHeaders).Length(3)

	plain := webscan.Extract("http://example.co.il", nil, "<html><body>hi</body></html>", "")
	gt.Bool(t, plain.HTTPS).False()
	gt.Bool(t, plain.HSTS).False()
}

func TestExtract_CookiesAndTrackers(t *testing.T) {
	t.Run("set-cookie header detected", func(t *testing.T) {
		headers := http.Header{}
		headers.Add("Set-Cookie", "session=abc")
		sig := webscan.Extract("https://example.co.il", headers, "<html><body>x</body></html>", "")
		gt.Bool(t, sig.SetsCookies).True()
	})

	t.Run("tracking scripts counted", func(t *testing.T) {
		page := `<html><head>
			<script src="https://www.googletagmanager.com/gtm.js"></script>
			<script src="https://www.google-analytics.com/analytics.js"></script>
		</head><body></body></html>`
		sig := webscan.Extract("https://example.co.il", nil, page, "")
		gt.Value(t, sig.TrackingScripts).Equal(2)
	})

	t.Run("consent manager detected", func(t *testing.T) {
		page := `<html><head><script id="Cookiebot" src="https://consent.cookiebot.com/uc.js"></script></head><body></body></html>`
		sig := webscan.Extract("https://example.co.il", nil, page, "")
		gt.Bool(t, sig.ConsentManager).True()
	})

	t.Run("hebrew cookie banner detected", func(t *testing.T) {
		page := `<html><body><div class="banner">אתר זה משתמש בעוגיות</div></body></html>`
		sig := webscan.Extract("https://example.co.il", nil, page, "")
		gt.Bool(t, sig.CookieBanner).True()
	})
}

func TestExtract_Forms(t *testing.T) {
	t.Run("email form without consent", func(t *testing.T) {
		page := `<html><body><form>
			<input type="email" name="email">
			<input type="submit">
		</form></body></html>`
		sig := webscan.Extract("https://example.co.il", nil, page, "")
		gt.Value(t, sig.Forms).Equal(1)
		gt.Value(t, sig.PersonalDataForms).Equal(1)
		gt.Value(t, sig.FormsWithConsent).Equal(0)
	})

	t.Run("consent checkbox counts", func(t *testing.T) {
		page := `<html><body><form>
			<input type="tel" name="phone">
			<input type="checkbox" name="consent_marketing">
		</form></body></html>`
		sig := webscan.Extract("https://example.co.il", nil, page, "")
		gt.Value(t, sig.PersonalDataForms).Equal(1)
		gt.Value(t, sig.FormsWithConsent).Equal(1)
	})

	t.Run("hebrew consent wording counts", func(t *testing.T) {
		page := `<html><body><form>
			<input type="text" name="full_name">
			<label>אני מאשר את תנאי השימוש</label>
		</form></body></html>`
		sig := webscan.Extract("https://example.co.il", nil, page, "")
		gt.Value(t, sig.FormsWithConsent).Equal(1)
	})

	t.Run("search form is not personal data", func(t *testing.T) {
		page := `<html><body><form><input type="text" name="q"></form></body></html>`
		sig := webscan.Extract("https://example.co.il", nil, page, "")
		gt.Value(t, sig.Forms).Equal(1)
		gt.Value(t, sig.PersonalDataForms).Equal(0)
	})
}

func TestExtract_Links(t *testing.T) {
	page := `<html><body>
		<a href="/privacy-policy">Privacy Policy</a>
		<a href="/terms">Terms of Use</a>
		<a href="/contact">Contact</a>
	</body></html>`
	sig := webscan.Extract("https://example.co.il", nil, page, "")
	gt.Value(t, sig.PolicyLink).Equal("/privacy-policy")
	gt.Value(t, sig.TransparencyLinks).Equal(2)
}

func TestExtract_HebrewPolicyLink(t *testing.T) {
	page := `<html><body><a href="/legal">מדיניות פרטיות</a></body></html>`
	sig := webscan.Extract("https://example.co.il", nil, page, "")
	gt.Value(t, sig.PolicyLink).Equal("/legal")
}

func TestExtract_HebrewRatio(t *testing.T) {
	hebrew := `<html><body><p>ברוכים הבאים לאתר שלנו. אנחנו שומרים על הפרטיות שלכם.</p></body></html>`
	sig := webscan.Extract("https://example.co.il", nil, hebrew, "")
	gt.Bool(t, sig.HebrewRatio > 0.9).True()

	english := `<html><body><p>Welcome to our site. We care about your privacy.</p></body></html>`
	sig = webscan.Extract("https://example.co.il", nil, english, "")
	gt.Value(t, sig.HebrewRatio).Equal(0.0)
}

func TestExtract_PolicyCoverage(t *testing.T) {
	policy := `<html><body>
		<h2>What we collect</h2>
		<h2>Purpose of processing</h2>
		<h2>Your rights</h2>
		<h2>Retention</h2>
		<h2>Third party sharing</h2>
		<h2>Contact us</h2>
	</body></html>`
	sig := webscan.Extract("https://example.co.il", nil, "<html><body>x</body></html>", policy)
	gt.Array(t, sig.PolicyCoverage).Length(6)

	sparse := `<html><body><p>We collect data.</p></body></html>`
	sig = webscan.Extract("https://example.co.il", nil, "<html><body>x</body></html>", sparse)
	gt.Array(t, sig.PolicyCoverage).Length(1)
}

func TestExtract_EmptyPage(t *testing.T) {
	sig := webscan.Extract("https://example.co.il", nil, "", "")
	gt.Bool(t, sig.ParseFailed).True()
}
