package middleware

import (
	"net/http"
	"strconv"
)

const (
	SupportEmail      = "support@bentcrankshaft.com"
	SuspendRetryAfter = 3600 // seconds
)

const suspendedPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Temporarily Unavailable</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background: #f5f5f5;
  min-height: 100vh; display: flex; align-items: center; justify-content: center; padding: 20px; }
.container { background: #fff; border-radius: 16px; box-shadow: 0 20px 60px rgba(0,0,0,.3); max-width: 600px;
  width: 100%; padding: 60px 40px; text-align: center; }
.logo { max-width: 90%; width: 400px; margin: 0 auto 30px; padding: 30px; }
.logo img { max-width: 100%; }
h1 { color: #2d3748; font-size: 32px; margin-bottom: 16px; }
.subtitle { color: #718096; font-size: 18px; margin-bottom: 40px; line-height: 1.6; }
.info { border-left: 4px solid #3182ce; padding: 20px; margin: 30px 0; text-align: left; border-radius: 4px;
  box-shadow: 0 2px 8px rgba(0,0,0,.05); }
.info h3 { color: #2d3748; font-size: 16px; margin-bottom: 12px; }
.info p { color: #4a5568; margin: 12px 0; }
.info a { color: #3182ce; text-decoration: none; font-weight: 500; margin-left: 8px; }
.footer { margin-top: 40px; padding-top: 30px; border-top: 1px solid #e2e8f0; color: #a0aec0; font-size: 14px; }
</style>
</head>
<body>
<div class="container">
  <div class="logo"><img src="/bentcrankshaft_logo.png" alt="Bent Crankshaft"></div>
  <h1>Temporarily Unavailable</h1>
  <p class="subtitle">This site is temporarily down for maintenance.
    We apologize for any inconvenience. Please check back soon.</p>
  <div class="info">
    <h3>Site Owner Contact</h3>
    <p>Email:<a href="mailto:` + SupportEmail + `">` + SupportEmail + `</a></p>
    <p>Visit:<a href="https://bentcrankshaft.com" target="_blank">bentcrankshaft.com</a></p>
  </div>
  <div class="footer">Power Equipment SaaS Platform<br>Powered by Bent Crankshaft Solutions</div>
</div>
</body>
</html>
`

// WriteSuspended writes the fixed suspension page with a 503.
func WriteSuspended(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Content-Type", "text/html; charset=utf-8")
	h.Set("Retry-After", strconv.Itoa(SuspendRetryAfter))
	h.Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte(suspendedPage))
}
