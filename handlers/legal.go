package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// PrivacyPolicyHandler serves the public privacy policy page.
func PrivacyPolicyHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(privacyPolicyHTML()))
}

// TermsOfServiceHandler serves the public terms of service page.
func TermsOfServiceHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(termsOfServiceHTML()))
}

func effectiveDate() string {
	return time.Now().UTC().Format("2006-01-02")
}

func privacyPolicyHTML() string {
	return fmt.Sprintf(`
    <h1>Privacy Policy</h1>
    <p>Effective Date: %s</p>

    <p>This application provides booking services via WhatsApp and integrates with Google Calendar.</p>

    <h2>Information We Collect</h2>
    <ul>
      <li>WhatsApp phone number</li>
      <li>Messages sent to the booking system</li>
      <li>Booking date and route selection</li>
    </ul>

    <h2>How We Use Information</h2>
    <p>Information is used solely to create and manage calendar bookings.</p>

    <h2>Data Storage</h2>
    <p>No personal data is sold or shared with third parties. Booking data is stored only within Google Calendar.</p>
  `, effectiveDate())
}

func termsOfServiceHTML() string {
	return fmt.Sprintf(`
    <h1>Terms of Service</h1>
    <p>Effective Date: %s</p>

    <p>By using this booking service, you agree to the following terms:</p>

    <ul>
      <li>The system is provided "as is" without guarantees.</li>
      <li>Bookings are subject to availability.</li>
      <li>Misuse of the system may result in access restriction.</li>
    </ul>

    <h2>Limitation of Liability</h2>
    <p>The service provider is not liable for missed bookings or scheduling conflicts.</p>

    <h2>Changes</h2>
    <p>We reserve the right to modify these terms at any time.</p>
  `, effectiveDate())
}
