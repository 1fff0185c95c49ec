package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

const bookingText = `Hi {{.GuestName}},

Your booking is confirmed.

  {{.PlaceTitle}}
  {{.PlaceAddr}}

  Check-in:  {{.CheckIn}}
  Check-out: {{.CheckOut}}
  Guests:    {{.Guests}}
  Total:     ${{.Price}}

Booking reference: {{.BookingID}}
`

const bookingHTML = `<div style="font-family:sans-serif;max-width:560px">
  <h2>Booking confirmed</h2>
  <p>Hi {{.GuestName}},</p>
  <p>Your stay at <strong>{{.PlaceTitle}}</strong>, {{.PlaceAddr}}, is confirmed.</p>
  <table cellpadding="4">
    <tr><td>Check-in</td><td>{{.CheckIn}}</td></tr>
    <tr><td>Check-out</td><td>{{.CheckOut}}</td></tr>
    <tr><td>Guests</td><td>{{.Guests}}</td></tr>
    <tr><td>Total</td><td>${{.Price}}</td></tr>
  </table>
  <p style="color:#888">Booking reference: {{.BookingID}}</p>
</div>`

var (
	bookingTextTpl = texttpl.Must(texttpl.New("booking_text").Parse(bookingText))
	bookingHTMLTpl = htmltpl.Must(htmltpl.New("booking_html").Parse(bookingHTML))
)

// RenderBookingConfirmation renders subject, text and HTML bodies for a
// booking confirmation email.
func RenderBookingConfirmation(data any) (subject, text, html string, err error) {
	var tb, hb bytes.Buffer
	if err = bookingTextTpl.Execute(&tb, data); err != nil {
		return "", "", "", fmt.Errorf("render text: %w", err)
	}
	if err = bookingHTMLTpl.Execute(&hb, data); err != nil {
		return "", "", "", fmt.Errorf("render html: %w", err)
	}
	return "Your booking is confirmed", tb.String(), hb.String(), nil
}
