package ticket

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/avioline/skybook/internal/domain"
	"github.com/jung-kurt/gofpdf"
)

var advisories = []string{
	"Carry a valid government-issued ID.",
	"Arrive at the airport at least 2 hours before departure.",
	"Boarding gates close 30 minutes prior to departure.",
	"Ticket is non-transferable.",
	"Baggage allowance as per airline policy.",
	"Changes or cancellations follow airline terms and conditions.",
	"Follow all airport security and safety instructions.",
	"Keep this ticket handy for verification during boarding.",
}

// Renderer writes fixed-layout PDF tickets under dir. File names derive
// from the PNR alone, so a ticket stays retrievable by reconstructing
// the same name.
type Renderer struct {
	dir     string
	baseURL string
}

func NewRenderer(dir, baseURL string) *Renderer {
	return &Renderer{dir: dir, baseURL: baseURL}
}

// FileName returns the deterministic document name for a PNR.
func FileName(pnr string) string {
	return "Ticket_" + pnr + ".pdf"
}

func (r *Renderer) URL(pnr string) string {
	return r.baseURL + "/" + FileName(pnr)
}

// Render persists the ticket document and returns its public URL. The
// document is immutable once written.
func (r *Renderer) Render(booking *domain.Booking, flight *domain.Flight) (string, error) {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTicketRender, err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 22)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(0, 12, "WELCOME TO AIRLINES", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, "Your official electronic flight ticket.", "", 1, "C", false, 0, "")
	pdf.Ln(4)
	rule(pdf)
	pdf.Ln(6)

	section(pdf, "Passenger Details")
	line(pdf, "Passenger Name", booking.PassengerName)
	line(pdf, "Date of Birth", booking.DateOfBirth.Format("02 Jan 2006"))
	line(pdf, "PNR", booking.PNR)
	pdf.Ln(4)

	section(pdf, "Flight Details")
	line(pdf, "Airline", flight.Airline)
	line(pdf, "Flight Number", strconv.FormatInt(flight.ID, 10))
	line(pdf, "From", flight.DepartureCity)
	line(pdf, "To", flight.ArrivalCity)
	line(pdf, "Departure Time", flight.DepartureTime.Format("02 Jan 2006 15:04"))
	line(pdf, "Arrival Time", flight.ArrivalTime.Format("02 Jan 2006 15:04"))
	pdf.Ln(4)

	section(pdf, "Payment Summary")
	line(pdf, "Ticket Fare", "Rs. "+strconv.FormatInt(booking.AmountPaidCents, 10))
	line(pdf, "Payment Status", "CONFIRMED")
	pdf.Ln(8)

	rule(pdf)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 10)
	for _, adv := range advisories {
		pdf.CellFormat(0, 6, "- "+adv, "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
	pdf.SetTextColor(128, 128, 128)
	pdf.CellFormat(0, 6, "Thank you for choosing Airlines. Have a pleasant journey!", "", 1, "C", false, 0, "")

	path := filepath.Join(r.dir, FileName(booking.PNR))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrTicketRender, err)
	}
	return r.URL(booking.PNR), nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "BU", 14)
	pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.Ln(1)
}

func line(pdf *gofpdf.Fpdf, label, value string) {
	pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, ": "+value, "", 1, "L", false, 0, "")
}

func rule(pdf *gofpdf.Fpdf) {
	x, y := pdf.GetX(), pdf.GetY()
	pdf.Line(x, y, 200, y)
}
