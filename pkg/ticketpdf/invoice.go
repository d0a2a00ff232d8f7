package ticketpdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Invoice is the view rendered onto the ticket PDF and reused for the
// confirmation email.
type Invoice struct {
	Number    string
	Client    Client
	Items     []Item
	Screening ScreeningInfo
	Seats     []int
}

type Client struct {
	Name  string
	Email string
}

// Item is one priced line, grouped by seat type. Amount is the unit price
// in minor currency units (grosze).
type Item struct {
	Name        string
	Description string
	Quantity    int
	Amount      int
}

type ScreeningInfo struct {
	Movie                  string
	Date                   time.Time
	Duration               int
	AdvertisementsDuration int
	Room                   string
}

// Total returns the invoice total in minor units.
func (i *Invoice) Total() int {
	total := 0
	for _, item := range i.Items {
		total += item.Quantity * item.Amount
	}
	return total
}

// Renderer builds A4 invoice PDFs.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render produces the PDF bytes for one invoice.
func (r *Renderer) Render(invoice *Invoice) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("cp1250")
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(17, 17, 17)
	pdf.Cell(100, 10, "Screenix")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 5, "Screenix sp. z o.o.", "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, "ul. Drewnowska 58", "", 1, "R", false, 0, "")
	pdf.CellFormat(0, 5, tr("Łódź, 91-002"), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	// Customer information
	pdf.SetTextColor(68, 68, 68)
	pdf.SetFont("Helvetica", "", 20)
	pdf.Cell(0, 10, "Faktura")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	writeRow := func(label, value string, bold bool) {
		pdf.Cell(45, 6, tr(label))
		if bold {
			pdf.SetFont("Helvetica", "B", 11)
		}
		pdf.Cell(0, 6, tr(value))
		pdf.SetFont("Helvetica", "", 11)
		pdf.Ln(6)
	}
	writeRow("ID:", invoice.Number, false)
	writeRow("Klient:", invoice.Client.Name, true)
	writeRow("E-mail:", invoice.Client.Email, false)
	writeRow("Data:", time.Now().Format("2006-01-02"), false)
	pdf.Ln(8)

	// Items table
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(50, 7, "Produkt")
	pdf.Cell(55, 7, "Opis")
	pdf.Cell(35, 7, "Cena jedn.")
	pdf.Cell(15, 7, "Ile")
	pdf.CellFormat(0, 7, "Razem", "", 1, "R", false, 0, "")
	pdf.SetDrawColor(170, 170, 170)
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.SetFont("Helvetica", "", 11)
	for _, item := range invoice.Items {
		pdf.Cell(50, 7, tr(item.Name))
		pdf.Cell(55, 7, tr(item.Description))
		pdf.Cell(35, 7, formatAmount(item.Amount))
		pdf.Cell(15, 7, fmt.Sprintf("%d", item.Quantity))
		pdf.CellFormat(0, 7, formatAmount(item.Quantity*item.Amount), "", 1, "R", false, 0, "")
	}
	pdf.Line(10, pdf.GetY(), 200, pdf.GetY())
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(155, 8, "Suma")
	pdf.CellFormat(0, 8, formatAmount(invoice.Total()), "", 1, "R", false, 0, "")
	pdf.Ln(10)

	// Screening information
	pdf.SetFont("Helvetica", "", 20)
	pdf.Cell(0, 10, "Informacje o seansie")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	end := invoice.Screening.Date.Add(time.Duration(invoice.Screening.Duration) * time.Minute)
	writeRow("Film:", invoice.Screening.Movie, true)
	writeRow("Data:", invoice.Screening.Date.Format("2006-01-02"), false)
	writeRow("Czas rozpoczęcia:", invoice.Screening.Date.Format("15:04"), false)
	writeRow("Czas zakończenia:", end.Format("15:04"), false)
	writeRow("Długość reklam:", fmt.Sprintf("%d min", invoice.Screening.AdvertisementsDuration), false)
	writeRow("Miejsca:", joinSeats(invoice.Seats), false)
	writeRow("Sala:", invoice.Screening.Room, false)
	pdf.Ln(10)

	// Footer
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, tr("Dziękujemy za zakup biletów w Kinie Screenix."), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice %s: %w", invoice.Number, err)
	}
	return buf.Bytes(), nil
}

func formatAmount(minor int) string {
	return fmt.Sprintf("%.2f zł", float64(minor)/100)
}

func joinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, seat := range seats {
		parts[i] = fmt.Sprintf("%d", seat)
	}
	return strings.Join(parts, ", ")
}
