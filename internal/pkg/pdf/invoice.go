// internal/pkg/pdf/invoice.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/saree-storefront/internal/config"
	"github.com/your-org/saree-storefront/internal/domain/order"
)

// Service handles invoice PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{config: cfg}
}

// InvoiceData is the template payload
type InvoiceData struct {
	InvoiceNumber string
	InvoiceDate   string
	Order         *order.Order
	Company       CompanyInfo
}

// CompanyInfo holds seller details rendered on the invoice
type CompanyInfo struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// GenerateInvoice generates a PDF invoice for an order
func (s *Service) GenerateInvoice(ord *order.Order) (*bytes.Buffer, error) {
	data := InvoiceData{
		InvoiceNumber: fmt.Sprintf("INV-%s", ord.OrderNumber),
		InvoiceDate:   time.Now().Format("January 2, 2006"),
		Order:         ord,
		Company: CompanyInfo{
			Name:    s.config.App.CompanyName,
			Address: s.config.App.CompanyAddress,
			Phone:   s.config.App.CompanyPhone,
			Email:   s.config.App.CompanyEmail,
		},
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

func (s *Service) generateHTML(data InvoiceData) (string, error) {
	tmpl := template.Must(template.New("invoice").Funcs(template.FuncMap{
		"rupees": formatRupees,
		"lineTotal": func(item order.Item) string {
			return formatRupees(item.Price * int64(item.Quantity))
		},
	}).Parse(invoiceTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatRupees renders paise as a rupee amount for the printed invoice
func formatRupees(paise int64) string {
	return fmt.Sprintf("₹%d.%02d", paise/100, paise%100)
}

const invoiceTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; font-size: 12px; }
  h1 { font-size: 20px; margin-bottom: 0; }
  .meta { color: #666; margin-bottom: 24px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { text-align: left; padding: 6px 8px; border-bottom: 1px solid #ddd; }
  th { background: #f5f5f5; }
  .totals td { border: none; padding: 3px 8px; }
  .totals .grand { font-weight: bold; border-top: 2px solid #222; }
  .right { text-align: right; }
</style>
</head>
<body>
  <h1>{{.Company.Name}}</h1>
  <div class="meta">
    {{.Company.Address}}<br>
    {{.Company.Phone}} · {{.Company.Email}}
  </div>

  <p>
    <strong>Invoice {{.InvoiceNumber}}</strong><br>
    Date: {{.InvoiceDate}}<br>
    Order: {{.Order.OrderNumber}}<br>
    Billed to: {{if .Order.CustomerName}}{{.Order.CustomerName}} &lt;{{.Order.CustomerEmail}}&gt;{{else}}{{.Order.CustomerEmail}}{{end}}
  </p>

  <table>
    <tr><th>Item</th><th>Color</th><th>Size</th><th class="right">Qty</th><th class="right">Unit Price</th><th class="right">Total</th></tr>
    {{range .Order.Items}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{.Color}}</td>
      <td>{{.Size}}</td>
      <td class="right">{{.Quantity}}</td>
      <td class="right">{{rupees .Price}}</td>
      <td class="right">{{lineTotal .}}</td>
    </tr>
    {{end}}
  </table>

  <table class="totals">
    <tr><td class="right">Subtotal</td><td class="right">{{rupees .Order.Subtotal}}</td></tr>
    <tr><td class="right">Shipping</td><td class="right">{{rupees .Order.ShippingCost}}</td></tr>
    <tr><td class="right">Tax</td><td class="right">{{rupees .Order.TaxAmount}}</td></tr>
    <tr class="grand"><td class="right grand">Total</td><td class="right grand">{{rupees .Order.TotalAmount}}</td></tr>
  </table>
</body>
</html>`
