// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/motoparts-backend/internal/config"
	"github.com/your-org/motoparts-backend/internal/domain/order"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReceipt generates a PDF sales receipt for an order
func (s *Service) GenerateReceipt(o *order.Order) (*bytes.Buffer, error) {
	data := ReceiptData{
		ReceiptNumber: fmt.Sprintf("RCPT-%s", o.OrderNumber),
		ReceiptDate:   time.Now().Format("January 2, 2006"),
		Order:         o,
		Due:           o.DueAmount().StringFixed(2),
		Company: CompanyInfo{
			Name:    s.config.App.CompanyName,
			Address: s.config.App.CompanyAddress,
			Phone:   s.config.App.CompanyPhone,
			Email:   s.config.App.CompanyEmail,
		},
		Currency: s.config.App.Currency,
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
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReceiptData) (string, error) {
	tmpl := template.Must(template.New("receipt").Parse(receiptTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReceiptData represents the data passed to the receipt template
type ReceiptData struct {
	ReceiptNumber string       `json:"receipt_number"`
	ReceiptDate   string       `json:"receipt_date"`
	Order         *order.Order `json:"order"`
	Due           string       `json:"due"`
	Company       CompanyInfo  `json:"company"`
	Currency      string       `json:"currency"`
}

// CompanyInfo represents shop information printed on the receipt
type CompanyInfo struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// Receipt HTML template
const receiptTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Receipt {{.ReceiptNumber}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 0;
            padding: 20px;
            color: #333;
        }
        .header {
            display: flex;
            justify-content: space-between;
            border-bottom: 2px solid #333;
            padding-bottom: 12px;
            margin-bottom: 20px;
        }
        .company h1 {
            margin: 0 0 4px 0;
            font-size: 20px;
        }
        .company p {
            margin: 2px 0;
            font-size: 12px;
        }
        .meta {
            text-align: right;
            font-size: 12px;
        }
        .customer {
            margin-bottom: 20px;
            font-size: 13px;
        }
        table.items {
            width: 100%;
            border-collapse: collapse;
            font-size: 12px;
        }
        table.items th, table.items td {
            border: 1px solid #ccc;
            padding: 6px 8px;
        }
        table.items th {
            background: #f2f2f2;
            text-align: left;
        }
        td.num, th.num {
            text-align: right;
        }
        .totals {
            width: 40%;
            margin-left: auto;
            margin-top: 16px;
            font-size: 13px;
        }
        .totals td {
            padding: 3px 8px;
        }
        .totals .grand {
            font-weight: bold;
            border-top: 1px solid #333;
        }
        .footer {
            margin-top: 32px;
            font-size: 11px;
            color: #777;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="header">
        <div class="company">
            <h1>{{.Company.Name}}</h1>
            <p>{{.Company.Address}}</p>
            <p>{{.Company.Phone}} {{.Company.Email}}</p>
        </div>
        <div class="meta">
            <p><strong>{{.ReceiptNumber}}</strong></p>
            <p>{{.ReceiptDate}}</p>
            <p>Order: {{.Order.OrderNumber}}</p>
        </div>
    </div>

    <div class="customer">
        <strong>Billed to:</strong> {{.Order.CustomerName}}<br>
        {{if .Order.CustomerPhone}}{{.Order.CustomerPhone}}<br>{{end}}
        {{if .Order.CustomerAddress}}{{.Order.CustomerAddress}}{{end}}
    </div>

    <table class="items">
        <thead>
            <tr>
                <th>Part No</th>
                <th>Item</th>
                <th class="num">Qty</th>
                <th class="num">Unit Price ({{.Currency}})</th>
                <th class="num">Total ({{.Currency}})</th>
            </tr>
        </thead>
        <tbody>
            {{range .Order.Items}}
            <tr>
                <td>{{.PartNo}}</td>
                <td>{{.Name}}</td>
                <td class="num">{{.Quantity}}</td>
                <td class="num">{{.UnitPrice.StringFixed 2}}</td>
                <td class="num">{{.TotalPrice.StringFixed 2}}</td>
            </tr>
            {{end}}
        </tbody>
    </table>

    <table class="totals">
        <tr><td>Subtotal</td><td class="num">{{.Order.SubtotalAmount.StringFixed 2}}</td></tr>
        <tr><td>Discount</td><td class="num">{{.Order.DiscountAmount.StringFixed 2}}</td></tr>
        <tr class="grand"><td>Total</td><td class="num">{{.Order.TotalAmount.StringFixed 2}}</td></tr>
        <tr><td>Paid</td><td class="num">{{.Order.PaidAmount.StringFixed 2}}</td></tr>
        <tr><td>Due</td><td class="num">{{.Due}}</td></tr>
    </table>

    <div class="footer">
        Thank you for your business. Parts once sold are only returnable in original condition.
    </div>
</body>
</html>
`
