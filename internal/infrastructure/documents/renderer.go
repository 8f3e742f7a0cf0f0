package documents

import (
	"bytes"
	"context"
	"text/template"
	"time"

	"installworks/internal/domain/entities"
	"installworks/internal/usecase/interfaces"
)

// TemplateRenderer renders quote and agreement documents as plain text from
// built-in templates. Rendering reads lifecycle facts and never mutates them.

type TemplateRenderer struct {
	quoteTmpl     *template.Template
	agreementTmpl *template.Template
}

var _ interfaces.IDocumentRenderer = (*TemplateRenderer)(nil)

const quoteTemplateText = `QUOTE {{.Quote.QuoteNumber}}
Date: {{.Date}}

To: {{.Client.Name}}
{{.Client.Address}}

Items:
{{range .Quote.Items}}  {{.Quantity}} x {{.Product}} @ {{.UnitPrice.StringFixed 2}} = {{.Total.StringFixed 2}}
{{end}}
Total: {{.Quote.Currency}} {{.Quote.Total.StringFixed 2}}
{{if .Quote.DepositRequired}}
A deposit is required before installation can be scheduled.
{{end}}{{if .Quote.ExpiresAt}}This quote is valid until {{.Quote.ExpiresAt.Format "2 January 2006"}}.
{{end}}`

const agreementTemplateText = `INSTALLATION AGREEMENT
Order: {{.Order.OrderNumber}} (quote {{.Quote.QuoteNumber}})
Date: {{.Date}}

Customer: {{.Client.Name}}
Job address: {{.Order.JobAddress}}

Contract total: {{.Order.Currency}} {{.Order.Total.StringFixed 2}}
{{if .Order.Deposit.IsPositive}}Deposit: {{.Order.Currency}} {{.Order.Deposit.StringFixed 2}}
{{end}}Paid to date: {{.Order.Currency}} {{.Order.AmountPaid.StringFixed 2}}

By signing, the customer agrees to the scope of work listed on the quote and
to the payment terms above.
`

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{
		quoteTmpl:     template.Must(template.New("quote").Parse(quoteTemplateText)),
		agreementTmpl: template.Must(template.New("agreement").Parse(agreementTemplateText)),
	}
}

func (r *TemplateRenderer) RenderQuote(_ context.Context, q entities.Quote, c entities.Client) ([]byte, error) {
	var buf bytes.Buffer
	err := r.quoteTmpl.Execute(&buf, map[string]any{
		"Quote":  q,
		"Client": c,
		"Date":   time.Now().UTC().Format("2 January 2006"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *TemplateRenderer) RenderAgreement(_ context.Context, o entities.Order, q entities.Quote, c entities.Client) ([]byte, error) {
	var buf bytes.Buffer
	err := r.agreementTmpl.Execute(&buf, map[string]any{
		"Order":  o,
		"Quote":  q,
		"Client": c,
		"Date":   time.Now().UTC().Format("2 January 2006"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
