package usecase

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"unicode"

	"consolidador/internal/domain/entities"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrImportMissingColumns = errors.New("csv is missing required columns")
	ErrImportEmpty          = errors.New("csv has no data rows")
)

// IOrderImportUseCase turns a CSV export from the storefront into orders.
type IOrderImportUseCase interface {
	ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error)
}

type ImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors"`
}

type orderAdder interface {
	AddOrder(ctx context.Context, o entities.Order) (entities.Order, error)
}

type OrderImportUseCase struct {
	orders orderAdder
}

var _ IOrderImportUseCase = (*OrderImportUseCase)(nil)

func NewOrderImportUseCase(orders orderAdder) *OrderImportUseCase {
	return &OrderImportUseCase{orders: orders}
}

const (
	colID            = "id"
	colCustomerName  = "customerName"
	colProductName   = "productName"
	colSize          = "size"
	colSKU           = "sku"
	colShippingType  = "shippingType"
	colPaymentStatus = "paymentStatus"
)

// headerSynonyms is checked in this order; a header maps to the first field
// that lists it.
var headerSynonyms = []struct {
	field string
	names []string
}{
	{colID, []string{"id", "order_id", "pedido", "numero", "number"}},
	{colCustomerName, []string{"customer", "cliente", "customer_name", "nome_cliente", "name"}},
	{colProductName, []string{"product", "produto", "product_name", "nome_produto", "item"}},
	{colSize, []string{"size", "tamanho", "tam"}},
	{colSKU, []string{"sku", "codigo", "code"}},
	{colShippingType, []string{"shipping", "frete", "shipping_type", "tipo_frete", "delivery"}},
	{colPaymentStatus, []string{"payment", "pagamento", "payment_status", "status_pagamento", "status"}},
}

var requiredColumns = []string{colID, colCustomerName, colProductName}

// ImportCSV adds one order per data row. Rows that fail validation or repeat
// an existing id are skipped and reported by line; only a missing required
// column or an unreadable file fails the whole import.
func (u *OrderImportUseCase) ImportCSV(ctx context.Context, r io.Reader) (ImportResult, error) {
	result := ImportResult{Errors: []string{}}

	br := bufio.NewReader(r)
	reader := csv.NewReader(br)
	reader.Comma = sniffDelimiter(br)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, ErrImportEmpty
	}
	if err != nil {
		return result, fmt.Errorf("read csv header: %w", err)
	}
	mapping := mapColumns(header)

	var missing []string
	for _, field := range requiredColumns {
		if _, ok := mapping[field]; !ok {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		log.Printf("[import] missing columns=%v header=%v", missing, header)
		return result, fmt.Errorf("%w: %s", ErrImportMissingColumns, strings.Join(missing, ", "))
	}

	rows := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return result, fmt.Errorf("read csv: %w", err)
			}
			result.skip(perr.Line, perr.Err.Error())
			continue
		}
		rows++
		line, _ := reader.FieldPos(0)

		o := rowToOrder(record, mapping)
		if problems := validateImportedOrder(o); len(problems) > 0 {
			result.skip(line, strings.Join(problems, ", "))
			continue
		}
		if _, err := u.orders.AddOrder(ctx, o); err != nil {
			if errors.Is(err, ErrOrderAlreadyExists) {
				result.skip(line, fmt.Sprintf("order %s already exists", o.ID))
			} else {
				result.skip(line, err.Error())
			}
			continue
		}
		result.Imported++
	}

	if rows == 0 && result.Skipped == 0 {
		return result, ErrImportEmpty
	}
	log.Printf("[import] done imported=%d skipped=%d", result.Imported, result.Skipped)
	return result, nil
}

func (r *ImportResult) skip(line int, reason string) {
	r.Skipped++
	r.Errors = append(r.Errors, fmt.Sprintf("line %d: %s", line, reason))
}

// sniffDelimiter picks ';' for spreadsheets exported with a semicolon
// separator, ',' otherwise.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(4096)
	first := string(peek)
	if i := strings.IndexByte(first, '\n'); i >= 0 {
		first = first[:i]
	}
	if strings.Count(first, ";") > strings.Count(first, ",") {
		return ';'
	}
	return ','
}

func mapColumns(header []string) map[string]int {
	mapping := map[string]int{}
	for i, h := range header {
		name := foldHeader(h)
	fields:
		for _, syn := range headerSynonyms {
			for _, candidate := range syn.names {
				if name != candidate {
					continue
				}
				if _, taken := mapping[syn.field]; !taken {
					mapping[syn.field] = i
				}
				break fields
			}
		}
	}
	return mapping
}

func rowToOrder(record []string, mapping map[string]int) entities.Order {
	get := func(field string) string {
		i, ok := mapping[field]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}
	return entities.Order{
		ID:            get(colID),
		CustomerName:  get(colCustomerName),
		ProductName:   get(colProductName),
		Size:          get(colSize),
		SKU:           get(colSKU),
		ShippingType:  normalizeShippingType(get(colShippingType)),
		PaymentStatus: normalizePaymentStatus(get(colPaymentStatus)),
	}
}

func validateImportedOrder(o entities.Order) []string {
	var problems []string
	if o.ID == "" {
		problems = append(problems, "order id is required")
	}
	if o.CustomerName == "" {
		problems = append(problems, "customer name is required")
	}
	if o.ProductName == "" {
		problems = append(problems, "product name is required")
	}
	if !o.ShippingType.Valid() {
		problems = append(problems, "shipping type must be PADRAO or EXPRESSO")
	}
	if !o.PaymentStatus.Valid() {
		problems = append(problems, "payment status must be PAGO, AGUARDANDO or CANCELADO")
	}
	return problems
}

// normalizeShippingType maps free-form values by substring; anything not
// recognised is PADRAO.
func normalizeShippingType(v string) entities.ShippingType {
	s := strings.ToUpper(foldAccents(v))
	switch {
	case strings.Contains(s, "PADRAO"), strings.Contains(s, "STANDARD"):
		return entities.ShippingTypePadrao
	case strings.Contains(s, "EXPRESS"):
		return entities.ShippingTypeExpresso
	}
	return entities.ShippingTypePadrao
}

// normalizePaymentStatus maps free-form values by substring; anything not
// recognised is AGUARDANDO.
func normalizePaymentStatus(v string) entities.PaymentStatus {
	s := strings.ToUpper(foldAccents(v))
	switch {
	case strings.Contains(s, "PAGO"), strings.Contains(s, "PAID"):
		return entities.PaymentStatusPago
	case strings.Contains(s, "AGUARDANDO"), strings.Contains(s, "PENDING"):
		return entities.PaymentStatusAguardando
	case strings.Contains(s, "CANCELADO"), strings.Contains(s, "CANCELLED"), strings.Contains(s, "CANCELED"):
		return entities.PaymentStatusCancelado
	}
	return entities.PaymentStatusAguardando
}

func foldHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(foldAccents(strings.TrimPrefix(h, "\ufeff"))))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(h)
}

// foldAccents strips combining marks, so "PADRÃO" compares equal to "PADRAO".
func foldAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
