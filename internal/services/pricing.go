package services

// FixedVoucherDiscount is the flat IDR discount any non-empty voucher code
// earns. Codes are not validated server-side in this flow.
const FixedVoucherDiscount int64 = 200_000

// Quote is the payable total derived from the package unit price, the pax
// count and the optional voucher. Recomputed on every pax or voucher change.
type Quote struct {
	UnitPrice      int64 `json:"unit_price"`
	Pax            int   `json:"pax"`
	Subtotal       int64 `json:"subtotal"`
	VoucherApplied bool  `json:"voucher_applied"`
	Discount       int64 `json:"discount"`
	Total          int64 `json:"total"`
}

// ComputeQuote applies the flat voucher discount at most once, regardless of
// pax or voucher text. The total never goes negative.
func ComputeQuote(unitPrice int64, pax int, voucherCode string) Quote {
	q := Quote{
		UnitPrice: unitPrice,
		Pax:       pax,
		Subtotal:  unitPrice * int64(pax),
	}

	if voucherCode != "" {
		q.VoucherApplied = true
		q.Discount = FixedVoucherDiscount
		if q.Discount > q.Subtotal {
			q.Discount = q.Subtotal
		}
	}

	q.Total = q.Subtotal - q.Discount
	return q
}
