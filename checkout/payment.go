package checkout

import (
	"fmt"
	"strings"
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodTelebirr Method = "telebirr"
	MethodBank     Method = "bank"
)

// Field names a form input a payment method makes mandatory.
type Field string

const (
	FieldTelebirrPhone Field = "telebirr_phone"
	FieldBankCode      Field = "bank_code"
	FieldAccountNumber Field = "account_number"
)

const phoneDigits = 10

type Bank struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var banks = []Bank{
	{Code: "cbe", Name: "Commercial Bank of Ethiopia"},
	{Code: "awash", Name: "Awash Bank"},
	{Code: "abyssinia", Name: "Bank of Abyssinia"},
	{Code: "dashen", Name: "Dashen Bank"},
	{Code: "nib", Name: "NIB Bank"},
}

func Banks() []Bank {
	out := make([]Bank, len(banks))
	copy(out, banks)
	return out
}

// BankName returns the display name for a bank code.
func BankName(code string) (string, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, b := range banks {
		if b.Code == code {
			return b.Name, true
		}
	}
	return "", false
}

// Payment is what the user entered on the payment form.
type Payment struct {
	Method        Method `json:"method"`
	Phone         string `json:"telebirr_phone,omitempty"`
	BankCode      string `json:"bank_code,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// ParseMethod reads a payment method tag. A bare bank code selects a bank
// transfer to that bank and is returned as bankCode.
func ParseMethod(tag string) (method Method, bankCode string, err error) {
	t := strings.ToLower(strings.TrimSpace(tag))
	switch m := Method(t); m {
	case MethodCash, MethodTelebirr, MethodBank:
		return m, "", nil
	}
	if _, ok := BankName(t); ok {
		return MethodBank, t, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, tag)
}

// Requirements lists the extra fields a method needs. For bank transfers the
// bank's display name is filled in from its code.
type Requirements struct {
	Method   Method  `json:"method"`
	Required []Field `json:"required"`
	BankName string  `json:"bank_name,omitempty"`
}

func Require(p Payment) (Requirements, error) {
	switch p.Method {
	case MethodCash:
		return Requirements{Method: MethodCash, Required: []Field{}}, nil
	case MethodTelebirr:
		return Requirements{Method: MethodTelebirr, Required: []Field{FieldTelebirrPhone}}, nil
	case MethodBank:
		r := Requirements{Method: MethodBank, Required: []Field{FieldBankCode, FieldAccountNumber}}
		if p.BankCode == "" {
			return r, nil
		}
		name, ok := BankName(p.BankCode)
		if !ok {
			return r, fmt.Errorf("%w: %q", ErrUnknownBank, p.BankCode)
		}
		r.BankName = name
		return r, nil
	}
	return Requirements{}, fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, p.Method)
}

// NormalizePhone keeps the first ten digits of raw, the way the phone input
// is cleaned while the user types.
func NormalizePhone(raw string) string {
	d := digits(raw)
	if len(d) > phoneDigits {
		d = d[:phoneDigits]
	}
	return d
}

func digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidateForSubmission checks the delivery address and the fields p's method
// requires, and returns the payment descriptor shown to the user.
func ValidateForSubmission(p Payment, address string) (string, error) {
	if strings.TrimSpace(address) == "" {
		return "", ErrMissingAddress
	}
	switch p.Method {
	case MethodCash:
		return "Cash on Delivery", nil
	case MethodTelebirr:
		phone := digits(p.Phone)
		if len(phone) != phoneDigits {
			return "", ErrInvalidPhone
		}
		return "Telebirr: " + phone, nil
	case MethodBank:
		account := strings.TrimSpace(p.AccountNumber)
		if account == "" {
			return "", ErrMissingAccount
		}
		name, ok := BankName(p.BankCode)
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrUnknownBank, p.BankCode)
		}
		return name + ": " + account, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, p.Method)
}
