package currency

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/auditdesk/auditdesk/internal/apperror"
)

// CurrencyService exposes the static currency table plus conversion and
// display formatting. It is a pure lookup service: no state, no storage.
type CurrencyService interface {
	// All returns every supported currency in a fixed order.
	All() []Info

	// Get returns the info for a code, or BadRequest for an unknown code.
	Get(code Code) (Info, error)

	// Convert converts amount between two supported currencies through the
	// USD base, rounded to 2 decimal places. Converting a currency to
	// itself returns the amount unchanged.
	Convert(amount float64, from, to Code) (float64, error)

	// Format renders an amount as "<symbol> <grouped amount>" with en-US
	// digit grouping. NGN renders with 0 fraction digits, every other
	// currency with 2. That exception is fixed policy, not configurable.
	Format(amount float64, code Code) (string, error)
}

// currencyService implements CurrencyService.
type currencyService struct {
	printer *message.Printer
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService() CurrencyService {
	return &currencyService{
		printer: message.NewPrinter(language.AmericanEnglish),
	}
}

// All returns the currency table in enumeration order.
func (s *currencyService) All() []Info {
	out := make([]Info, 0, len(codes))
	for _, c := range codes {
		out = append(out, table[c])
	}
	return out
}

// Get returns the info for a supported code.
func (s *currencyService) Get(code Code) (Info, error) {
	info, ok := table[code]
	if !ok {
		return Info{}, apperror.NewBadRequest(fmt.Sprintf("unsupported currency %q", code))
	}
	return info, nil
}

// Convert divides by the source rate to reach the USD base, multiplies by
// the target rate, and rounds half away from zero to 2 decimal places.
func (s *currencyService) Convert(amount float64, from, to Code) (float64, error) {
	fromInfo, err := s.Get(from)
	if err != nil {
		return 0, err
	}
	toInfo, err := s.Get(to)
	if err != nil {
		return 0, err
	}

	if from == to {
		return amount, nil
	}

	converted := amount / fromInfo.Rate * toInfo.Rate
	return math.Round(converted*100) / 100, nil
}

// Format renders the amount with the currency's symbol and en-US grouping.
func (s *currencyService) Format(amount float64, code Code) (string, error) {
	info, err := s.Get(code)
	if err != nil {
		return "", err
	}

	digits := 2
	if code == NGN {
		digits = 0
	}

	formatted := s.printer.Sprint(number.Decimal(amount,
		number.MinFractionDigits(digits),
		number.MaxFractionDigits(digits),
	))
	return info.Symbol + " " + formatted, nil
}
