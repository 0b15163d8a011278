package catalog

import (
	"bytes"
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

var digitsOnly = regexp.MustCompile(`^\d+$`)

// Price accepts both numbers and strings. Strings are normalized with
// NormalizePrice.
type Price float64

func (p *Price) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}

	var s string

	if err := json.Unmarshal(data, &s); err == nil {
		*p = Price(NormalizePrice(s))
		return nil
	}

	var f float64

	if err := json.Unmarshal(data, &f); err != nil {
		return errors.Wrap(err, "price must be a number or a string")
	}

	*p = Price(f)
	return nil
}

// Float returns the price as a float64.
func (p Price) Float() float64 {
	return float64(p)
}

// NormalizePrice converts a backend price string into a number:
// "23450" is in cents and yields 234.5, "1.234,50" yields 1234.5.
// Invalid input yields 0.
func NormalizePrice(s string) float64 {
	raw := strings.TrimSpace(s)

	if digitsOnly.MatchString(raw) {
		n, err := strconv.ParseFloat(raw, 64)

		if err != nil {
			return 0
		}

		return n / 100
	}

	cleaned := strings.Replace(strings.ReplaceAll(raw, ".", ""), ",", ".", 1)

	if cleaned == "" {
		return 0
	}

	n, err := strconv.ParseFloat(cleaned, 64)

	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return 0
	}

	return n
}

// FormatBRL formats the amount in Brazilian reais: R$ 1.234,50
func FormatBRL(n float64) string {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		n = 0
	}

	sign := ""
	cents := int64(math.Round(math.Abs(n) * 100))

	if n < 0 && cents > 0 {
		sign = "-"
	}

	integer := strconv.FormatInt(cents/100, 10)
	groups := make([]string, 0, len(integer)/3+1)

	for len(integer) > 3 {
		groups = append([]string{integer[len(integer)-3:]}, groups...)
		integer = integer[:len(integer)-3]
	}

	groups = append([]string{integer}, groups...)

	return sign + "R$ " + strings.Join(groups, ".") + "," + leftPad(strconv.FormatInt(cents%100, 10))
}

func leftPad(s string) string {
	if len(s) < 2 {
		return "0" + s
	}

	return s
}
