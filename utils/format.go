package utils

import (
	"math"
	"strconv"
	"strings"

	"hotelbooking/models"
)

const dateLayout = "02/01/2006"

// FormatDate định dạng ngày kiểu dd/mm/yyyy, trả về "-" nếu không có ngày
func FormatDate(t models.Instant) string {
	if !t.Valid() {
		return "-"
	}
	return t.Format(dateLayout)
}

// FormatAmount định dạng số tiền VND: 1.500.000 ₫
func FormatAmount(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + " ₫"
}
