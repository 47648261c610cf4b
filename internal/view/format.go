package view

import (
	"math/big"
	"strconv"
	"strings"
)

const mutezPerTez = 1_000_000

// FormatMutez renders an amount of mutez as tez with up to six decimals,
// trailing zeros trimmed.
func FormatMutez(amount int64) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	whole := amount / mutezPerTez
	frac := amount % mutezPerTez
	if frac == 0 {
		return sign + strconv.FormatInt(whole, 10) + " tez"
	}

	fracStr := strings.TrimRight(padLeft(strconv.FormatInt(frac, 10), 6), "0")
	return sign + strconv.FormatInt(whole, 10) + "." + fracStr + " tez"
}

// FormatTokenBalance renders a raw integer balance string at the given
// number of decimals. Display-only fixed point: the raw string is returned
// unchanged when it does not parse as an integer.
func FormatTokenBalance(raw string, decimals string) string {
	d, err := strconv.Atoi(decimals)
	if err != nil || d <= 0 {
		return raw
	}

	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return raw
	}

	digits := n.String()
	neg := strings.HasPrefix(digits, "-")
	digits = strings.TrimPrefix(digits, "-")
	if len(digits) <= d {
		digits = padLeft(digits, d+1)
	}

	out := digits[:len(digits)-d] + "." + digits[len(digits)-d:]
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")
	if neg {
		out = "-" + out
	}
	return out
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
