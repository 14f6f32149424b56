// SPDX-License-Identifier: ISC
// Copyright (c) 2024-2026 demAI Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package tokens

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// FormatUnits - fixed point rendering of a raw amount
//
// always has a fractional part: 1500000 with 6 decimals is "1.5",
// 1000000 is "1.0"
func FormatUnits(value *big.Int, decimals uint8) string {
	if nil == value {
		value = new(big.Int)
	}

	sign := ""
	v := new(big.Int).Set(value)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}

	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	integer, fraction := new(big.Int).QuoRem(v, unit, new(big.Int))

	f := ""
	if decimals > 0 {
		f = fraction.String()
		f = strings.Repeat("0", int(decimals)-len(f)) + f
		f = strings.TrimRight(f, "0")
	}
	if "" == f {
		f = "0"
	}
	return sign + integer.String() + "." + f
}

var compactUnits = []struct {
	size   float64
	suffix string
}{
	{1e12, "T"},
	{1e9, "B"},
	{1e6, "M"},
}

// FormatBalance - display form of a decimal string
//
//	zero or unparseable  "0"
//	>= 1,000,000         compact, at most two decimals: "1.5M"
//	>= 1,000             thousands separators, decimals kept
//	otherwise            trailing zeros removed
func FormatBalance(balance string) string {
	num, err := strconv.ParseFloat(strings.TrimSpace(balance), 64)
	if nil != err || 0 == num || math.IsNaN(num) {
		return "0"
	}

	if num >= 1e6 {
		return compact(num)
	}

	if num >= 1000 {
		if num == math.Trunc(num) {
			return groupThousands(strconv.FormatFloat(num, 'f', 0, 64))
		}
		s := strconv.FormatFloat(num, 'f', -1, 64)
		parts := strings.SplitN(s, ".", 2)
		return groupThousands(parts[0]) + "." + parts[1]
	}

	if strings.Contains(balance, ".") {
		s := strings.TrimRight(balance, "0")
		s = strings.TrimSuffix(s, ".")
		if "" == s {
			return "0"
		}
		return s
	}
	return balance
}

func compact(num float64) string {
	for i, u := range compactUnits {
		if num < u.size {
			continue
		}
		scaled := math.Round(num/u.size*100) / 100
		// rounding may carry into the next unit: 999.999M is 1B
		if scaled >= 1000 && i > 0 {
			next := compactUnits[i-1]
			scaled = math.Round(num/next.size*100) / 100
			u = next
		}
		return strconv.FormatFloat(scaled, 'f', -1, 64) + u.suffix
	}
	return strconv.FormatFloat(num, 'f', -1, 64)
}

func groupThousands(digits string) string {
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	n := len(digits)
	if n <= 3 {
		return sign + digits
	}

	var b strings.Builder
	head := n % 3
	if 0 == head {
		head = 3
	}
	b.WriteString(digits[:head])
	for i := head; i < n; i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
