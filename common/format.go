// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package common provides small helpers shared across the module: count
// formatting and lightweight progress logging.
package common

import (
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// FormatCount renders an integer with thousands separators, e.g. 584983
// becomes "584,983". Negative values keep their sign.
func FormatCount[I constraints.Integer](value I) string {
	negative := value < 0
	magnitude := uint64(value)
	if negative {
		// Two's complement makes this exact even for the minimum value.
		magnitude = uint64(-int64(value))
	}
	digits := strconv.FormatUint(magnitude, 10)

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
		if len(digits) > lead {
			sb.WriteByte(',')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		sb.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			sb.WriteByte(',')
		}
	}
	return sb.String()
}
