// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package result

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResult_OkCarriesValueAndNoError(t *testing.T) {
	require := require.New(t)

	value, err := Ok(42).Get()
	require.NoError(err)
	require.Equal(42, value)
}

func TestResult_ErrCarriesErrorAndZeroValue(t *testing.T) {
	require := require.New(t)

	injected := fmt.Errorf("injected")
	value, err := Err[string](injected).Get()
	require.ErrorIs(err, injected)
	require.Zero(value)
}
