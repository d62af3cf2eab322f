// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package trig

import (
	"math"
	"testing"

	"github.com/consensys/go-poisson/pkg/series"
	"github.com/consensys/go-poisson/pkg/symbol"
	"github.com/stretchr/testify/require"
)

var xyz = symbol.NewSet("x", "y", "z")

func Test_Key_01(t *testing.T) {
	checkCanonical(t, Cosine(-1, 2, 0), Cosine(1, -2, 0), series.Positive)
	checkCanonical(t, Sine(-1, 2, 0), Sine(1, -2, 0), series.Negative)
	checkCanonical(t, Sine(0, 0, 3), Sine(0, 0, 3), series.Positive)
	checkCanonical(t, Cosine(0, 0, 0), Cosine(0, 0, 0), series.Positive)
	checkCanonical(t, Sine(0, 0, 0), Sine(0, 0, 0), series.Vanish)
}

func Test_Key_02(t *testing.T) {
	require.Equal(t, "cos(2*x-y)", Cosine(2, -1, 0).Format(xyz))
	require.Equal(t, "sin(-x+3*z)", Sine(-1, 0, 3).Format(xyz))
	require.Equal(t, "cos(0)", Cosine(0, 0, 0).Format(xyz))
	require.True(t, Cosine(0, 0, 0).IsUnit())
	require.False(t, Sine(0, 0, 0).IsUnit())
}

func Test_Key_03(t *testing.T) {
	key := Sine(2, -3, 0)
	//
	require.Equal(t, int64(5), key.HDegree())
	require.Equal(t, int64(3), key.PartialHDegree(xyz.Mask([]string{"y", "z"})))
	require.Equal(t, int64(0), key.PartialHDegree(xyz.Mask([]string{"z"})))
}

func Test_Key_04(t *testing.T) {
	// cos(x)*cos(y) = [cos(x-y) + cos(x+y)]/2
	checkProducts(t, Cosine(1, 0, 0).Multiply(Cosine(0, 1, 0)), "1/2*cos[1 -1 0]", "1/2*cos[1 1 0]")
	// sin(x)*sin(y) = [cos(x-y) - cos(x+y)]/2
	checkProducts(t, Sine(1, 0, 0).Multiply(Sine(0, 1, 0)), "1/2*cos[1 -1 0]", "-1/2*cos[1 1 0]")
	// sin(x)*cos(y) = [sin(x+y) + sin(x-y)]/2
	checkProducts(t, Sine(1, 0, 0).Multiply(Cosine(0, 1, 0)), "1/2*sin[1 1 0]", "1/2*sin[1 -1 0]")
	// cos(x)*sin(y) = [sin(x+y) - sin(x-y)]/2
	checkProducts(t, Cosine(1, 0, 0).Multiply(Sine(0, 1, 0)), "1/2*sin[1 1 0]", "-1/2*sin[1 -1 0]")
	// Unit keys are the identity
	checkProducts(t, Cosine(0, 0, 0).Multiply(Sine(0, 1, 0)), "1*sin[0 1 0]")
}

func Test_Key_05(t *testing.T) {
	n, parts := Cosine(2, 1, 0).Subs(0)
	//
	require.Equal(t, int64(2), n)
	require.Equal(t, Component{false, false, Cosine(1, 0)}, parts[0])
	require.Equal(t, Component{true, true, Sine(1, 0)}, parts[1])
	//
	n, parts = Sine(0, 1, 3).Subs(1)
	//
	require.Equal(t, int64(1), n)
	require.Equal(t, Component{true, false, Cosine(0, 3)}, parts[0])
	require.Equal(t, Component{false, false, Sine(0, 3)}, parts[1])
}

func Test_Key_06(t *testing.T) {
	n, key := Cosine(3, 1, 0).Integrate(0)
	require.Equal(t, int64(3), n)
	require.True(t, key.Equals(Sine(3, 1, 0)))
	//
	n, key = Sine(3, 1, 0).Integrate(1)
	require.Equal(t, int64(-1), n)
	require.True(t, key.Equals(Cosine(3, 1, 0)))
	//
	n, _ = Sine(3, 1, 0).Integrate(2)
	require.Equal(t, int64(0), n)
}

func Test_Key_07(t *testing.T) {
	n, key := Cosine(3, 1, 0).Partial(0)
	require.Equal(t, int64(-3), n)
	require.True(t, key.Equals(Sine(3, 1, 0)))
	//
	n, key = Sine(3, 1, 0).Partial(1)
	require.Equal(t, int64(1), n)
	require.True(t, key.Equals(Cosine(3, 1, 0)))
}

func Test_Key_08(t *testing.T) {
	key := Cosine(1, 2).Extend(symbol.NewSet("x", "z"), xyz)
	//
	require.True(t, key.Equals(Cosine(1, 0, 2)))
	require.Equal(t, Cosine(1, 0, 2).Hash(), key.Hash())
	require.NotEqual(t, Sine(1, 0, 2).Hash(), key.Hash())
	require.Equal(t, -1, Cosine(1, 0, 2).Cmp(Sine(1, 0, 2)))
	require.Equal(t, 1, Cosine(1, 0, 2).Cmp(Cosine(0, 5, 5)))
}

func Test_Key_09(t *testing.T) {
	require.Panics(t, func() {
		Cosine(math.MaxInt64).Multiply(Cosine(1))
	})
	require.Panics(t, func() {
		Sine(math.MinInt64).Canonical()
	})
}

func Test_Key_10(t *testing.T) {
	key := Sine(3, -1)
	ms := key.Multipliers()
	// Multipliers are copied
	ms[0] = 7
	//
	require.Equal(t, []int64{3, -1}, key.Multipliers())
	require.Equal(t, int64(-1), key.Multiplier(1))
	require.True(t, key.SetFlavour(true).Equals(Cosine(3, -1)))
	require.False(t, key.Flavour())
}

// ===================================================================
// Test Helpers
// ===================================================================

func checkCanonical(t *testing.T, key Key, expected Key, sign series.Sign) {
	t.Helper()
	//
	actual, s := key.Canonical()
	//
	if !actual.Equals(expected) || s != sign {
		t.Errorf("expected %s (%d), got %s (%d)", expected.String(), sign, actual.String(), s)
	}
}

func checkProducts(t *testing.T, products []series.Product[Key], expected ...string) {
	t.Helper()
	//
	actual := make([]string, len(products))
	//
	for i, p := range products {
		actual[i] = p.Factor.RatString() + "*" + p.Key.String()
	}
	//
	require.Equal(t, expected, actual)
}
