package psychrometrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 文字列から単位系を求めるテスト
func Test_UnitSystemFromString(t *testing.T) {
	u, err := UnitSystemFromString("SI")
	require.NoError(t, err)
	assert.Equal(t, UnitSystemSI, u)

	u, err = UnitSystemFromString("IP")
	require.NoError(t, err)
	assert.Equal(t, UnitSystemIP, u)

	_, err = UnitSystemFromString("CGS")
	assert.ErrorIs(t, err, ErrUnitSystem)
}

// 不明な単位系で計算器を生成できないことのテスト
func Test_NewPsychrometrics_UnknownUnits(t *testing.T) {
	_, err := NewPsychrometrics(UnitSystem("metric"))
	assert.ErrorIs(t, err, ErrUnitSystem)
}

// 収束判定値のテスト
// IPの収束判定値はSIの 9/5 倍（°R相当）
func Test_Tolerance(t *testing.T) {
	psy_si, err := NewPsychrometrics(UnitSystemSI)
	require.NoError(t, err)
	assert.InDelta(t, 0.001, psy_si.Tolerance(), 1.0e-12)

	psy_ip, err := NewPsychrometrics(UnitSystemIP)
	require.NoError(t, err)
	assert.InDelta(t, 0.0018, psy_ip.Tolerance(), 1.0e-12)
}

func Test_IsImperial(t *testing.T) {
	psy_si, _ := NewPsychrometrics(UnitSystemSI)
	is_ip, err := psy_si.IsImperial()
	require.NoError(t, err)
	assert.False(t, is_ip)

	psy_ip, _ := NewPsychrometrics(UnitSystemIP)
	is_ip, err = psy_ip.IsImperial()
	require.NoError(t, err)
	assert.True(t, is_ip)
}

// 単位系を束縛せずに使用するとエラーになることのテスト
// ゼロ値の計算器は既定の単位系を持たない
func Test_ZeroValueCalculator(t *testing.T) {
	var psy Psychrometrics

	_, err := psy.IsImperial()
	assert.ErrorIs(t, err, ErrUnitSystem)

	_, err = psy.SatVaporPressure(25.0)
	assert.ErrorIs(t, err, ErrUnitSystem)

	_, err = psy.CalcFromRelHum(25.0, 0.5, 101325.0)
	assert.ErrorIs(t, err, ErrUnitSystem)
}

// 温度目盛の換算のテスト
func Test_TemperatureConversions(t *testing.T) {
	assert.InDelta(t, 298.15, KelvinFromCelsius(25.0), 1.0e-12)
	assert.InDelta(t, 25.0, CelsiusFromKelvin(298.15), 1.0e-12)
	assert.InDelta(t, 536.67, RankineFromFahrenheit(77.0), 1.0e-12)
	assert.InDelta(t, 77.0, FahrenheitFromRankine(536.67), 1.0e-12)
}
