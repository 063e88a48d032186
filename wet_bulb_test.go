package psychrometrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 湿球温度と湿度比の往復のテスト (SI)
// 湿球温度から湿度比を求め、その湿度比から湿球温度を逆算すると元に戻る
func Test_WetBulbFromHumidityRatio_RoundTrip_SI(t *testing.T) {
	psy, err := NewPsychrometrics(UnitSystemSI)
	require.NoError(t, err)

	w, err := psy.HumidityRatioFromWetBulb(30.0, 25.0, 95461.0)
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)

	t_wb, err := psy.WetBulbFromHumidityRatio(30.0, w, 95461.0)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, t_wb, 0.001)
}

// 湿球温度と湿度比の往復のテスト (IP)
// 乾球温度86 degree F、湿球温度77 degree F、大気圧14.175 psi
func Test_WetBulbFromHumidityRatio_RoundTrip_IP(t *testing.T) {
	psy, err := NewPsychrometrics(UnitSystemIP)
	require.NoError(t, err)

	w, err := psy.HumidityRatioFromWetBulb(86.0, 77.0, 14.175)
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)

	t_wb, err := psy.WetBulbFromHumidityRatio(86.0, w, 14.175)
	require.NoError(t, err)
	assert.InDelta(t, 77.0, t_wb, 0.001)
}

// 凝固点未満の湿球温度での往復のテスト (SI)
func Test_WetBulbFromHumidityRatio_RoundTrip_BelowFreezing(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	w, err := psy.HumidityRatioFromWetBulb(0.0, -2.0, 101325.0)
	require.NoError(t, err)
	assert.Greater(t, w, 0.0)

	t_wb, err := psy.WetBulbFromHumidityRatio(0.0, w, 101325.0)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, t_wb, 0.001)
}

// 湿度比の下限値のテスト
// 下限値以下の湿度比は下限値と同一の結果になる
func Test_WetBulbFromHumidityRatio_Floor(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	t_wb_tiny, err := psy.WetBulbFromHumidityRatio(25.0, 1.0e-9, 95461.0)
	require.NoError(t, err)

	t_wb_floor, err := psy.WetBulbFromHumidityRatio(25.0, 1.0e-7, 95461.0)
	require.NoError(t, err)

	assert.Equal(t, t_wb_floor, t_wb_tiny)
}

// 負の湿度比が拒否されることのテスト
func Test_WetBulbFromHumidityRatio_Negative(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	_, err := psy.WetBulbFromHumidityRatio(25.0, -0.001, 101325.0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// 乾球温度を超える湿球温度が拒否されることのテスト
func Test_HumidityRatioFromWetBulb_AboveDryBulb(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	_, err := psy.HumidityRatioFromWetBulb(25.0, 30.0, 101325.0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// 湿度比の単調性のテスト
// 乾球温度と大気圧を固定したとき、湿度比は湿球温度に対して単調非減少。
// 二分法の正しさはこの性質に依存する。
func Test_HumidityRatioFromWetBulb_Monotonic(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	w_prev := -1.0
	for t_wb := 5.0; t_wb <= 30.0; t_wb += 1.0 {
		w, err := psy.HumidityRatioFromWetBulb(30.0, t_wb, 101325.0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w, w_prev)
		w_prev = w
	}
}

// 二分法の反復回数のテスト
// 収束判定値0.001に対して典型的な入力では20回未満で収束する
func Test_WetBulbBisection_IterationCount(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	w, err := psy.HumidityRatioFromWetBulb(30.0, 25.0, 101325.0)
	require.NoError(t, err)

	_, n_iter, err := psy._wet_bulb_bisection(30.0, w, 101325.0)
	require.NoError(t, err)
	assert.Less(t, n_iter, 20)
}

// 相対湿度・露点温度経由の湿球温度のテスト
// 同じ空気塊をどの経路で表しても同じ湿球温度になる
func Test_WetBulbFromRelHumAndDewPoint_Consistency(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	t_wb_rh, err := psy.WetBulbFromRelHum(30.0, 0.6, 101325.0)
	require.NoError(t, err)

	t_dp, err := psy.DewPointFromRelHum(30.0, 0.6)
	require.NoError(t, err)

	t_wb_dp, err := psy.WetBulbFromDewPoint(30.0, t_dp, 101325.0)
	require.NoError(t, err)

	assert.InDelta(t, t_wb_rh, t_wb_dp, 0.01)

	// 露点温度 <= 湿球温度 <= 乾球温度
	assert.LessOrEqual(t, t_dp, t_wb_rh+psy.Tolerance())
	assert.LessOrEqual(t, t_wb_rh, 30.0)
}
