package psychrometrics

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ASHRAE Handbook - Fundamentals (2017) Table 3 の参照値
type sat_pressure_record struct {
	T      float64 `csv:"t"`
	P_ws   float64 `csv:"p_ws"`
	RelTol float64 `csv:"rel_tol"`
}

func load_sat_pressure_records(t *testing.T, name string) []*sat_pressure_record {
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()

	var records []*sat_pressure_record
	require.NoError(t, gocsv.UnmarshalFile(f, &records))
	require.NotEmpty(t, records)

	return records
}

// 飽和水蒸気圧のテスト (SI)
// 期待値はASHRAE Table 3（許容誤差0.03%）
func Test_SatVaporPressure_SI(t *testing.T) {
	psy, err := NewPsychrometrics(UnitSystemSI)
	require.NoError(t, err)

	for _, r := range load_sat_pressure_records(t, "ashrae_table3_si.csv") {
		t.Run(fmt.Sprintf("t=%g", r.T), func(t *testing.T) {
			p_ws, err := psy.SatVaporPressure(r.T)
			require.NoError(t, err)
			assert.InDelta(t, r.P_ws, p_ws, r.P_ws*r.RelTol)
		})
	}
}

// 飽和水蒸気圧のテスト (IP)
func Test_SatVaporPressure_IP(t *testing.T) {
	psy, err := NewPsychrometrics(UnitSystemIP)
	require.NoError(t, err)

	for _, r := range load_sat_pressure_records(t, "ashrae_table3_ip.csv") {
		t.Run(fmt.Sprintf("t=%g", r.T), func(t *testing.T) {
			p_ws, err := psy.SatVaporPressure(r.T)
			require.NoError(t, err)
			assert.InDelta(t, r.P_ws, p_ws, r.P_ws*r.RelTol)
		})
	}
}

// 適用温度範囲外の入力が拒否されることのテスト
func Test_SatVaporPressure_OutOfRange(t *testing.T) {
	psy_si, _ := NewPsychrometrics(UnitSystemSI)
	_, err := psy_si.SatVaporPressure(-150.0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = psy_si.SatVaporPressure(250.0)
	assert.ErrorIs(t, err, ErrOutOfRange)

	psy_ip, _ := NewPsychrometrics(UnitSystemIP)
	_, err = psy_ip.SatVaporPressure(-200.0)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = psy_ip.SatVaporPressure(400.0)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

// 三重点での分岐の連続性のテスト
// 凝固点ではなく三重点で切り替えることで不連続が生じないことを確認する
func Test_SatVaporPressure_ContinuityAtTriplePoint(t *testing.T) {
	psy_si, _ := NewPsychrometrics(UnitSystemSI)
	below, err := psy_si.SatVaporPressure(0.01 - 1.0e-4)
	require.NoError(t, err)
	above, err := psy_si.SatVaporPressure(0.01 + 1.0e-4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, below/above, 1.0e-3)

	psy_ip, _ := NewPsychrometrics(UnitSystemIP)
	below, err = psy_ip.SatVaporPressure(32.018 - 1.0e-4)
	require.NoError(t, err)
	above, err = psy_ip.SatVaporPressure(32.018 + 1.0e-4)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, below/above, 1.0e-3)
}

// 解析的微分と数値微分の一致のテスト
func Test_DLnSatVaporPressure(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	for _, t_db := range []float64{-50.0, -10.0, 5.0, 25.0, 60.0, 150.0} {
		const dt = 1.0e-4
		numeric := (psy._ln_p_ws(t_db+dt) - psy._ln_p_ws(t_db-dt)) / (2.0 * dt)
		analytic := psy._d_ln_p_ws(t_db)
		assert.InDelta(t, numeric, analytic, math.Abs(numeric)*1.0e-5)
	}
}

// 飽和湿度比のテスト
func Test_SatHumidityRatio(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	// w_s = 0.621945 * p_ws / (p - p_ws)
	p_ws, err := psy.SatVaporPressure(25.0)
	require.NoError(t, err)
	w_s, err := psy.SatHumidityRatio(25.0, 101325.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.621945*p_ws/(101325.0-p_ws), w_s, 1.0e-12)
}

// 飽和空気の比エンタルピーのテスト
func Test_SatAirEnthalpy(t *testing.T) {
	psy, _ := NewPsychrometrics(UnitSystemSI)

	w_s, err := psy.SatHumidityRatio(25.0, 101325.0)
	require.NoError(t, err)
	h_expected, err := psy.MoistAirEnthalpy(25.0, w_s)
	require.NoError(t, err)

	h, err := psy.SatAirEnthalpy(25.0, 101325.0)
	require.NoError(t, err)
	assert.InDelta(t, h_expected, h, 1.0e-9)
}
