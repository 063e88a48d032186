package psychrometrics

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*
湿度比の時系列から水蒸気分圧の時系列を計算する。

    Args:
        w_ns: ステップnにおける湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP), [n]
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        ステップnにおける水蒸気分圧, Pa (SI) または psi (IP), [n]

    Notes:
        年間の気象時系列を一括で処理するためのヘルパー。
*/
func (self *Psychrometrics) VaporPressureSeries(w_ns mat.Vector, pressure float64) ([]float64, error) {
	if err := self._check(); err != nil {
		return nil, err
	}

	p_w_ns := make([]float64, w_ns.Len())
	for i := 0; i < w_ns.Len(); i++ {
		p_w, err := self.VaporPressureFromHumidityRatio(w_ns.AtVec(i), pressure)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		p_w_ns[i] = p_w
	}

	return p_w_ns, nil
}

/*
乾球温度と相対湿度の時系列から湿度比の時系列を計算する。

    Args:
        t_db_ns: ステップnにおける乾球温度, degree C (SI) または degree F (IP), [n]
        rel_hum_ns: ステップnにおける相対湿度, - ([0, 1]), [n]
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        ステップnにおける湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP), [n]
*/
func (self *Psychrometrics) HumidityRatioSeries(t_db_ns mat.Vector, rel_hum_ns mat.Vector, pressure float64) ([]float64, error) {
	if err := self._check(); err != nil {
		return nil, err
	}
	if t_db_ns.Len() != rel_hum_ns.Len() {
		return nil, fmt.Errorf("%w: series length mismatch %d != %d",
			ErrOutOfRange, t_db_ns.Len(), rel_hum_ns.Len())
	}

	w_ns := make([]float64, t_db_ns.Len())
	for i := 0; i < t_db_ns.Len(); i++ {
		w, err := self.HumidityRatioFromRelHum(t_db_ns.AtVec(i), rel_hum_ns.AtVec(i), pressure)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		w_ns[i] = w
	}

	return w_ns, nil
}

/*
乾球温度と相対湿度の時系列から露点温度の時系列を計算する。

    Args:
        t_db_ns: ステップnにおける乾球温度, degree C (SI) または degree F (IP), [n]
        rel_hum_ns: ステップnにおける相対湿度, - ([0, 1]), [n]

    Returns:
        ステップnにおける露点温度, degree C (SI) または degree F (IP), [n]
*/
func (self *Psychrometrics) DewPointSeries(t_db_ns mat.Vector, rel_hum_ns mat.Vector) ([]float64, error) {
	if err := self._check(); err != nil {
		return nil, err
	}
	if t_db_ns.Len() != rel_hum_ns.Len() {
		return nil, fmt.Errorf("%w: series length mismatch %d != %d",
			ErrOutOfRange, t_db_ns.Len(), rel_hum_ns.Len())
	}

	t_dp_ns := make([]float64, t_db_ns.Len())
	for i := 0; i < t_db_ns.Len(); i++ {
		t_dp, err := self.DewPointFromRelHum(t_db_ns.AtVec(i), rel_hum_ns.AtVec(i))
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		t_dp_ns[i] = t_dp
	}

	return t_dp_ns, nil
}
