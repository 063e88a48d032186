package psychrometrics

import (
	"fmt"
	"math"
)

/*
水蒸気分圧から露点温度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        p_w: 水蒸気分圧, Pa (SI) または psi (IP)

    Returns:
        露点温度, degree C (SI) または degree F (IP)

    Notes:
        飽和水蒸気圧式をニュートン・ラフソン法で逆算する。
        飽和水蒸気圧曲線は対数空間でほぼ直線となり収束が速いため、
        反復は ln(p_w) 空間で行う。
        水蒸気分圧が飽和水蒸気圧式の適用範囲で実現できる圧力の
        範囲外である場合はエラーを返す。
        露点温度は乾球温度を超えないため、結果は乾球温度で頭打ちとする。
*/
func (self *Psychrometrics) DewPointFromVaporPressure(t_db float64, p_w float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}

	// 適用温度範囲で実現できる水蒸気分圧の範囲
	p_ws_min := math.Exp(self._ln_p_ws(self.t_min))
	p_ws_max := math.Exp(self._ln_p_ws(self.t_max))

	if p_w < p_ws_min || p_w > p_ws_max {
		return 0.0, fmt.Errorf("%w: partial pressure of water vapor %g is outside [%g, %g]",
			ErrOutOfRange, p_w, p_ws_min, p_ws_max)
	}

	t_dp, _, err := self._dew_point_newton(t_db, p_w)
	if err != nil {
		return 0.0, err
	}

	// 同一の空気塊では露点温度が乾球温度を超えることはない
	return math.Min(t_dp, t_db), nil
}

/*
ニュートン・ラフソン法により飽和水蒸気圧式を逆算する。

    Args:
        t_db: 反復の初期値に用いる乾球温度, degree C (SI) または degree F (IP)
        p_w: 水蒸気分圧, Pa (SI) または psi (IP)

    Returns:
        (1) 露点温度, degree C (SI) または degree F (IP)
        (2) 反復回数

    Notes:
        各ステップで反復値を適用温度範囲内にクリップする
        （範囲端付近では微分により範囲外へ飛び出すことがある）。
        滑らかな曲線のため通常3〜5回で収束する。
        最大反復回数以内に収束しない場合はエラーを返す。
*/
func (self *Psychrometrics) _dew_point_newton(t_db float64, p_w float64) (float64, int, error) {
	ln_p_w := math.Log(p_w)

	t_dp := t_db
	for index := 1; ; index++ {
		t_dp_prev := t_dp

		ln_p_ws := self._ln_p_ws(t_dp)
		d_ln_p_ws := self._d_ln_p_ws(t_dp)

		t_dp = t_dp - (ln_p_ws-ln_p_w)/d_ln_p_ws
		t_dp = math.Min(math.Max(t_dp, self.t_min), self.t_max)

		if math.Abs(t_dp-t_dp_prev) <= self.tol {
			return t_dp, index, nil
		}

		if index >= max_iter_count {
			return 0.0, index, fmt.Errorf("%w: dew point not found within %d iterations",
				ErrNotConverged, max_iter_count)
		}
	}
}

/*
相対湿度から露点温度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        rel_hum: 相対湿度, - ([0, 1])

    Returns:
        露点温度, degree C (SI) または degree F (IP)
*/
func (self *Psychrometrics) DewPointFromRelHum(t_db float64, rel_hum float64) (float64, error) {
	p_w, err := self.VaporPressureFromRelHum(t_db, rel_hum)
	if err != nil {
		return 0.0, err
	}

	return self.DewPointFromVaporPressure(t_db, p_w)
}

/*
湿度比から露点温度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        露点温度, degree C (SI) または degree F (IP)
*/
func (self *Psychrometrics) DewPointFromHumidityRatio(t_db float64, w float64, pressure float64) (float64, error) {
	p_w, err := self.VaporPressureFromHumidityRatio(w, pressure)
	if err != nil {
		return 0.0, err
	}

	return self.DewPointFromVaporPressure(t_db, p_w)
}

/*
湿球温度から露点温度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        t_wb: 湿球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        露点温度, degree C (SI) または degree F (IP)
*/
func (self *Psychrometrics) DewPointFromWetBulb(t_db float64, t_wb float64, pressure float64) (float64, error) {
	w, err := self.HumidityRatioFromWetBulb(t_db, t_wb, pressure)
	if err != nil {
		return 0.0, err
	}

	return self.DewPointFromHumidityRatio(t_db, w, pressure)
}
