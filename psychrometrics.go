package psychrometrics

import (
	"fmt"
)

/*
ある瞬間の一つの空気塊を記述する湿り空気の状態値。

    乾球温度・大気圧と {湿球温度, 露点温度, 相対湿度, 湿度比, 水蒸気分圧}
    のいずれか一つを固定すると残りが定まる。
    すべての生成経路で以下の不変条件を保つ。
        湿度比 >= 下限値（厳密に0にはならない）
        0 <= 相対湿度 <= 1
        露点温度 <= 湿球温度 <= 乾球温度
*/
type MoistAirState struct {
	DryBulb            float64 // 乾球温度, degree C (SI) または degree F (IP)
	Pressure           float64 // 大気圧, Pa (SI) または psi (IP)
	HumidityRatio      float64 // 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
	WetBulb            float64 // 湿球温度, degree C (SI) または degree F (IP)
	DewPoint           float64 // 露点温度, degree C (SI) または degree F (IP)
	RelHum             float64 // 相対湿度, - ([0, 1])
	VaporPressure      float64 // 水蒸気分圧, Pa (SI) または psi (IP)
	MoistAirEnthalpy   float64 // 湿り空気の比エンタルピー, J/kg (SI) または Btu/lb (IP)
	MoistAirVolume     float64 // 湿り空気の比体積, m3/kg(DA) (SI) または ft3/lb(DA) (IP)
	DegreeOfSaturation float64 // 飽和度, -
}

/*
乾球温度・湿球温度・大気圧から湿り空気の状態値一式を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        t_wb: 湿球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿り空気の状態値

    Notes:
        湿球温度から湿度比を求め、残りの状態値はすべて湿度比から
        代数的に導出する。収束計算は露点温度の1回のみ。
*/
func (self *Psychrometrics) CalcFromWetBulb(t_db float64, t_wb float64, pressure float64) (MoistAirState, error) {
	if err := self._check(); err != nil {
		return MoistAirState{}, err
	}
	if t_wb > t_db {
		return MoistAirState{}, fmt.Errorf("%w: wet bulb temperature %g is above dry bulb temperature %g",
			ErrOutOfRange, t_wb, t_db)
	}

	w, err := self.HumidityRatioFromWetBulb(t_db, t_wb, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	state, err := self._state_from_humidity_ratio(t_db, w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}
	state.WetBulb = t_wb

	return state, nil
}

/*
乾球温度・露点温度・大気圧から湿り空気の状態値一式を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        t_dp: 露点温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿り空気の状態値

    Notes:
        露点温度から湿度比を求め、湿球温度のみ二分法で逆算する。
        収束計算に再入することはない。
*/
func (self *Psychrometrics) CalcFromDewPoint(t_db float64, t_dp float64, pressure float64) (MoistAirState, error) {
	if err := self._check(); err != nil {
		return MoistAirState{}, err
	}
	if t_dp > t_db {
		return MoistAirState{}, fmt.Errorf("%w: dew point temperature %g is above dry bulb temperature %g",
			ErrOutOfRange, t_dp, t_db)
	}

	w, err := self.HumidityRatioFromDewPoint(t_dp, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	t_wb, err := self.WetBulbFromHumidityRatio(t_db, w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	state, err := self._state_from_humidity_ratio(t_db, w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	// 露点温度は入力値をそのまま保持する
	state.DewPoint = t_dp
	state.WetBulb = t_wb

	return state, nil
}

/*
乾球温度・相対湿度・大気圧から湿り空気の状態値一式を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        rel_hum: 相対湿度, - ([0, 1])
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿り空気の状態値
*/
func (self *Psychrometrics) CalcFromRelHum(t_db float64, rel_hum float64, pressure float64) (MoistAirState, error) {
	if err := self._check(); err != nil {
		return MoistAirState{}, err
	}

	w, err := self.HumidityRatioFromRelHum(t_db, rel_hum, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	t_wb, err := self.WetBulbFromHumidityRatio(t_db, w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	state, err := self._state_from_humidity_ratio(t_db, w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}
	state.WetBulb = t_wb

	return state, nil
}

/*
湿度比から代数的に導出できる状態値を埋める。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比（下支え済み）, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿球温度を除く湿り空気の状態値

    Notes:
        露点温度の収束計算を1回含む。
*/
func (self *Psychrometrics) _state_from_humidity_ratio(t_db float64, w float64, pressure float64) (MoistAirState, error) {
	p_w, err := self.VaporPressureFromHumidityRatio(w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	t_dp, err := self.DewPointFromVaporPressure(t_db, p_w)
	if err != nil {
		return MoistAirState{}, err
	}

	rel_hum, err := self.RelHumFromVaporPressure(t_db, p_w)
	if err != nil {
		return MoistAirState{}, err
	}

	h, err := self.MoistAirEnthalpy(t_db, w)
	if err != nil {
		return MoistAirState{}, err
	}

	v, err := self.MoistAirVolume(t_db, w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	mu, err := self.DegreeOfSaturation(t_db, w, pressure)
	if err != nil {
		return MoistAirState{}, err
	}

	return MoistAirState{
		DryBulb:            t_db,
		Pressure:           pressure,
		HumidityRatio:      w,
		DewPoint:           t_dp,
		RelHum:             rel_hum,
		VaporPressure:      p_w,
		MoistAirEnthalpy:   h,
		MoistAirVolume:     v,
		DegreeOfSaturation: mu,
	}, nil
}
