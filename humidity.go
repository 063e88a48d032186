package psychrometrics

import (
	"fmt"
	"math"
)

/*
水蒸気分圧から湿度比を計算する。

    Args:
        p_w: 水蒸気分圧, Pa (SI) または psi (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(20)
*/
func (self *Psychrometrics) HumidityRatioFromVaporPressure(p_w float64, pressure float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if p_w < 0.0 {
		return 0.0, fmt.Errorf("%w: partial pressure of water vapor %g is negative", ErrOutOfRange, p_w)
	}

	w := mol_mass_ratio * p_w / (pressure - p_w)

	return math.Max(w, min_hum_ratio), nil
}

/*
湿度比から水蒸気分圧を計算する。

    Args:
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        水蒸気分圧, Pa (SI) または psi (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(20)の逆算
*/
func (self *Psychrometrics) VaporPressureFromHumidityRatio(w float64, pressure float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if w < 0.0 {
		return 0.0, fmt.Errorf("%w: humidity ratio %g is negative", ErrOutOfRange, w)
	}

	w_bounded := math.Max(w, min_hum_ratio)

	return pressure * w_bounded / (mol_mass_ratio + w_bounded), nil
}

/*
水蒸気分圧から相対湿度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        p_w: 水蒸気分圧, Pa (SI) または psi (IP)

    Returns:
        相対湿度, - ([0, 1])

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(12)
*/
func (self *Psychrometrics) RelHumFromVaporPressure(t_db float64, p_w float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if p_w < 0.0 {
		return 0.0, fmt.Errorf("%w: partial pressure of water vapor %g is negative", ErrOutOfRange, p_w)
	}

	p_ws, err := self.SatVaporPressure(t_db)
	if err != nil {
		return 0.0, err
	}

	return p_w / p_ws, nil
}

/*
相対湿度から水蒸気分圧を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        rel_hum: 相対湿度, - ([0, 1])

    Returns:
        水蒸気分圧, Pa (SI) または psi (IP)
*/
func (self *Psychrometrics) VaporPressureFromRelHum(t_db float64, rel_hum float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if rel_hum < 0.0 || rel_hum > 1.0 {
		return 0.0, fmt.Errorf("%w: relative humidity %g is outside [0, 1]", ErrOutOfRange, rel_hum)
	}

	p_ws, err := self.SatVaporPressure(t_db)
	if err != nil {
		return 0.0, err
	}

	return rel_hum * p_ws, nil
}

/*
相対湿度から湿度比を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        rel_hum: 相対湿度, - ([0, 1])
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
*/
func (self *Psychrometrics) HumidityRatioFromRelHum(t_db float64, rel_hum float64, pressure float64) (float64, error) {
	p_w, err := self.VaporPressureFromRelHum(t_db, rel_hum)
	if err != nil {
		return 0.0, err
	}

	return self.HumidityRatioFromVaporPressure(p_w, pressure)
}

/*
湿度比から相対湿度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        相対湿度, - ([0, 1])
*/
func (self *Psychrometrics) RelHumFromHumidityRatio(t_db float64, w float64, pressure float64) (float64, error) {
	p_w, err := self.VaporPressureFromHumidityRatio(w, pressure)
	if err != nil {
		return 0.0, err
	}

	return self.RelHumFromVaporPressure(t_db, p_w)
}

/*
湿球温度から相対湿度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        t_wb: 湿球温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        相対湿度, - ([0, 1])
*/
func (self *Psychrometrics) RelHumFromWetBulb(t_db float64, t_wb float64, pressure float64) (float64, error) {
	w, err := self.HumidityRatioFromWetBulb(t_db, t_wb, pressure)
	if err != nil {
		return 0.0, err
	}

	return self.RelHumFromHumidityRatio(t_db, w, pressure)
}

/*
露点温度から相対湿度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        t_dp: 露点温度, degree C (SI) または degree F (IP)

    Returns:
        相対湿度, - ([0, 1])

    Notes:
        露点温度における飽和水蒸気圧が実際の水蒸気分圧に等しい。
*/
func (self *Psychrometrics) RelHumFromDewPoint(t_db float64, t_dp float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if t_dp > t_db {
		return 0.0, fmt.Errorf("%w: dew point temperature %g is above dry bulb temperature %g",
			ErrOutOfRange, t_dp, t_db)
	}

	p_w, err := self.SatVaporPressure(t_dp)
	if err != nil {
		return 0.0, err
	}

	return self.RelHumFromVaporPressure(t_db, p_w)
}

/*
露点温度から湿度比を計算する。

    Args:
        t_dp: 露点温度, degree C (SI) または degree F (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
*/
func (self *Psychrometrics) HumidityRatioFromDewPoint(t_dp float64, pressure float64) (float64, error) {
	p_w, err := self.SatVaporPressure(t_dp)
	if err != nil {
		return 0.0, err
	}

	return self.HumidityRatioFromVaporPressure(p_w, pressure)
}

/*
湿度比から比湿を計算する。

    Args:
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Returns:
        比湿, kg/kg (SI) または lb/lb (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(9b)
*/
func (self *Psychrometrics) SpecificHumidityFromHumidityRatio(w float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if w < 0.0 {
		return 0.0, fmt.Errorf("%w: humidity ratio %g is negative", ErrOutOfRange, w)
	}

	w_bounded := math.Max(w, min_hum_ratio)

	return w_bounded / (1.0 + w_bounded), nil
}

/*
比湿から湿度比を計算する。

    Args:
        s: 比湿, kg/kg (SI) または lb/lb (IP)

    Returns:
        湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(9b)の逆算
*/
func (self *Psychrometrics) HumidityRatioFromSpecificHumidity(s float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if s < 0.0 || s >= 1.0 {
		return 0.0, fmt.Errorf("%w: specific humidity %g is outside [0, 1)", ErrOutOfRange, s)
	}

	w := s / (1.0 - s)

	return math.Max(w, min_hum_ratio), nil
}

/*
飽和度を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        飽和度, -

    Notes:
        ASHRAE Handbook - Fundamentals (2017) Chapter 1 式(12)
        同一温度・同一気圧における飽和湿度比に対する湿度比の比。
*/
func (self *Psychrometrics) DegreeOfSaturation(t_db float64, w float64, pressure float64) (float64, error) {
	if err := self._check(); err != nil {
		return 0.0, err
	}
	if w < 0.0 {
		return 0.0, fmt.Errorf("%w: humidity ratio %g is negative", ErrOutOfRange, w)
	}

	w_s, err := self.SatHumidityRatio(t_db, pressure)
	if err != nil {
		return 0.0, err
	}

	return math.Max(w, min_hum_ratio) / w_s, nil
}

/*
飽差（飽和水蒸気圧と水蒸気分圧の差）を計算する。

    Args:
        t_db: 乾球温度, degree C (SI) または degree F (IP)
        w: 湿度比, kg/kg(DA) (SI) または lb/lb(DA) (IP)
        pressure: 大気圧, Pa (SI) または psi (IP)

    Returns:
        飽差, Pa (SI) または psi (IP)
*/
func (self *Psychrometrics) VaporPressureDeficit(t_db float64, w float64, pressure float64) (float64, error) {
	rel_hum, err := self.RelHumFromHumidityRatio(t_db, w, pressure)
	if err != nil {
		return 0.0, err
	}

	p_ws, err := self.SatVaporPressure(t_db)
	if err != nil {
		return 0.0, err
	}

	return p_ws * (1.0 - rel_hum), nil
}
