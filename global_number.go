package psychrometrics

// 単位系に依存しない定数

// 湿度比の下限値, kg/kg(DA) または lb/lb(DA)
// 湿度比が厳密に0になると対数・除算が定義できないため、この値を下限とする。
const min_hum_ratio = 1.0e-7

// 収束計算の最大反復回数
const max_iter_count = 100

// 水蒸気と乾き空気の分子量比 (= 18.015268 / 28.966)
const mol_mass_ratio = 0.621945

// 湿り空気の比体積式における湿度比の係数 (= 1 / 0.621945)
const vol_hum_factor = 1.607858
