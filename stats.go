package tstep

import (
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// Summary holds scalar statistics over a series' recorded values, computed
// via montanaflynn/stats (Mean, Median, StandardDeviation, Min, Max).
type Summary struct {
	Mean, Median, StdDev, Min, Max float64
}

// Describe computes a Summary over every recorded value of ts. Returns
// ErrEmptyFloating if ts has no recorded measurements.
func Describe[T any, V Number](ts *TimeSeries[T, V]) (Summary, error) {
	if ts.NPoints() == 0 {
		return Summary{}, ErrEmptyFloating
	}
	data := valuesOf(ts)
	var s Summary
	var err error
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, err
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, err
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, err
	}
	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, err
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, err
	}
	return s, nil
}

func valuesOf[T any, V Number](ts *TimeSeries[T, V]) stats.Float64Data {
	items := ts.Items()
	data := make(stats.Float64Data, len(items))
	for i, p := range items {
		data[i] = float64(p.V)
	}
	return data
}

// PercentileFences returns the symmetric [perc, 100-perc] percentile bounds
// of ts' recorded values, a symmetric-percentile outlier fence.
func PercentileFences[T any, V Number](ts *TimeSeries[T, V], perc float64) (lo, hi float64, err error) {
	data := valuesOf(ts)
	if lo, err = stats.Percentile(data, perc); err != nil {
		return 0, 0, err
	}
	if hi, err = stats.Percentile(data, 100-perc); err != nil {
		return 0, 0, err
	}
	return lo, hi, nil
}

// ZscoreFences returns [mean-lvl*stddev, mean+lvl*stddev] over ts'
// recorded values.
func ZscoreFences[T any, V Number](ts *TimeSeries[T, V], lvl float64) (lo, hi float64, err error) {
	data := valuesOf(ts)
	mean, err := stats.Mean(data)
	if err != nil {
		return 0, 0, err
	}
	sd, err := stats.StandardDeviation(data)
	if err != nil {
		return 0, 0, err
	}
	return mean - lvl*sd, mean + lvl*sd, nil
}

// PeirceOutliers returns the indices (in ts.Items() order) that Peirce's
// criterion rejects as outliers: ranked absolute deviations from the mean
// are dropped while |dev| exceeds R(N, r)*stddev, r being the running
// count of rejects so far, looked up in Peirce's published critical-ratio
// table. Generalized from a fixed float64 value type to any Number V.
func PeirceOutliers[T any, V Number](ts *TimeSeries[T, V]) ([]int, error) {
	items := ts.Items()
	data := make([]float64, len(items))
	for i, p := range items {
		data[i] = float64(p.V)
	}
	mean, err := stats.Mean(data)
	if err != nil {
		return nil, err
	}
	sd, err := stats.StandardDeviation(data)
	if err != nil {
		return nil, err
	}
	n := len(data)
	if n == 0 {
		return nil, ErrEmptyFloating
	}

	type deviation struct {
		idx int
		abs float64
	}
	devs := make([]deviation, n)
	for i, v := range data {
		devs[i] = deviation{idx: i, abs: math.Abs(v - mean)}
	}
	sort.Slice(devs, func(i, j int) bool { return devs[i].abs > devs[j].abs })

	tableN := n - 3
	if n > 60 {
		tableN = 57
	}
	if tableN < 0 {
		tableN = 0
	}

	var rejected []int
	for i := 0; i < len(devs); i++ {
		if tableN >= len(peirceRTable) || i >= len(peirceRTable[tableN]) {
			break
		}
		threshold := sd * peirceRTable[tableN][i]
		if devs[i].abs <= threshold {
			break
		}
		rejected = append(rejected, devs[i].idx)
	}
	return rejected, nil
}

// peirceRTable is Peirce's criterion critical-ratio table R(N, k): row N-3
// (row 0 is N=3, capped at row 57, N=60), column k = number of suspects
// rejected so far.
var peirceRTable = buildPeirceRTable()

func buildPeirceRTable() [58][9]float64 {
	var t [58][9]float64
	t[0] = [9]float64{1.196, 0, 0, 0, 0, 0, 0, 0, 0}
	t[1] = [9]float64{1.383, 1.078, 0, 0, 0, 0, 0, 0, 0}
	t[2] = [9]float64{1.509, 1.2, 0, 0, 0, 0, 0, 0, 0}
	t[3] = [9]float64{1.61, 1.299, 1.099, 0, 0, 0, 0, 0, 0}
	t[4] = [9]float64{1.693, 1.382, 1.187, 1.022, 0, 0, 0, 0, 0}
	t[5] = [9]float64{1.763, 1.453, 1.261, 1.109, 0, 0, 0, 0, 0}
	t[6] = [9]float64{1.824, 1.515, 1.324, 1.178, 1.045, 0, 0, 0, 0}
	t[7] = [9]float64{1.878, 1.57, 1.38, 1.237, 1.114, 0, 0, 0, 0}
	t[8] = [9]float64{1.925, 1.619, 1.43, 1.289, 1.172, 1.059, 0, 0, 0}
	t[9] = [9]float64{1.969, 1.663, 1.475, 1.336, 1.221, 1.118, 1.009, 0, 0}
	t[10] = [9]float64{2.007, 1.704, 1.516, 1.379, 1.266, 1.167, 1.07, 0, 0}
	t[11] = [9]float64{2.043, 1.741, 1.554, 1.417, 1.307, 1.21, 1.12, 1.026, 0}
	t[12] = [9]float64{2.076, 1.775, 1.589, 1.453, 1.344, 1.249, 1.164, 1.078, 0}
	t[13] = [9]float64{2.106, 1.807, 1.622, 1.486, 1.378, 1.285, 1.202, 1.122, 1.039}
	t[14] = [9]float64{2.134, 1.836, 1.652, 1.517, 1.409, 1.318, 1.237, 1.161, 1.084}
	t[15] = [9]float64{2.161, 1.864, 1.68, 1.546, 1.438, 1.348, 1.268, 1.195, 1.123}
	t[16] = [9]float64{2.185, 1.89, 1.707, 1.573, 1.466, 1.377, 1.298, 1.226, 1.158}
	t[17] = [9]float64{2.209, 1.914, 1.732, 1.599, 1.492, 1.404, 1.326, 1.255, 1.19}
	t[18] = [9]float64{2.23, 1.938, 1.756, 1.623, 1.517, 1.429, 1.352, 1.282, 1.218}
	t[19] = [9]float64{2.251, 1.96, 1.779, 1.646, 1.54, 1.452, 1.376, 1.308, 1.245}
	t[20] = [9]float64{2.271, 1.981, 1.8, 1.668, 1.563, 1.475, 1.399, 1.332, 1.27}
	t[21] = [9]float64{2.29, 2, 1.821, 1.689, 1.584, 1.497, 1.421, 1.354, 1.293}
	t[22] = [9]float64{2.307, 2.019, 1.84, 1.709, 1.604, 1.517, 1.442, 1.375, 1.315}
	t[23] = [9]float64{2.324, 2.037, 1.859, 1.728, 1.624, 1.537, 1.462, 1.396, 1.336}
	t[24] = [9]float64{2.341, 2.055, 1.877, 1.746, 1.642, 1.556, 1.481, 1.415, 1.356}
	t[25] = [9]float64{2.356, 2.071, 1.894, 1.764, 1.66, 1.574, 1.5, 1.434, 1.375}
	t[26] = [9]float64{2.371, 2.088, 1.911, 1.781, 1.677, 1.591, 1.517, 1.452, 1.393}
	t[27] = [9]float64{2.385, 2.103, 1.927, 1.797, 1.694, 1.608, 1.534, 1.469, 1.411}
	t[28] = [9]float64{2.399, 2.118, 1.942, 1.812, 1.71, 1.624, 1.55, 1.486, 1.428}
	t[29] = [9]float64{2.412, 2.132, 1.957, 1.828, 1.725, 1.64, 1.567, 1.502, 1.444}
	t[30] = [9]float64{2.425, 2.146, 1.971, 1.842, 1.74, 1.655, 1.582, 1.517, 1.459}
	t[31] = [9]float64{2.438, 2.159, 1.985, 1.856, 1.754, 1.669, 1.597, 1.532, 1.475}
	t[32] = [9]float64{2.45, 2.172, 1.998, 1.87, 1.768, 1.683, 1.611, 1.547, 1.489}
	t[33] = [9]float64{2.461, 2.184, 2.011, 1.883, 1.782, 1.697, 1.624, 1.561, 1.504}
	t[34] = [9]float64{2.472, 2.196, 2.024, 1.896, 1.795, 1.711, 1.638, 1.574, 1.517}
	t[35] = [9]float64{2.483, 2.208, 2.036, 1.909, 1.807, 1.723, 1.651, 1.587, 1.531}
	t[36] = [9]float64{2.494, 2.219, 2.047, 1.921, 1.82, 1.736, 1.664, 1.6, 1.544}
	t[37] = [9]float64{2.504, 2.23, 2.059, 1.932, 1.832, 1.748, 1.676, 1.613, 1.556}
	t[38] = [9]float64{2.514, 2.241, 2.07, 1.944, 1.843, 1.76, 1.688, 1.625, 1.568}
	t[39] = [9]float64{2.524, 2.251, 2.081, 1.955, 1.855, 1.771, 1.699, 1.636, 1.58}
	t[40] = [9]float64{2.533, 2.261, 2.092, 1.966, 1.866, 1.783, 1.711, 1.648, 1.592}
	t[41] = [9]float64{2.542, 2.271, 2.102, 1.976, 1.876, 1.794, 1.722, 1.659, 1.603}
	t[42] = [9]float64{2.551, 2.281, 2.112, 1.987, 1.887, 1.804, 1.733, 1.67, 1.614}
	t[43] = [9]float64{2.56, 2.29, 2.122, 1.997, 1.897, 1.815, 1.743, 1.681, 1.625}
	t[44] = [9]float64{2.568, 2.299, 2.131, 2.006, 1.907, 1.825, 1.754, 1.691, 1.636}
	t[45] = [9]float64{2.577, 2.308, 2.14, 2.016, 1.917, 1.835, 1.764, 1.701, 1.646}
	t[46] = [9]float64{2.585, 2.317, 2.149, 2.026, 1.927, 1.844, 1.773, 1.711, 1.656}
	t[47] = [9]float64{2.592, 2.326, 2.158, 2.035, 1.936, 1.854, 1.783, 1.721, 1.666}
	t[48] = [9]float64{2.6, 2.334, 2.167, 2.044, 1.945, 1.863, 1.792, 1.73, 1.675}
	t[49] = [9]float64{2.608, 2.342, 2.175, 2.052, 1.954, 1.872, 1.802, 1.74, 1.685}
	t[50] = [9]float64{2.615, 2.35, 2.184, 2.061, 1.963, 1.881, 1.811, 1.749, 1.694}
	t[51] = [9]float64{2.622, 2.358, 2.192, 2.069, 1.972, 1.89, 1.82, 1.758, 1.703}
	t[52] = [9]float64{2.629, 2.365, 2.2, 2.077, 1.98, 1.898, 1.828, 1.767, 1.711}
	t[53] = [9]float64{2.636, 2.373, 2.207, 2.085, 1.988, 1.907, 1.837, 1.775, 1.72}
	t[54] = [9]float64{2.643, 2.38, 2.215, 2.093, 1.996, 1.915, 1.845, 1.784, 1.729}
	t[55] = [9]float64{2.65, 2.387, 2.223, 2.101, 2.004, 1.923, 1.853, 1.792, 1.737}
	t[56] = [9]float64{2.656, 2.394, 2.23, 2.109, 2.012, 1.931, 1.861, 1.8, 1.745}
	t[57] = [9]float64{2.663, 2.401, 2.237, 2.116, 2.019, 1.939, 1.869, 1.808, 1.753}
	return t
}
