package models

import "encoding/json"

// PairKey упорядоченная пара параметров
type PairKey struct {
	A string
	B string
}

// String возвращает ключ в формате дашборда "A||B"
func (k PairKey) String() string {
	return k.A + "||" + k.B
}

// CorrelationMatrix средние коэффициенты Пирсона для всех пар параметров.
// Строится один раз на загрузку набора данных и дальше не изменяется.
type CorrelationMatrix struct {
	keys    []string
	entries map[PairKey]float64
}

// NewCorrelationMatrix создает пустую матрицу для заданных ключей
func NewCorrelationMatrix(keys []string) *CorrelationMatrix {
	k := make([]string, len(keys))
	copy(k, keys)
	return &CorrelationMatrix{
		keys:    k,
		entries: make(map[PairKey]float64, len(keys)*len(keys)),
	}
}

// Set записывает значение для обеих упорядоченных пар
func (m *CorrelationMatrix) Set(a, b string, r float64) {
	m.entries[PairKey{A: a, B: b}] = r
	m.entries[PairKey{A: b, B: a}] = r
}

// Get возвращает значение для пары
func (m *CorrelationMatrix) Get(a, b string) (float64, bool) {
	r, ok := m.entries[PairKey{A: a, B: b}]
	return r, ok
}

// Keys возвращает ключи параметров в порядке строк матрицы
func (m *CorrelationMatrix) Keys() []string {
	k := make([]string, len(m.keys))
	copy(k, m.keys)
	return k
}

// Len возвращает количество параметров
func (m *CorrelationMatrix) Len() int {
	return len(m.keys)
}

// Rows возвращает матрицу в виде двумерного массива по порядку Keys
func (m *CorrelationMatrix) Rows() [][]float64 {
	rows := make([][]float64, len(m.keys))
	for i, a := range m.keys {
		rows[i] = make([]float64, len(m.keys))
		for j, b := range m.keys {
			rows[i][j] = m.entries[PairKey{A: a, B: b}]
		}
	}
	return rows
}

// Pairs возвращает плоское представление "A||B" -> r
func (m *CorrelationMatrix) Pairs() map[string]float64 {
	out := make(map[string]float64, len(m.entries))
	for k, v := range m.entries {
		out[k.String()] = v
	}
	return out
}

// MarshalJSON сериализует матрицу для тепловой карты
func (m *CorrelationMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Keys   []string           `json:"keys"`
		Values [][]float64        `json:"values"`
		Pairs  map[string]float64 `json:"pairs"`
	}{
		Keys:   m.Keys(),
		Values: m.Rows(),
		Pairs:  m.Pairs(),
	})
}
