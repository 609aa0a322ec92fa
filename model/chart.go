package model

import (
	"encoding/json"
	"fmt"
	"math"
)

// ChartData is an axis-aligned label/series structure handed to chart
// renderers. Every dataset has exactly one entry per label.
type ChartData struct {
	Labels   []string  `json:"labels" yaml:"labels"`
	Datasets []Dataset `json:"datasets" yaml:"datasets"`
}

// Dataset is one named series. A nil entry is a gap (missing data), which is
// different from a zero value.
type Dataset struct {
	Label string     `json:"label" yaml:"label"`
	Data  []*float64 `json:"data" yaml:"data"`
}

// Len returns the number of labels
func (c *ChartData) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Labels)
}

// Validate checks that every dataset is aligned with the labels.
func (c *ChartData) Validate() error {
	if c == nil {
		return fmt.Errorf("nil chart data")
	}
	for i, ds := range c.Datasets {
		if len(ds.Data) != len(c.Labels) {
			return fmt.Errorf("dataset %d (%q) has %d values for %d labels", i, ds.Label, len(ds.Data), len(c.Labels))
		}
	}
	return nil
}

// Values returns the non-gap values of the dataset in order.
func (d Dataset) Values() []float64 {
	out := make([]float64, 0, len(d.Data))
	for _, v := range d.Data {
		if v != nil {
			out = append(out, *v)
		}
	}
	return out
}

// MarshalJSON writes infinite and NaN values as null, since JSON has no
// number for them.
func (d Dataset) MarshalJSON() ([]byte, error) {
	type plain Dataset
	out := plain{Label: d.Label, Data: make([]*float64, len(d.Data))}
	for i, v := range d.Data {
		if v != nil && finite(*v) {
			out.Data[i] = v
		}
	}
	return json.Marshal(out)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Gaps returns the number of missing values in the dataset.
func (d Dataset) Gaps() int {
	n := 0
	for _, v := range d.Data {
		if v == nil {
			n++
		}
	}
	return n
}
