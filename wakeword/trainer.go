package wakeword

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
)

// Train builds a template from several recordings of the same utterance
// and stores it in the detector.
//
// Features are extracted per recording; recordings shorter than one
// analysis frame are discarded. The remaining feature sequences are
// resampled to the median sequence length by nearest-index lookup and
// averaged coefficient-wise. The median (rather than the mean) keeps one
// anomalously long or short recording from stretching the template.
//
// On failure the previous template is left untouched. Returns
// [ErrEmptyInput] when samples is empty and [ErrNoValidSamples] when every
// recording was discarded.
func (d *Detector) Train(samples [][]float64) error {
	if len(samples) == 0 {
		return ErrEmptyInput
	}

	var all [][][]float64
	for _, sample := range samples {
		features := d.extractor.Extract(sample)
		if len(features) > 0 {
			all = append(all, features)
		}
	}
	if len(all) == 0 {
		return ErrNoValidSamples
	}

	target := medianRows(all)
	numCoefficients := d.Config().NumCoefficients

	template := make([][]float64, target)
	for i := range template {
		template[i] = make([]float64, numCoefficients)
	}

	for _, features := range all {
		for i := 0; i < target; i++ {
			vecmath.AddBlockInPlace(template[i], features[nearestRow(i, len(features), target)])
		}
	}

	inv := 1 / float64(len(all))
	for i := range template {
		vecmath.ScaleBlock(template[i], template[i], inv)
	}

	d.template = template
	return nil
}

// medianRows returns the upper median of the row counts.
func medianRows(all [][][]float64) int {
	lengths := make([]int, len(all))
	for i, features := range all {
		lengths[i] = len(features)
	}
	sort.Ints(lengths)
	return lengths[len(lengths)/2]
}

// nearestRow maps output row i of a target-length resample onto a source
// row index, clamped to the valid range.
func nearestRow(i, srcRows, target int) int {
	if target == 1 {
		return 0
	}
	src := int(math.Round(float64(i) * float64(srcRows-1) / float64(target-1)))
	if src > srcRows-1 {
		src = srcRows - 1
	}
	return src
}
