// Package farm applies nerfs to crops kept in the crop bank and records the
// outcome of each one.
package farm

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/statnerf/internal/nerf"
	"github.com/vovakirdan/statnerf/internal/storage"
)

// Summary counts what a batch run did.
type Summary struct {
	Checked     int // Crops looked at
	Nerfed      int // Crops whose stats changed
	Unreachable int // Crops left above the bound
}

// Outcome is the result of nerfing one banked crop.
type Outcome struct {
	Crop   storage.Crop
	Result nerf.Result
}

// Preview describes what a nerf would do to a banked crop without running it.
type Preview struct {
	Crop      storage.Crop
	Score     int64
	Slack     int  // Points that can still be taken off before the floor
	Reachable bool // Whether the bound can be met above the floor
}

// Farm nerfs banked crops.
type Farm struct {
	store  *storage.Store
	nerfer *nerf.Nerfer
	logger *log.Logger
}

// New creates a Farm. logger may be nil.
func New(store *storage.Store, nerfer *nerf.Nerfer, logger *log.Logger) *Farm {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Farm{store: store, nerfer: nerfer, logger: logger}
}

// NerfCrop nerfs the crop with the given ID. The crop and a history entry are
// only written when the stats changed or the bound was unreachable.
func (f *Farm) NerfCrop(id string) (Outcome, error) {
	crop, err := f.store.Crop(id)
	if err != nil {
		return Outcome{}, err
	}
	return f.apply(*crop)
}

// NerfAll nerfs every banked crop. It stops at the first storage error.
func (f *Farm) NerfAll() (Summary, []Outcome, error) {
	var summary Summary

	crops, err := f.store.ListCrops()
	if err != nil {
		return summary, nil, err
	}

	outcomes := make([]Outcome, 0, len(crops))
	for _, crop := range crops {
		out, err := f.apply(crop)
		if err != nil {
			return summary, outcomes, err
		}
		outcomes = append(outcomes, out)

		summary.Checked++
		if out.Result.Changed() {
			summary.Nerfed++
		}
		if !out.Result.Reached {
			summary.Unreachable++
		}
	}

	f.logger.Info("batch complete",
		"checked", summary.Checked,
		"nerfed", summary.Nerfed,
		"unreachable", summary.Unreachable)

	return summary, outcomes, nil
}

// Preview lists the banked crops scoring above the current bound.
func (f *Farm) Preview() ([]Preview, int, error) {
	crops, err := f.store.ListCrops()
	if err != nil {
		return nil, 0, err
	}

	maxScore := f.nerfer.MaxScore()
	var over []Preview
	for _, crop := range crops {
		score := nerf.Score(&crop.Stats)
		if score <= int64(maxScore) {
			continue
		}
		over = append(over, Preview{
			Crop:      crop,
			Score:     score,
			Slack:     nerf.Slack(&crop.Stats),
			Reachable: nerf.Reachable(&crop.Stats, maxScore),
		})
	}
	return over, len(crops), nil
}

func (f *Farm) apply(crop storage.Crop) (Outcome, error) {
	stats := crop.Stats
	res := f.nerfer.Nerf(&stats)

	out := Outcome{Crop: crop, Result: res}
	if !res.Changed() && res.Reached {
		f.logger.Debug("crop within bound", "crop", crop.Name, "score", res.ScoreBefore, "max", res.MaxScore)
		return out, nil
	}

	_, err := f.store.RecordNerf(storage.NerfEntry{
		CropID:      crop.ID,
		Before:      res.Before,
		After:       res.After,
		ScoreBefore: res.ScoreBefore,
		ScoreAfter:  res.ScoreAfter,
		MaxScore:    res.MaxScore,
		Reached:     res.Reached,
	})
	if err != nil {
		return out, fmt.Errorf("farm: cannot record nerf for %s: %w", crop.ID, err)
	}

	out.Crop.Stats = res.After
	f.logger.Info("crop nerfed",
		"crop", crop.Name,
		"before", res.Before.String(),
		"after", res.After.String(),
		"steps", len(res.Steps))

	return out, nil
}
