package pow

import (
	"fmt"
	"time"

	"git.gammaspectra.live/P2Pool/blockpow/utils"
)

// SearchBlocks searches every block of params concurrently. results[i] is the result of params[i],
// exactly as a sequential loop over Search would return. Each routine owns a State.
// routines <= 0 picks a number based on available CPUs.
// The first invalid block aborts the call, with its index in the error.
func SearchBlocks(routines int, params []Params) ([]Result, error) {
	results := make([]Result, len(params))
	if len(params) == 0 {
		return results, nil
	}

	var states []*State
	var start time.Time
	if utils.IsLogLevelDebug() {
		start = time.Now()
	}

	err := utils.SplitWork(routines, uint64(len(params)), func(workIndex uint64, routineIndex int) error {
		r, err := states[routineIndex].Search(&params[workIndex])
		if err != nil {
			return fmt.Errorf("block %d: %w", workIndex, err)
		}
		results[workIndex] = r
		return nil
	}, func(routines, routineIndex int) error {
		if states == nil {
			states = make([]*State, routines)
		}
		states[routineIndex] = NewState()
		return nil
	})
	if err != nil {
		return nil, err
	}

	if utils.IsLogLevelDebug() {
		var found int
		var coordinates float64
		for i := range params {
			if results[i].Found() {
				found++
			}
			coordinates += float64(params[i].BlockSize) * float64(params[i].BlockSize)
		}
		elapsed := time.Since(start)
		utils.Debugf("PoW", "searched %d blocks on %d routines in %s, found %d, up to %sH/s", len(params), len(states), elapsed, found, utils.SiUnits(coordinates/max(elapsed.Seconds(), 1e-9), 2))
	}

	return results, nil
}

// FirstResult returns the earliest found result of results, in input order
func FirstResult(results []Result) (index int, r Result, ok bool) {
	for i, r := range results {
		if r.Found() {
			return i, r, true
		}
	}
	return -1, NoResult, false
}
