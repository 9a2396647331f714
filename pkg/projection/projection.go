// Package projection derives filtered, computed views from a cache snapshot.
// All functions are pure; derived values are never written back to the cache.
package projection

import (
	"math/big"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lip-protocol/lip-coordinator/pkg/models"
)

// IntentView is an intent enriched with its derived progress fields for the
// presentation layer
type IntentView struct {
	models.Intent
	ProgressRatio float64  `json:"progress_ratio"`
	Remaining     *big.Int `json:"remaining"`
	IsComplete    bool     `json:"is_complete"`
}

// viewOf computes the derived fields for one intent
func viewOf(intent models.Intent) IntentView {
	return IntentView{
		Intent:        intent,
		ProgressRatio: intent.ProgressRatio(),
		Remaining:     intent.Remaining(),
		IsComplete:    intent.IsComplete(),
	}
}

// OwnedIntents returns the intents owned by account, ordered by id ascending
func OwnedIntents(intents []models.Intent, account common.Address) []IntentView {
	views := []IntentView{}
	for _, intent := range intents {
		if intent.Owner == account {
			views = append(views, viewOf(intent))
		}
	}
	sortByID(views)
	return views
}

// ExecutableIntents returns the intents any account may still execute chunks
// against, ordered by id ascending
func ExecutableIntents(intents []models.Intent) []IntentView {
	views := []IntentView{}
	for _, intent := range intents {
		if intent.IsExecutable() {
			views = append(views, viewOf(intent))
		}
	}
	sortByID(views)
	return views
}

// AllIntents returns every cached intent with derived fields, ordered by id
// ascending
func AllIntents(intents []models.Intent) []IntentView {
	views := make([]IntentView, 0, len(intents))
	for _, intent := range intents {
		views = append(views, viewOf(intent))
	}
	sortByID(views)
	return views
}

func sortByID(views []IntentView) {
	sort.Slice(views, func(i, j int) bool {
		return views[i].ID < views[j].ID
	})
}
