package store

import (
	"encoding/json"
	"fmt"

	"zenwallet/internal/core"
)

// stateVersion is written into every persisted blob. Blobs without a
// version field predate versioning and are interpreted as the current
// shape.
const stateVersion = 1

// persistedState is the durable layout: a single JSON-serializable
// record holding the whole financial state.
type persistedState struct {
	Version      int                `json:"version"`
	Transactions []core.Transaction `json:"transactions"`
	Budgets      []core.Budget      `json:"budgets"`
}

func encodeState(s core.FinancialState) ([]byte, error) {
	p := persistedState{
		Version:      stateVersion,
		Transactions: s.Transactions,
		Budgets:      s.Budgets,
	}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}

// decodeState parses a persisted blob. The error return lets callers
// log the diagnostic, but they always degrade to core.EmptyState.
func decodeState(data []byte) (core.FinancialState, error) {
	var p persistedState
	if err := json.Unmarshal(data, &p); err != nil {
		return core.EmptyState(), fmt.Errorf("decode state: %w", err)
	}
	s := core.FinancialState{Transactions: p.Transactions, Budgets: p.Budgets}
	if s.Transactions == nil {
		s.Transactions = []core.Transaction{}
	}
	if s.Budgets == nil {
		s.Budgets = []core.Budget{}
	}
	return s, nil
}

func deleteByID(txs []core.Transaction, id string) ([]core.Transaction, bool) {
	for i, t := range txs {
		if t.ID == id {
			return append(txs[:i:i], txs[i+1:]...), true
		}
	}
	return txs, false
}
