// Package app holds the application state controller: the single
// in-memory financial state used for rendering, synchronized from the
// record store after every mutation.
package app

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync"

	"zenwallet/internal/core"
	applog "zenwallet/internal/log"
	"zenwallet/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// InsightSource produces insights for a transaction collection.
// *insight.Client satisfies it; tests supply fakes.
type InsightSource interface {
	FinancialInsights(ctx context.Context, txs []core.Transaction) ([]core.AIInsight, error)
}

// Controller routes user intents to the store and keeps a read-mostly
// cache of the durable state. The cache is never patched in place:
// every accepted mutation writes through the store and then replaces
// the cache wholesale by re-reading. That costs a full read per
// mutation and guarantees the rendered state cannot diverge from the
// durable copy.
type Controller struct {
	mu    sync.RWMutex
	state core.FinancialState

	store    store.Store
	insights InsightSource
	logger   *applog.Logger
	flight   singleflight.Group
}

// New builds a controller and populates the cache from the store.
// insights may be nil when no insight service is configured.
func New(ctx context.Context, st store.Store, insights InsightSource, logger *applog.Logger) (*Controller, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}
	c := &Controller{
		store:    st,
		insights: insights,
		logger:   logger.WithComponent(applog.ComponentController),
	}
	if err := c.reload(ctx); err != nil {
		return nil, fmt.Errorf("load initial state: %w", err)
	}
	c.logger.InfoContext(ctx, "State loaded",
		applog.FieldCount, len(c.state.Transactions))
	return c, nil
}

// State returns a snapshot of the cached financial state.
func (c *Controller) State() core.FinancialState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state.Clone()
}

// AddTransaction assigns an id when absent, validates at the creation
// boundary, writes through the store and reloads. The returned
// transaction carries the assigned id.
func (c *Controller) AddTransaction(ctx context.Context, t core.Transaction) (core.Transaction, error) {
	if t.ID == "" {
		// Random ids; collision probability is accepted, not eliminated.
		t.ID = uuid.NewString()
	}
	if err := t.Validate(); err != nil {
		return core.Transaction{}, err
	}
	if err := c.store.AddTransaction(ctx, t); err != nil {
		return core.Transaction{}, fmt.Errorf("add transaction: %w", err)
	}
	if err := c.reload(ctx); err != nil {
		return core.Transaction{}, err
	}
	c.logger.InfoContext(ctx, "Transaction added",
		applog.FieldTransactionID, t.ID,
		applog.FieldType, string(t.Type),
		applog.FieldCategory, string(t.Category),
		applog.FieldAmountCents, t.Amount.Cents)
	return t, nil
}

// DeleteTransaction removes by id (no-op for unknown ids) and reloads.
func (c *Controller) DeleteTransaction(ctx context.Context, id string) error {
	if err := c.store.DeleteTransaction(ctx, id); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if err := c.reload(ctx); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "Transaction removed", applog.FieldTransactionID, id)
	return nil
}

// Insights fetches insights for the current transaction collection.
// This is the degradation boundary from the error-handling design: any
// failure of the remote service yields an empty list plus a logged
// diagnostic and never reaches the view as an error. Concurrent
// requests for the same collection are collapsed into one remote call,
// keyed by a fingerprint of the transaction ids; the shared call is
// detached from any single requester's cancellation and bounded only
// by the client's own timeout.
func (c *Controller) Insights(ctx context.Context) []core.AIInsight {
	if c.insights == nil {
		c.logger.DebugContext(ctx, "Insight service not configured")
		return []core.AIInsight{}
	}

	txs := c.State().Transactions
	v, err, _ := c.flight.Do(insightKey(txs), func() (interface{}, error) {
		return c.insights.FinancialInsights(context.WithoutCancel(ctx), txs)
	})
	if err != nil {
		c.logger.ErrorContext(ctx, "Insight request failed", applog.FieldError, err)
		return []core.AIInsight{}
	}
	insights, ok := v.([]core.AIInsight)
	if !ok || insights == nil {
		return []core.AIInsight{}
	}
	return insights
}

// insightKey fingerprints a transaction collection by its ids so that
// only requests over identical state share one in-flight call.
func insightKey(txs []core.Transaction) string {
	h := fnv.New64a()
	for _, t := range txs {
		h.Write([]byte(t.ID))
		h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 16)
}

// reload replaces the cache wholesale from the store.
func (c *Controller) reload(ctx context.Context) error {
	state, err := c.store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("reload state: %w", err)
	}
	c.mu.Lock()
	c.state = state
	c.mu.Unlock()
	return nil
}
