package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
	"github.com/catalogadmin/console/internal/pkg/metrics"
	"github.com/catalogadmin/console/internal/pkg/validation"
)

var errNullList = errors.New("list body is null")

// Collection lists one resource kind and renders it.
//
// Every List call takes a number from a per-kind sequence. A response is
// rendered only if no newer List call for the same kind has been issued
// since, so a slow response can never overwrite a fresher one.
type Collection[T domain.Entity] struct {
	kind    domain.ResourceKind
	api     ports.Requester
	session *Session
	view    ports.View
	valid   *validation.Validator
	logger  zerolog.Logger

	seq      atomic.Uint64
	renderMu sync.Mutex
}

func NewCollection[T domain.Entity](
	kind domain.ResourceKind,
	api ports.Requester,
	session *Session,
	view ports.View,
	valid *validation.Validator,
	logger zerolog.Logger,
) *Collection[T] {
	return &Collection[T]{
		kind:    kind,
		api:     api,
		session: session,
		view:    view,
		valid:   valid,
		logger:  logger.With().Str("kind", string(kind)).Logger(),
	}
}

// List fetches the collection and renders the entries that carry their
// identifying fields. On any failure nothing is rendered and the previous
// rendering stays.
func (c *Collection[T]) List(ctx context.Context) error {
	cred, err := c.session.Require()
	if err != nil {
		c.logger.Warn().Err(err).Msg("list skipped")
		return err
	}

	n := c.seq.Add(1)
	resp, err := c.api.Do(ctx, ports.Request{
		Method:     http.MethodGet,
		Path:       c.kind.Path(),
		Credential: cred,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var raw []json.RawMessage
	err = json.NewDecoder(resp.Body).Decode(&raw)
	if err == nil && raw == nil {
		err = errNullList
	}
	if err != nil {
		derr := &domain.DecodeError{Path: c.kind.Path(), Err: err}
		c.logger.Error().Err(derr).Msg("list response is not an array")
		return derr
	}

	items := c.keep(raw)

	c.renderMu.Lock()
	defer c.renderMu.Unlock()
	if latest := c.seq.Load(); n != latest {
		metrics.StaleListResponsesTotal.WithLabelValues(string(c.kind)).Inc()
		c.logger.Debug().Uint64("seq", n).Uint64("latest", latest).Msg("stale list response discarded")
		return nil
	}
	c.view.RenderList(c.kind, items)
	return nil
}

func (c *Collection[T]) keep(raw []json.RawMessage) []domain.Entity {
	items := make([]domain.Entity, 0, len(raw))
	dropped := 0
	for _, r := range raw {
		var v T
		if err := json.Unmarshal(r, &v); err != nil || !c.valid.Valid(v) {
			dropped++
			continue
		}
		items = append(items, v)
	}
	if dropped > 0 {
		metrics.ListEntriesDroppedTotal.WithLabelValues(string(c.kind)).Add(float64(dropped))
		c.logger.Warn().Int("dropped", dropped).Int("kept", len(items)).Msg("skipped malformed list entries")
	}
	return items
}
