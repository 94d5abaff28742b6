package participant

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/CheckerNetwork/spark-observer/internal/domain"
	"github.com/CheckerNetwork/spark-observer/internal/logger"
	"github.com/CheckerNetwork/spark-observer/internal/store"
)

// Resolver maps external participant addresses to stable internal ids,
// creating ids only for genuinely new addresses.
type Resolver struct {
	store store.StatsStore
}

// NewResolver creates a new identity resolver
func NewResolver(st store.StatsStore) *Resolver {
	return &Resolver{store: st}
}

// Resolve maps every given address to its participant id. The same address
// always resolves to the same id, across calls and across concurrent callers.
//
// The lookup runs in two phases. A plain INSERT ... ON CONFLICT for the whole
// input would advance the id sequence for every already-known address on
// every call, and with a scan touching the same few thousand addresses over
// and over that would slowly exhaust the id space. So known addresses are
// fetched first and only the remainder is inserted; the insert still uses
// ON CONFLICT (with a no-op update to populate RETURNING) to absorb the race
// with a concurrent caller registering the same address between the two
// phases.
func (r *Resolver) Resolve(ctx context.Context, addresses []string) (map[string]int64, error) {
	unique := dedupe(addresses)

	ids := make(map[string]int64, len(unique))

	known, err := r.store.FindParticipants(ctx, unique)
	if err != nil {
		return nil, err
	}
	for _, p := range known {
		ids[p.Address] = p.ID
	}

	unknown := make([]string, 0, len(unique)-len(known))
	for _, address := range unique {
		if _, ok := ids[address]; !ok {
			unknown = append(unknown, address)
		}
	}
	logger.Debug("Resolving participant identities",
		zap.Int("total", len(unique)),
		zap.Int("known", len(known)),
		zap.Int("new", len(unknown)))

	if len(unknown) == 0 {
		return ids, nil
	}

	created, err := r.store.CreateParticipants(ctx, unknown)
	if err != nil {
		return nil, err
	}
	if len(created) != len(unknown) {
		return nil, fmt.Errorf("%w: got %d rows for %d addresses",
			domain.ErrResolverCountMismatch, len(created), len(unknown))
	}
	for _, p := range created {
		ids[p.Address] = p.ID
	}

	return ids, nil
}

// dedupe collapses duplicate addresses while preserving first-seen order
func dedupe(addresses []string) []string {
	seen := make(map[string]struct{}, len(addresses))
	unique := make([]string, 0, len(addresses))
	for _, address := range addresses {
		if _, ok := seen[address]; ok {
			continue
		}
		seen[address] = struct{}{}
		unique = append(unique, address)
	}
	return unique
}
