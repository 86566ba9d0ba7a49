/*

This file decodes pool snapshots into a PoolSet. A snapshot is the pool mapping exported from the
pool subgraph and is accepted in three shapes:

  - an object keyed by pool address: {"0xabc...": {...}, "0xdef...": null}
  - an array of pools, keyed by their "id"
  - a raw subgraph response: {"data": {"pools": [...]}}

*/

package datafetcher

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/elys-network/poolboard/internal/logger"
	"github.com/elys-network/poolboard/internal/types"
)

var snapshotLogger = logger.GetForComponent("pool_snapshot")

var ErrInvalidPoolSet = errors.New("invalid pool set")

// LoadPoolsFromFile reads and decodes a pool snapshot file.
func LoadPoolsFromFile(path string) (*types.PoolSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pool snapshot: %w", err)
	}
	defer f.Close()

	set, err := DecodePools(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	snapshotLogger.Info().
		Str("path", path).
		Int("pools", set.Len()).
		Msg("Loaded pool snapshot")
	return set, nil
}

// DecodePools decodes a pool snapshot in any of the accepted shapes.
func DecodePools(r io.Reader) (*types.PoolSet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read pool snapshot: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidPoolSet)
	}

	switch data[0] {
	case '[':
		return decodePoolArray(data)
	case '{':
		return decodePoolObject(data)
	default:
		return nil, fmt.Errorf("%w: expected a JSON object or array", ErrInvalidPoolSet)
	}
}

type subgraphEnvelope struct {
	Data *struct {
		Pools json.RawMessage `json:"pools"`
	} `json:"data"`
}

func decodePoolObject(data []byte) (*types.PoolSet, error) {
	var envelope subgraphEnvelope
	if err := json.Unmarshal(data, &envelope); err == nil && envelope.Data != nil && len(envelope.Data.Pools) > 0 {
		return decodePoolArray(envelope.Data.Pools)
	}

	var raw map[string]*types.Pool
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoolSet, err)
	}

	pools := make(map[string]*types.Pool, len(raw))
	absent := 0
	for address, pool := range raw {
		address = strings.TrimSpace(address)
		if address == "" {
			return nil, fmt.Errorf("%w: empty pool address key", ErrInvalidPoolSet)
		}
		if pool == nil {
			absent++
		} else if pool.ID == "" {
			pool.ID = address
		}
		pools[address] = pool
	}

	if absent > 0 {
		snapshotLogger.Warn().Int("absent", absent).Msg("Pool snapshot contains absent entries")
	}
	return types.NewPoolSet(pools), nil
}

func decodePoolArray(data []byte) (*types.PoolSet, error) {
	var list []*types.Pool
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPoolSet, err)
	}

	pools := make(map[string]*types.Pool, len(list))
	for i, pool := range list {
		if pool == nil {
			snapshotLogger.Warn().Int("index", i).Msg("Skipping null pool entry")
			continue
		}
		id := strings.TrimSpace(pool.ID)
		if id == "" {
			return nil, fmt.Errorf("%w: pool at index %d has no id", ErrInvalidPoolSet, i)
		}
		if _, dup := pools[id]; dup {
			snapshotLogger.Warn().Str("pool", id).Msg("Duplicate pool id, keeping the last entry")
		}
		pools[id] = pool
	}
	return types.NewPoolSet(pools), nil
}
