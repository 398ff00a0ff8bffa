package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/viper"

	"github.com/JenishBhuju/Clarity/internal/api"
	"github.com/JenishBhuju/Clarity/internal/common"
	"github.com/JenishBhuju/Clarity/internal/model"
	"github.com/JenishBhuju/Clarity/internal/prefs"
	"github.com/JenishBhuju/Clarity/internal/storage"
)

// dataDir resolves where durable state lives. Configurable so tests and
// multiple profiles can point elsewhere.
func dataDir() (string, error) {
	if dir := viper.GetString("data.dir"); dir != "" {
		return dir, nil
	}
	return prefs.DefaultDataDir()
}

func openStores() (*prefs.SessionStore, *prefs.DurableStore, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, nil, err
	}
	return prefs.NewSessionStore(dir), prefs.NewDurableStore(dir), nil
}

func backendTimeout() time.Duration {
	timeout := viper.GetDuration("backend.timeout")
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return timeout
}

// newClient builds an unauthenticated API client.
func newClient() *api.Client {
	return api.NewClient(viper.GetString("backend.url"), backendTimeout())
}

// authedClient builds a client carrying the saved access token. Returns a
// login hint when no one is logged in.
func authedClient(durable *prefs.DurableStore) (*api.Client, error) {
	tokens, err := durable.LoadTokens()
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			return nil, common.NewUserError("You are not logged in. Run 'clarity login <username>' first", err)
		}
		return nil, err
	}

	client := newClient()
	client.SetAccessToken(tokens.Access)
	return client, nil
}

// friendlyAuthError translates a backend auth rejection into a hint the
// user can act on.
func friendlyAuthError(err error) error {
	if errors.Is(err, common.ErrUnauthorized) {
		return common.NewUserError("Your session has expired. Run 'clarity login <username>' to sign in again", err)
	}
	return err
}

func openSnapshotCache() (*storage.SnapshotCache, error) {
	dir, err := dataDir()
	if err != nil {
		return nil, err
	}
	return storage.NewSnapshotCache(filepath.Join(dir, "snapshot.db"))
}

// fetchTransactions lists transactions from the backend, refreshing the
// local snapshot cache on success. Transient failures are retried with
// backoff; when the backend stays unreachable it falls back to the cached
// snapshot instead of failing.
func fetchTransactions(ctx context.Context, client *api.Client, query api.ListQuery) ([]model.Transaction, error) {
	var transactions []model.Transaction
	err := common.WithRetry(ctx, func() error {
		var listErr error
		transactions, listErr = client.ListTransactions(ctx, query)
		return listErr
	}, common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 200 * time.Millisecond,
	})
	if err == nil {
		if cache, cacheErr := openSnapshotCache(); cacheErr == nil {
			if replaceErr := cache.Replace(ctx, transactions, time.Now()); replaceErr != nil {
				slog.Warn("Failed to refresh snapshot cache", "error", replaceErr)
			}
			_ = cache.Close()
		}
		return transactions, nil
	}

	// Exhausted retries wrap the transport error behind ErrMaxRetries, so
	// both sentinels mean "backend is down" here.
	if errors.Is(err, common.ErrBackendUnavailable) || errors.Is(err, common.ErrMaxRetries) {
		cache, cacheErr := openSnapshotCache()
		if cacheErr != nil {
			return nil, err
		}
		defer func() { _ = cache.Close() }()

		cached, fetchedAt, loadErr := cache.Load(ctx)
		if loadErr != nil || len(cached) == 0 {
			return nil, err
		}
		slog.Warn("Backend unreachable, showing cached snapshot", "fetched_at", fetchedAt.Format(time.RFC3339))
		return applyLocalFilter(cached, query), nil
	}

	return nil, friendlyAuthError(err)
}

// applyLocalFilter mirrors the backend's query filters over a cached
// snapshot so offline mode honors the same view.
func applyLocalFilter(transactions []model.Transaction, query api.ListQuery) []model.Transaction {
	if query.Type == "" && query.Category == "" && query.DateFrom == "" && query.DateTo == "" {
		return transactions
	}

	filtered := make([]model.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if query.Type != "" && string(t.Type) != query.Type {
			continue
		}
		if query.Category != "" && string(t.Category) != query.Category {
			continue
		}
		if query.DateFrom != "" && t.Date < query.DateFrom {
			continue
		}
		if query.DateTo != "" && t.Date > query.DateTo {
			continue
		}
		filtered = append(filtered, t)
	}
	return filtered
}

// milestoneThresholds reads the configured milestone amounts. Amounts are
// decimal strings in the config; the detector validates ordering.
func milestoneThresholds() ([]int64, error) {
	raw := viper.GetStringSlice("milestones.thresholds")
	if len(raw) == 0 {
		return nil, nil
	}

	thresholds := make([]int64, 0, len(raw))
	for _, amount := range raw {
		cents, err := model.ParseCents(amount)
		if err != nil {
			return nil, fmt.Errorf("invalid milestone threshold %q: %w", amount, err)
		}
		if cents <= 0 {
			return nil, fmt.Errorf("milestone threshold %q must be positive", amount)
		}
		thresholds = append(thresholds, cents)
	}
	return thresholds, nil
}
