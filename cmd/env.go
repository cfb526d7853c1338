package cmd

import (
	"database/sql"
	"fmt"

	"github.com/mindwell/companion/internal"
)

// appEnv bundles the opened store and resolved profile for a command run.
type appEnv struct {
	cfg     *internal.Config
	db      *sql.DB
	store   *internal.Store
	profile *internal.Profile
}

func (e *appEnv) close() {
	if e.db != nil {
		if err := e.db.Close(); err != nil {
			internal.LogWarn("Failed to close database: %v", err)
		}
	}
}

// openEnv loads config, opens the database, and resolves the profile from
// the --user flag or the config default. When create is false a missing
// profile is an error instead of being silently created.
func openEnv(create bool) (*appEnv, error) {
	cfg, err := internal.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	dir, err := internal.ResolveDataDir(dataDir, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory: %w", err)
	}

	db, err := internal.OpenDatabase(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	env := &appEnv{
		cfg:   cfg,
		db:    db,
		store: internal.NewStore(db),
	}

	name := userName
	if name == "" {
		name = cfg.DefaultUser
	}
	if name == "" {
		env.close()
		return nil, fmt.Errorf("no profile selected: pass --user or set default_user in ~/%s", internal.ConfigFile)
	}

	if create {
		env.profile, err = env.store.GetOrCreateProfile(name)
	} else {
		env.profile, err = env.store.GetProfile(name)
	}
	if err != nil {
		env.close()
		return nil, err
	}

	return env, nil
}
