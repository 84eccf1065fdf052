package root

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/elonmusk64/LevelUP-Club/internal/auth"
	"github.com/elonmusk64/LevelUP-Club/internal/config"
	"github.com/elonmusk64/LevelUP-Club/internal/engine"
	"github.com/elonmusk64/LevelUP-Club/internal/storage"
)

type app struct {
	cfg  *config.Config
	db   *sql.DB
	svc  *engine.Service
	auth *auth.Service
}

func openApp(ctx context.Context) (*app, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return &app{
		cfg:  cfg,
		db:   db,
		svc:  engine.NewService(db),
		auth: auth.NewService(db, cfg.SessionTTL),
	}, cleanup, nil
}

// currentUser resolves the logged-in user id from the persisted session file.
func (a *app) currentUser(ctx context.Context) (string, error) {
	raw, err := os.ReadFile(a.cfg.SessionFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", errors.New("not logged in (run: levelup login)")
		}
		return "", fmt.Errorf("read session file: %w", err)
	}
	token := strings.TrimSpace(string(raw))
	userID, err := a.auth.Verify(ctx, token)
	if err != nil {
		if errors.Is(err, auth.ErrSessionExpired) {
			return "", errors.New("session expired (run: levelup login)")
		}
		return "", err
	}
	return userID, nil
}

func (a *app) saveSession(token string) error {
	if err := os.WriteFile(a.cfg.SessionFile, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	return nil
}

func (a *app) clearSession() error {
	if err := os.Remove(a.cfg.SessionFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}
