package main

import (
	"fmt"

	"github.com/lorekeep/bestiary-api/internal/clients/external"
	"github.com/lorekeep/bestiary-api/internal/config"
	"github.com/lorekeep/bestiary-api/internal/dice"
	"github.com/lorekeep/bestiary-api/internal/orchestrators/check"
	"github.com/lorekeep/bestiary-api/internal/pkg/idgen"
	"github.com/lorekeep/bestiary-api/internal/redis"
	"github.com/lorekeep/bestiary-api/internal/repositories/bestiary"
	"github.com/lorekeep/bestiary-api/internal/repositories/chatlog"
	"github.com/lorekeep/bestiary-api/internal/repositories/monsters"
	"github.com/lorekeep/bestiary-api/internal/repositories/settings"
)

// deps bundles everything a command might need. Commands pull what they
// use; construction is cheap and connections dial lazily.
type deps struct {
	Service      check.Service
	SettingsRepo settings.Repository
	MonsterRepo  monsters.Repository
	SRDClient    external.Client
}

// wire builds the service graph from environment configuration
func wire() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := redis.NewClient(cfg.RedisAddr, &redis.Options{PoolSize: cfg.RedisPoolSize})
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	settingsRepo, err := settings.NewRedisRepository(&settings.Config{Client: client})
	if err != nil {
		return nil, err
	}
	monsterRepo, err := monsters.NewRedisRepository(&monsters.Config{Client: client})
	if err != nil {
		return nil, err
	}
	chatLogRepo, err := chatlog.NewRedisRepository(&chatlog.Config{
		Client:      client,
		RecentLimit: int64(cfg.ChatLogLimit),
	})
	if err != nil {
		return nil, err
	}
	bestiaryRepo, err := bestiary.NewRedisRepository(&bestiary.Config{Client: client})
	if err != nil {
		return nil, err
	}

	var srdClient external.Client
	if cfg.SRDBaseURL != "" {
		srdClient, err = external.New(&external.Config{BaseURL: cfg.SRDBaseURL})
		if err != nil {
			return nil, err
		}
	}

	service, err := check.NewOrchestrator(&check.Config{
		SettingsRepo:   settingsRepo,
		MonsterRepo:    monsterRepo,
		ChatLogRepo:    chatLogRepo,
		BestiaryRepo:   bestiaryRepo,
		Roller:         dice.NewToolkitRoller(nil),
		IDGenerator:    idgen.NewUUID("msg"),
		ExternalClient: srdClient,
	})
	if err != nil {
		return nil, err
	}

	return &deps{
		Service:      service,
		SettingsRepo: settingsRepo,
		MonsterRepo:  monsterRepo,
		SRDClient:    srdClient,
	}, nil
}
