// Package external resolves monster identifiers against the D&D 5e SRD
// API. It is used to canonicalize operator-entered monster names and to
// verify stat-block imports; the stat blocks themselves live in the
// monsters repository.
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/lorekeep/bestiary-api/internal/clients/external Client

import (
	"context"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"

	"github.com/lorekeep/bestiary-api/internal/errors"
)

// slugPattern matches characters that should be replaced in slugs
var slugPattern = regexp.MustCompile(`[^a-z0-9-]+`)

var hyphenRuns = regexp.MustCompile(`-+`)

// Slugify converts a display name to the SRD key form, e.g.
// "Adult Red Dragon" -> "adult-red-dragon".
func Slugify(s string) string {
	slug := strings.ToLower(s)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = slugPattern.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")
	return hyphenRuns.ReplaceAllString(slug, "-")
}

// MonsterRef is a reference to an SRD monster
type MonsterRef struct {
	Key  string
	Name string
}

// Client defines the SRD lookups the service needs
type Client interface {
	// ResolveMonster maps a free-text monster name to its canonical
	// SRD reference. Returns NotFound when nothing matches.
	ResolveMonster(ctx context.Context, name string) (*MonsterRef, error)

	// ListMonsters returns every SRD monster reference
	ListMonsters(ctx context.Context) ([]*MonsterRef, error)

	// VerifyMonster checks that a canonical key exists in the SRD
	VerifyMonster(ctx context.Context, key string) error
}

// Config contains configuration options for the SRD client
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	return nil
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// New creates an SRD client with the given configuration
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  &http.Client{Timeout: cfg.HTTPTimeout},
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create D&D 5e API client")
	}

	// Monster references change rarely; cache them
	return &client{
		dnd5eClient: dnd5e.NewCachedClient(baseClient, cfg.CacheTTL),
	}, nil
}

var _ Client = (*client)(nil)

func (c *client) ResolveMonster(ctx context.Context, name string) (*MonsterRef, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	refs, err := c.ListMonsters(ctx)
	if err != nil {
		return nil, err
	}

	want := Slugify(name)
	for _, ref := range refs {
		if ref.Key == want || Slugify(ref.Name) == want {
			return ref, nil
		}
	}

	return nil, errors.NotFoundf("no SRD monster matches %q", name).WithMeta("slug", want)
}

func (c *client) ListMonsters(_ context.Context) ([]*MonsterRef, error) {
	items, err := c.dnd5eClient.ListMonsters()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list SRD monsters")
	}

	refs := make([]*MonsterRef, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		refs = append(refs, &MonsterRef{Key: item.Key, Name: item.Name})
	}
	return refs, nil
}

func (c *client) VerifyMonster(_ context.Context, key string) error {
	if strings.TrimSpace(key) == "" {
		return errors.InvalidArgument("monster key is required")
	}

	monster, err := c.dnd5eClient.GetMonster(key)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeNotFound, "SRD monster "+key+" not found")
	}
	if monster == nil {
		return errors.NotFoundf("SRD monster %s not found", key)
	}
	return nil
}
