package demo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skillstub/skillstub/internal/domain/types"
	"github.com/skillstub/skillstub/pkg/logger"
)

// Run executes the complete demo scenario against the stubbed client:
// seed skills, patch a few, delete a few, then fetch and verify the
// badge collection.
func Run(ctx context.Context, client *http.Client, cfg *Config) error {
	log := logger.Named("demo")
	start := time.Now()

	log.Info(ctx, "starting skillstub demo",
		logger.String("baseURL", cfg.BaseURL),
		logger.Int("skills", cfg.NumSkills),
		logger.Int("patches", cfg.NumPatches),
		logger.Int("deletes", cfg.NumDeletes),
	)

	created, err := seedSkills(ctx, client, cfg)
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	if err := patchSkills(ctx, client, cfg, created); err != nil {
		return fmt.Errorf("patching failed: %w", err)
	}

	if err := deleteSkills(ctx, client, cfg, created); err != nil {
		return fmt.Errorf("deleting failed: %w", err)
	}

	skills, err := fetchSkills(ctx, client, cfg)
	if err != nil {
		return fmt.Errorf("listing failed: %w", err)
	}

	badges, err := fetchBadges(ctx, client, cfg)
	if err != nil {
		return fmt.Errorf("badge fetch failed: %w", err)
	}

	if err := verifyBadges(skills, badges); err != nil {
		return fmt.Errorf("badge verification failed: %w", err)
	}

	log.Info(ctx, "demo completed",
		logger.Int("storedSkills", len(skills)),
		logger.Int("earnedBadges", len(badges)),
		logger.String("duration", time.Since(start).String()),
	)
	for _, b := range badges {
		log.Info(ctx, "badge earned",
			logger.String("id", b.ID),
			logger.String("name", b.Name),
		)
	}
	return nil
}

func seedSkills(ctx context.Context, client *http.Client, cfg *Config) ([]types.Skill, error) {
	log := logger.Named("demo")
	planned := generateSkills(cfg.NumSkills)
	created := make([]types.Skill, 0, len(planned))

	for _, p := range planned {
		var skill types.Skill
		status, err := doJSON(ctx, client, http.MethodPost, cfg.url("/skills"),
			map[string]any{"name": p.Name, "level": p.Level}, &skill)
		if err != nil {
			return nil, err
		}
		if status != http.StatusCreated {
			return nil, fmt.Errorf("create returned status %d", status)
		}
		if skill.ID == "" {
			return nil, fmt.Errorf("create returned an empty id")
		}
		if cfg.Verbose {
			log.Info(ctx, "skill created",
				logger.String("id", skill.ID),
				logger.String("name", skill.Name),
				logger.Int("level", skill.Level),
			)
		}
		created = append(created, skill)
	}
	return created, nil
}

func patchSkills(ctx context.Context, client *http.Client, cfg *Config, created []types.Skill) error {
	for i := 0; i < cfg.NumPatches && i < len(created); i++ {
		target := created[i]
		level := randomInt(maxLevel + 1)
		var updated types.Skill
		status, err := doJSON(ctx, client, http.MethodPatch, cfg.url("/skills/"+target.ID),
			map[string]any{"level": level}, &updated)
		if err != nil {
			return err
		}
		if status != http.StatusOK {
			return fmt.Errorf("patch returned status %d", status)
		}
		if updated.Name != target.Name {
			return fmt.Errorf("patch touched the name: %q -> %q", target.Name, updated.Name)
		}
	}
	return nil
}

func deleteSkills(ctx context.Context, client *http.Client, cfg *Config, created []types.Skill) error {
	for i := 0; i < cfg.NumDeletes && i < len(created); i++ {
		// Delete from the tail so patched entries survive.
		target := created[len(created)-1-i]
		status, err := doJSON(ctx, client, http.MethodDelete, cfg.url("/skills/"+target.ID), nil, nil)
		if err != nil {
			return err
		}
		if status != http.StatusNoContent {
			return fmt.Errorf("delete returned status %d", status)
		}

		// A second delete of the same id must report not found.
		status, err = doJSON(ctx, client, http.MethodDelete, cfg.url("/skills/"+target.ID), nil, nil)
		if err != nil {
			return err
		}
		if status != http.StatusNotFound {
			return fmt.Errorf("repeated delete returned status %d, want 404", status)
		}
	}
	return nil
}

func fetchSkills(ctx context.Context, client *http.Client, cfg *Config) ([]types.Skill, error) {
	var skills []types.Skill
	status, err := doJSON(ctx, client, http.MethodGet, cfg.url("/skills"), nil, &skills)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("list returned status %d", status)
	}
	return skills, nil
}

func fetchBadges(ctx context.Context, client *http.Client, cfg *Config) ([]types.Badge, error) {
	var badges []types.Badge
	status, err := doJSON(ctx, client, http.MethodGet, cfg.url("/badges"), nil, &badges)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("badges returned status %d", status)
	}
	return badges, nil
}

// url joins the base URL, prefix, and route path.
func (c *Config) url(path string) string {
	return c.BaseURL + c.Prefix + path
}

// doJSON performs one request with an optional JSON body and decodes
// the response into out when it is non-nil and a body is present.
func doJSON(ctx context.Context, client *http.Client, method, url string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	if out != nil && resp.ContentLength != 0 {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response body: %w", err)
		}
	}
	return resp.StatusCode, nil
}
