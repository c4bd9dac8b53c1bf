package actors

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rune-api/internal/entities/pf2e"
	"github.com/KirkDiggler/rune-api/internal/errors"
	"github.com/KirkDiggler/rune-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rune-api/internal/redis"
)

const (
	actorKeyPrefix  = "actor:"
	typeIndexPrefix = "actor:type:"

	// Error messages
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis actor repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}
	if !input.Actor.Type.IsValid() {
		return nil, errors.InvalidArgumentf("unknown actor type %q", input.Actor.Type)
	}

	key := actorKeyPrefix + input.Actor.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	actor := input.Actor.Clone()
	now := r.clock.Now().Unix()
	actor.CreatedAt = now
	actor.UpdatedAt = now

	data, err := json.Marshal(actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // actor mirrors live as long as the table
	pipe.SAdd(ctx, typeIndexPrefix+string(actor.Type), actor.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	return &CreateOutput{Actor: actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var actor pf2e.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}

	return &GetOutput{Actor: &actor}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.Actor.ID

	// Get existing actor to maintain the type index
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", input.Actor.ID)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var existing pf2e.Actor
	if err := json.Unmarshal([]byte(result), &existing); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal existing actor")
	}

	actor := input.Actor.Clone()
	actor.CreatedAt = existing.CreatedAt
	actor.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)

	if existing.Type != actor.Type {
		pipe.SRem(ctx, typeIndexPrefix+string(existing.Type), actor.ID)
		pipe.SAdd(ctx, typeIndexPrefix+string(actor.Type), actor.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}

	return &UpdateOutput{Actor: actor}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	getOutput, err := r.Get(ctx, GetInput(input))
	if err != nil {
		return nil, err
	}
	actor := getOutput.Actor

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID)
	pipe.SRem(ctx, typeIndexPrefix+string(actor.Type), input.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var ids []string
	var err error

	if input.Type != "" {
		ids, err = r.client.SMembers(ctx, typeIndexPrefix+string(input.Type)).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list actors of type %s", input.Type)
		}
	} else {
		for _, t := range []pf2e.ActorType{pf2e.ActorTypeCharacter, pf2e.ActorTypeParty} {
			members, merr := r.client.SMembers(ctx, typeIndexPrefix+string(t)).Result()
			if merr != nil {
				return nil, errors.Wrapf(merr, "failed to list actors of type %s", t)
			}
			ids = append(ids, members...)
		}
	}

	actors := make([]*pf2e.Actor, 0, len(ids))
	for _, id := range ids {
		getOutput, err := r.Get(ctx, GetInput{ID: id})
		if err != nil {
			// Stale index entries are pruned rather than failing the list
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "actor not found, cleaning up index",
					"actor_id", id)
				if input.Type != "" {
					r.client.SRem(ctx, typeIndexPrefix+string(input.Type), id)
				}
				continue
			}
			return nil, errors.Wrapf(err, "failed to get actor %s", id)
		}
		actors = append(actors, getOutput.Actor)
	}

	return &ListOutput{Actors: actors}, nil
}
