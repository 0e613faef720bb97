package memory

import (
	"strings"
	"time"

	"offerfeed/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/google/uuid"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Seed is the YAML document the memory store can be preloaded from.
type Seed struct {
	Commerces []SeedCommerce `yaml:"commerces"`
	Offers    []SeedOffer    `yaml:"offers"`
	Follows   []SeedFollow   `yaml:"follows"`
}

type SeedCommerce struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Address    string   `yaml:"address"`
	Lat        float64  `yaml:"lat"`
	Lng        float64  `yaml:"lng"`
	Categories []string `yaml:"categories"`
	Approved   bool     `yaml:"approved"`
}

type SeedOffer struct {
	ID           string    `yaml:"id"`
	CommerceID   string    `yaml:"commerceId"`
	Title        string    `yaml:"title"`
	Description  string    `yaml:"description"`
	RequiredTier string    `yaml:"requiredTier"`
	StartsAt     time.Time `yaml:"startsAt"`
	EndsAt       time.Time `yaml:"endsAt"`
	CreatedAt    time.Time `yaml:"createdAt"`
}

type SeedFollow struct {
	UserID     string `yaml:"userId"`
	CommerceID string `yaml:"commerceId"`
}

// LoadSeed reads a seed document from a YAML file.
func LoadSeed(path string) (*Seed, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read seed file %s failed", path)
	}

	seed := &Seed{}
	if err := k.UnmarshalWithConf("", seed, koanf.UnmarshalConf{
		Tag: "yaml",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           seed,
			TagName:          "yaml",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeHookFunc(time.RFC3339),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal seed file %s failed", path)
	}

	return seed, nil
}

// Apply loads the seed into the store. Commerces go first so offers and follows can reference them.
func (s *Store) Apply(seed *Seed) error {
	for _, c := range seed.Commerces {
		id, err := parseSeedID(c.ID)
		if err != nil {
			return errors.Wrapf(err, "commerce %q", c.Name)
		}

		s.AddCommerce(&entity.Commerce{
			ID:         id,
			Name:       c.Name,
			Address:    c.Address,
			Location:   entity.GeoPoint{Lat: c.Lat, Lng: c.Lng},
			Categories: c.Categories,
			IsApproved: c.Approved,
			CreatedAt:  s.now(),
			UpdatedAt:  s.now(),
		})
	}

	for _, o := range seed.Offers {
		id, err := parseSeedID(o.ID)
		if err != nil {
			return errors.Wrapf(err, "offer %q", o.Title)
		}
		commerceID, err := uuid.Parse(o.CommerceID)
		if err != nil {
			return errors.Wrapf(err, "offer %q commerce", o.Title)
		}

		s.AddOffer(&entity.Offer{
			ID:           id,
			CommerceID:   commerceID,
			Title:        o.Title,
			Description:  o.Description,
			RequiredTier: o.RequiredTier,
			StartsAt:     o.StartsAt,
			EndsAt:       o.EndsAt,
			CreatedAt:    o.CreatedAt,
		})
	}

	for _, f := range seed.Follows {
		userID, err := uuid.Parse(f.UserID)
		if err != nil {
			return errors.Wrap(err, "follow user")
		}
		commerceID, err := uuid.Parse(f.CommerceID)
		if err != nil {
			return errors.Wrap(err, "follow commerce")
		}

		follow := &entity.Follow{UserID: userID, CommerceID: commerceID, NotificationsEnabled: true}
		if err := s.createSeedFollow(follow); err != nil {
			return err
		}
	}

	return nil
}

func (s *Store) createSeedFollow(follow *entity.Follow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.commerces[follow.CommerceID]; !ok {
		return errors.Errorf("follow references unknown commerce %s", follow.CommerceID)
	}

	follow.ID = uuid.New()
	follow.CreatedAt = s.now()
	s.follows[followKey{userID: follow.UserID, commerceID: follow.CommerceID}] = follow

	return nil
}

// parseSeedID accepts an empty ID and generates one.
func parseSeedID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.New(), nil
	}

	return uuid.Parse(raw)
}
