package monsters_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
	"github.com/lorekeep/bestiary-api/internal/pkg/clock"
	"github.com/lorekeep/bestiary-api/internal/repositories/monsters"
	"github.com/lorekeep/bestiary-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    monsters.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	repo, err := monsters.NewRedisRepository(&monsters.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testMonster() *entities.MonsterStatBlock {
	return &entities.MonsterStatBlock{
		ID:              "owlbear",
		Name:            "Owlbear",
		CreatureType:    "monstrosity",
		Size:            "Large",
		ArmorClass:      13,
		HitPoints:       59,
		HitPointFormula: "7d10+21",
		ChallengeRating: "3",
		AbilityScores: map[entities.Ability]int32{
			entities.AbilityStrength:     20,
			entities.AbilityDexterity:    12,
			entities.AbilityConstitution: 17,
			entities.AbilityIntelligence: 3,
			entities.AbilityWisdom:       12,
			entities.AbilityCharisma:     7,
		},
		Speed:  map[string]int32{"walk": 40},
		Senses: map[string]int32{"darkvision": 60},
	}
}

func (s *RedisRepositoryTestSuite) TestPutThenGet() {
	monster := s.testMonster()

	_, err := s.repo.Put(s.ctx, monsters.PutInput{Monster: monster})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, monsters.GetInput{ID: "owlbear"})
	s.NoError(err)
	s.Equal("Owlbear", output.Monster.Name)
	s.Equal(int32(59), output.Monster.HitPoints)
	s.Equal(s.clock.Now().Unix(), output.Monster.CreatedAt)
	s.Equal(s.clock.Now().Unix(), output.Monster.UpdatedAt)
}

func (s *RedisRepositoryTestSuite) TestPutReplacesAndStampsUpdatedAt() {
	monster := s.testMonster()
	_, err := s.repo.Put(s.ctx, monsters.PutInput{Monster: monster})
	s.Require().NoError(err)
	created := monster.CreatedAt

	s.clock.Advance(time.Hour)

	monster.ArmorClass = 15
	_, err = s.repo.Put(s.ctx, monsters.PutInput{Monster: monster})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, monsters.GetInput{ID: "owlbear"})
	s.NoError(err)
	s.Equal(int32(15), output.Monster.ArmorClass)
	s.Equal(created, output.Monster.CreatedAt)
	s.Equal(created+3600, output.Monster.UpdatedAt)
}

func (s *RedisRepositoryTestSuite) TestPutValidation() {
	s.Run("nil monster", func() {
		_, err := s.repo.Put(s.ctx, monsters.PutInput{})
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("empty ID", func() {
		_, err := s.repo.Put(s.ctx, monsters.PutInput{Monster: &entities.MonsterStatBlock{Name: "Nameless"}})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, monsters.GetInput{ID: "tarrasque"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListSortedByName() {
	zombie := s.testMonster()
	zombie.ID = "zombie"
	zombie.Name = "Zombie"

	for _, m := range []*entities.MonsterStatBlock{zombie, s.testMonster()} {
		_, err := s.repo.Put(s.ctx, monsters.PutInput{Monster: m})
		s.Require().NoError(err)
	}

	output, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Require().Len(output.Monsters, 2)
	s.Equal("Owlbear", output.Monsters[0].Name)
	s.Equal("Zombie", output.Monsters[1].Name)
}

func (s *RedisRepositoryTestSuite) TestListEmpty() {
	output, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Empty(output.Monsters)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
