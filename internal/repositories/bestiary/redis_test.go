package bestiary_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/lorekeep/bestiary-api/internal/entities"
	"github.com/lorekeep/bestiary-api/internal/errors"
	"github.com/lorekeep/bestiary-api/internal/pkg/clock"
	"github.com/lorekeep/bestiary-api/internal/repositories/bestiary"
	"github.com/lorekeep/bestiary-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	repo    bestiary.Repository
	clock   *clock.Fixed
	cleanup func()
	ctx     context.Context
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	repo, err := bestiary.NewRedisRepository(&bestiary.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisRepositoryTestSuite) testRecord() *entities.BestiaryRecord {
	return &entities.BestiaryRecord{
		MonsterName: "Owlbear",
		MonsterID:   "owlbear",
		Content:     "Common lore: Monstrosity, AC 13.",
		Bundle: entities.KnowledgeBundle{
			HasAny: true,
			Tiers: []entities.TierReveal{
				{
					Tier:  1,
					Label: "Common lore",
					Level: 10,
					Items: []entities.InformationItem{
						{Kind: entities.ItemScalar, Label: "Creature type", Value: "Monstrosity"},
					},
				},
			},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateThenGet() {
	_, err := s.repo.Create(s.ctx, bestiary.CreateInput{Record: s.testRecord()})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, bestiary.GetInput{MonsterName: "Owlbear"})
	s.NoError(err)
	s.Equal("owlbear", output.Record.MonsterID)
	s.True(output.Record.Bundle.HasAny)
	s.Equal(s.clock.Now().Unix(), output.Record.CreatedAt)
}

func (s *RedisRepositoryTestSuite) TestCreateDuplicateFails() {
	_, err := s.repo.Create(s.ctx, bestiary.CreateInput{Record: s.testRecord()})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, bestiary.CreateInput{Record: s.testRecord()})
	s.True(errors.IsAlreadyExists(err))
}

func (s *RedisRepositoryTestSuite) TestUpdateReplacesWholesale() {
	_, err := s.repo.Create(s.ctx, bestiary.CreateInput{Record: s.testRecord()})
	s.Require().NoError(err)
	created := s.clock.Now().Unix()

	s.clock.Advance(time.Hour)

	// A sparser commit replaces the richer page entirely
	replacement := &entities.BestiaryRecord{
		MonsterName: "Owlbear",
		MonsterID:   "owlbear",
		Content:     "Nothing of note.",
		Bundle:      entities.KnowledgeBundle{},
	}
	_, err = s.repo.Update(s.ctx, bestiary.UpdateInput{Record: replacement})
	s.Require().NoError(err)

	output, err := s.repo.Get(s.ctx, bestiary.GetInput{MonsterName: "Owlbear"})
	s.NoError(err)
	s.Equal("Nothing of note.", output.Record.Content)
	s.False(output.Record.Bundle.HasAny)
	s.Empty(output.Record.Bundle.Tiers)
	s.Equal(created, output.Record.CreatedAt)
	s.Equal(created+3600, output.Record.UpdatedAt)
}

func (s *RedisRepositoryTestSuite) TestUpdateMissingRecordFails() {
	_, err := s.repo.Update(s.ctx, bestiary.UpdateInput{Record: s.testRecord()})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGetNotFound() {
	_, err := s.repo.Get(s.ctx, bestiary.GetInput{MonsterName: "Tarrasque"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestListSortedByName() {
	zombie := s.testRecord()
	zombie.MonsterName = "Zombie"
	zombie.MonsterID = "zombie"

	for _, rec := range []*entities.BestiaryRecord{zombie, s.testRecord()} {
		_, err := s.repo.Create(s.ctx, bestiary.CreateInput{Record: rec})
		s.Require().NoError(err)
	}

	output, err := s.repo.List(s.ctx)
	s.NoError(err)
	s.Require().Len(output.Records, 2)
	s.Equal("Owlbear", output.Records[0].MonsterName)
	s.Equal("Zombie", output.Records[1].MonsterName)
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}
