//go:build integration

package postgres

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"video_notifier/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.RunContainer(s.ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_subscriptions.up.sql"),
			filepath.Join(migrationsPath, "002_create_channel_state.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM subscriptions")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM groups")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM channel_state")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_AddAndGet() {
	store := NewSubscriptionStore(s.db)

	err := store.Add(s.ctx,
		domain.Group{ID: "group-1", PollIntervalMinutes: 5},
		domain.Subscription{
			GroupID:     "group-1",
			ChannelID:   "UC123",
			Category:    domain.CategoryVideo,
			Destination: "room-42",
		},
	)
	s.Require().NoError(err)

	subs, err := store.GetByChannel(s.ctx, "group-1", "UC123")
	s.NoError(err)
	s.Require().Len(subs, 1)
	s.Equal(domain.CategoryVideo, subs[0].Category)
	s.Equal("room-42", subs[0].Destination)
	s.Nil(subs[0].Template)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_AddReplacesDestination() {
	store := NewSubscriptionStore(s.db)
	group := domain.Group{ID: "group-1", PollIntervalMinutes: 5}

	err := store.Add(s.ctx, group, domain.Subscription{
		GroupID: "group-1", ChannelID: "UC123",
		Category: domain.CategoryLive, Destination: "room-a",
	})
	s.Require().NoError(err)

	template := "{channel} is live"
	err = store.Add(s.ctx, group, domain.Subscription{
		GroupID: "group-1", ChannelID: "UC123",
		Category: domain.CategoryLive, Destination: "room-b", Template: &template,
	})
	s.Require().NoError(err)

	subs, err := store.GetByChannel(s.ctx, "group-1", "UC123")
	s.NoError(err)
	s.Require().Len(subs, 1)
	s.Equal("room-b", subs[0].Destination)
	s.Require().NotNil(subs[0].Template)
	s.Equal(template, *subs[0].Template)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_GetChannelsForGroup() {
	store := NewSubscriptionStore(s.db)
	group := domain.Group{ID: "group-1", PollIntervalMinutes: 5}

	for _, sub := range []domain.Subscription{
		{GroupID: "group-1", ChannelID: "UC-b", Category: domain.CategoryVideo, Destination: "d1"},
		{GroupID: "group-1", ChannelID: "UC-a", Category: domain.CategoryVideo, Destination: "d2"},
		{GroupID: "group-1", ChannelID: "UC-a", Category: domain.CategoryLive, Destination: "d3"},
	} {
		s.Require().NoError(store.Add(s.ctx, group, sub))
	}

	channels, err := store.GetChannelsForGroup(s.ctx, "group-1")
	s.NoError(err)
	s.Equal([]string{"UC-a", "UC-b"}, channels)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_Remove() {
	store := NewSubscriptionStore(s.db)
	group := domain.Group{ID: "group-1", PollIntervalMinutes: 5}

	s.Require().NoError(store.Add(s.ctx, group, domain.Subscription{
		GroupID: "group-1", ChannelID: "UC123",
		Category: domain.CategoryVideo, Destination: "d1",
	}))

	s.Require().NoError(store.Remove(s.ctx, "group-1", "UC123"))

	subs, err := store.GetByChannel(s.ctx, "group-1", "UC123")
	s.NoError(err)
	s.Empty(subs)
}

func (s *PostgresIntegrationSuite) TestSubscriptionStore_ListGroups() {
	store := NewSubscriptionStore(s.db)

	s.Require().NoError(store.SetPollInterval(s.ctx, "group-b", 10))
	s.Require().NoError(store.SetPollInterval(s.ctx, "group-a", 1))

	groups, err := store.ListGroups(s.ctx)
	s.NoError(err)
	s.Require().Len(groups, 2)
	s.Equal("group-a", groups[0].ID)
	s.Equal(1, groups[0].PollIntervalMinutes)
	s.Equal("group-b", groups[1].ID)
	s.Equal(10, groups[1].PollIntervalMinutes)
}

func (s *PostgresIntegrationSuite) TestChannelStateStore_GetUnknownChannel() {
	store := NewChannelStateStore(s.db)

	state, err := store.Get(s.ctx, "UC-unknown")
	s.NoError(err)
	s.Equal("UC-unknown", state.ChannelID)
	s.Empty(state.LastItemID)
}

func (s *PostgresIntegrationSuite) TestChannelStateStore_SetAndGet() {
	store := NewChannelStateStore(s.db)

	s.Require().NoError(store.SetLastItem(s.ctx, "UC123", "vid-1"))
	s.Require().NoError(store.SetLastItem(s.ctx, "UC123", "vid-2"))

	state, err := store.Get(s.ctx, "UC123")
	s.NoError(err)
	s.Equal("vid-2", state.LastItemID)
	s.WithinDuration(time.Now(), state.UpdatedAt, time.Minute)
}
