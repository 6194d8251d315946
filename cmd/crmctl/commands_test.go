package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/ldanie38/geniuscrm/internal/application/services"
	"github.com/ldanie38/geniuscrm/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTags struct {
	seeds []services.SeedTag
}

func (f *fakeTags) Seed(_ context.Context, seeds []services.SeedTag) (int, error) {
	f.seeds = seeds
	return 1, nil
}

type fakeUsers struct {
	username, email, password string
	staff                     bool
}

func (f *fakeUsers) CreateOperator(_ context.Context, username, email, password string, staff bool) (*models.User, error) {
	f.username, f.email, f.password, f.staff = username, email, password, staff
	return &models.User{ID: 7, Username: username, IsStaff: staff}, nil
}

func (f *fakeUsers) SetStaff(_ context.Context, username string, staff bool) (*models.User, error) {
	if username == "ghost" {
		return nil, errors.New("User not found")
	}
	f.username, f.staff = username, staff
	return &models.User{ID: 2, Username: username, IsStaff: staff}, nil
}

type fakeGreeter struct {
	err    error
	called bool
}

func (f *fakeGreeter) Greet(_ context.Context, pageID, to, name string) (*services.BirthdayResult, error) {
	f.called = true
	if f.err != nil {
		return nil, f.err
	}
	return &services.BirthdayResult{PostID: pageID + "_1", Emailed: to != ""}, nil
}

type harness struct {
	rt     *runtime
	closed bool
	out    bytes.Buffer
}

func newHarness() *harness {
	h := &harness{}
	h.rt = &runtime{
		Migrate:  func(context.Context) error { return nil },
		Tags:     &fakeTags{},
		Users:    &fakeUsers{},
		Birthday: &fakeGreeter{},
		Close: func() error {
			h.closed = true
			return nil
		},
	}
	return h
}

func (h *harness) run(args ...string) error {
	cmd := newRootCommand(func(context.Context) (*runtime, error) { return h.rt, nil })
	cmd.SetOut(&h.out)
	cmd.SetErr(&h.out)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestMigrateCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("migrate"))
	assert.Contains(t, h.out.String(), "Schema is up to date.")
	assert.True(t, h.closed)

	h = newHarness()
	h.rt.Migrate = func(context.Context) error { return errors.New("no such host") }
	err := h.run("migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrate: no such host")
	assert.True(t, h.closed)
}

func TestSeedCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("seed"))

	assert.Equal(t, services.DefaultSeedTags, h.rt.Tags.(*fakeTags).seeds)
	assert.Contains(t, h.out.String(), "Seeded 1 new tag(s), 2 already present.")
}

func TestCreateUserCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("createuser", "--username", "admin", "--email", "admin@example.com", "--password", "Purple-Horizon-42", "--staff"))

	users := h.rt.Users.(*fakeUsers)
	assert.Equal(t, "admin", users.username)
	assert.Equal(t, "admin@example.com", users.email)
	assert.True(t, users.staff)
	assert.Contains(t, h.out.String(), `Created user "admin" (id 7, staff=true).`)

	h = newHarness()
	assert.EqualError(t, h.run("createuser"), "--username is required")
}

func TestPromoteCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("promote", "--username", "alice"))
	assert.True(t, h.rt.Users.(*fakeUsers).staff)
	assert.Contains(t, h.out.String(), `User "alice" now has staff=true.`)

	h = newHarness()
	h.rt.Users.(*fakeUsers).staff = true
	require.NoError(t, h.run("promote", "--username", "alice", "--revoke"))
	assert.False(t, h.rt.Users.(*fakeUsers).staff)

	h = newHarness()
	assert.EqualError(t, h.run("promote", "--username", "ghost"), "update user: User not found")

	h = newHarness()
	assert.EqualError(t, h.run("promote"), "--username is required")
}

func TestBirthdayCommand(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.run("birthday", "--page", "123456789", "--name", "Alex", "--to", "alex@example.com"))
	assert.Contains(t, h.out.String(), "[Facebook] Created post: 123456789_1")
	assert.Contains(t, h.out.String(), "[SendGrid] Email sent to alex@example.com")

	h = newHarness()
	require.NoError(t, h.run("birthday", "--page", "123456789", "--name", "Alex"))
	assert.NotContains(t, h.out.String(), "[SendGrid]")

	h = newHarness()
	h.rt.Birthday = &fakeGreeter{err: errors.New("facebook post: boom")}
	assert.EqualError(t, h.run("birthday", "--page", "1", "--name", "Alex"), "facebook post: boom")

	h = newHarness()
	greeter := h.rt.Birthday.(*fakeGreeter)
	assert.Error(t, h.run("birthday", "--name", "Alex"))
	assert.False(t, greeter.called)
}
